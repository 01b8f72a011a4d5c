// Package pagecache stores rendered page fragments with a bounded TTL.
//
// Entries go away only through expiry or an explicit Clear; writes to the
// database never invalidate them. The index feed tolerates that staleness.
package pagecache

import "time"

// DefaultTTL bounds how long a cached fragment may be served.
const DefaultTTL = 20 * time.Second

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration)
	Clear()
}
