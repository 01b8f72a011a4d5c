package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirill-tkachenko7/yatube/internal/models"
)

func countEdges(t *testing.T, svc *Service) int64 {
	t.Helper()
	var n int64
	require.NoError(t, svc.db.Model(&models.Follow{}).Count(&n).Error)
	return n
}

func TestFollowIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	alice := createUser(t, db, "alice")
	createUser(t, db, "bob")

	require.NoError(t, svc.Follow(alice.ID, "bob"))
	require.NoError(t, svc.Follow(alice.ID, "bob"))

	assert.Equal(t, int64(1), countEdges(t, svc))
}

func TestFollowSelfIsNoOp(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	alice := createUser(t, db, "alice")

	require.NoError(t, svc.Follow(alice.ID, "alice"))
	assert.Equal(t, int64(0), countEdges(t, svc))
}

func TestFollowUnknownAuthor(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	alice := createUser(t, db, "alice")

	err := svc.Follow(alice.ID, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUnfollow(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	alice := createUser(t, db, "alice")
	createUser(t, db, "bob")

	require.NoError(t, svc.Follow(alice.ID, "bob"))
	require.NoError(t, svc.Unfollow(alice.ID, "bob"))
	assert.Equal(t, int64(0), countEdges(t, svc))

	// no edge left to remove
	err := svc.Unfollow(alice.ID, "bob")
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.Unfollow(alice.ID, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestIsFollowing(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	following, err := svc.IsFollowing(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, following)

	require.NoError(t, svc.Follow(alice.ID, "bob"))

	following, err = svc.IsFollowing(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, following)

	// an anonymous viewer follows nobody
	following, err = svc.IsFollowing(0, bob.ID)
	require.NoError(t, err)
	assert.False(t, following)
}

func TestProfileCounts(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	carol := createUser(t, db, "carol")

	createPost(t, db, alice, "one")
	createPost(t, db, alice, "two")
	require.NoError(t, svc.Follow(bob.ID, "alice"))
	require.NoError(t, svc.Follow(carol.ID, "alice"))
	require.NoError(t, svc.Follow(alice.ID, "bob"))

	profile, err := svc.Profile("alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.User.Username)
	assert.Equal(t, int64(2), profile.PostCount)
	assert.Equal(t, int64(2), profile.FollowerCount)
	assert.Equal(t, int64(1), profile.FollowingCount)

	_, err = svc.Profile("nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}
