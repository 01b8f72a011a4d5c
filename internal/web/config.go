package web

import "os"

// Config carries the environment-driven settings the web layer needs.
type Config struct {
	Addr            string
	SessionKey      string
	TemplateDir     string
	StaticDir       string
	MediaDir        string
	CacheClearToken string
}

func ConfigFromEnv() Config {
	cfg := Config{
		Addr:            os.Getenv("PORT"),
		SessionKey:      os.Getenv("SESSION_KEY"),
		TemplateDir:     os.Getenv("TEMPLATE_DIR"),
		StaticDir:       os.Getenv("STATIC_DIR"),
		MediaDir:        os.Getenv("MEDIA_DIR"),
		CacheClearToken: os.Getenv("CACHE_CLEAR_TOKEN"),
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8000"
	}
	if cfg.SessionKey == "" {
		cfg.SessionKey = "SESSION_KEY"
	}
	if cfg.TemplateDir == "" {
		cfg.TemplateDir = "./templates"
	}
	if cfg.StaticDir == "" {
		cfg.StaticDir = "./static"
	}
	if cfg.MediaDir == "" {
		cfg.MediaDir = "./media"
	}
	return cfg
}
