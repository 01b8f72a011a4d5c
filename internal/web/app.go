// Package web serves the HTML pages: feeds, profiles, posts, auth and the
// follow links.
package web

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/kirill-tkachenko7/yatube/internal/feed"
	"github.com/kirill-tkachenko7/yatube/internal/pagecache"
)

const sessionName = "yatube_session"

type App struct {
	cfg     Config
	logger  *logrus.Logger
	db      *gorm.DB
	feed    *feed.Service
	cache   pagecache.Cache
	store   *sessions.CookieStore
	metrics *Metrics
	promReg *prometheus.Registry
}

func NewApp(cfg Config, logger *logrus.Logger, db *gorm.DB, cache pagecache.Cache) *App {
	store := sessions.NewCookieStore([]byte(cfg.SessionKey))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   3600 * 16, // 16 hours
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}

	reg := prometheus.NewRegistry()
	return &App{
		cfg:     cfg,
		logger:  logger,
		db:      db,
		feed:    feed.NewService(db),
		cache:   cache,
		store:   store,
		metrics: InitMetrics(reg),
		promReg: reg,
	}
}

// Routes builds the full router. Fixed paths are registered before the
// /{username}/ tree so they are matched first.
func (app *App) Routes() http.Handler {
	r := mux.NewRouter()
	r.StrictSlash(true)

	r.Handle("/metrics", promhttp.HandlerFor(app.promReg, promhttp.HandlerOpts{})).Methods("GET")
	r.HandleFunc("/internal/cache/clear", app.cacheClear).Methods("POST")

	r.PathPrefix("/static/").Handler(
		http.StripPrefix("/static/", http.FileServer(http.Dir(app.cfg.StaticDir))))
	r.PathPrefix("/media/").Handler(
		http.StripPrefix("/media/", http.FileServer(http.Dir(app.cfg.MediaDir))))

	r.HandleFunc("/", app.index).Methods("GET")
	r.HandleFunc("/group/{slug}/", app.groupPosts).Methods("GET")
	r.HandleFunc("/new/", app.requireAuth(app.newPost)).Methods("GET", "POST")
	r.HandleFunc("/follow/", app.requireAuth(app.followIndex)).Methods("GET")

	r.HandleFunc("/register", app.register).Methods("GET", "POST")
	r.HandleFunc("/login", app.login).Methods("GET", "POST")
	r.HandleFunc("/logout", app.logout).Methods("GET")

	r.HandleFunc("/{username}/", app.profile).Methods("GET")
	r.HandleFunc("/{username}/follow", app.requireAuth(app.profileFollow)).Methods("GET")
	r.HandleFunc("/{username}/unfollow", app.requireAuth(app.profileUnfollow)).Methods("GET")
	r.HandleFunc("/{username}/{post_id:[0-9]+}/", app.postView).Methods("GET")
	r.HandleFunc("/{username}/{post_id:[0-9]+}/edit/", app.requireAuth(app.postEdit)).Methods("GET", "POST")
	r.HandleFunc("/{username}/{post_id:[0-9]+}/comment/", app.requireAuth(app.addComment)).Methods("GET", "POST")

	return app.logRequest(r)
}
