package web

import (
	"errors"
	"html/template"
	"net/http"
	"path/filepath"

	"github.com/kirill-tkachenko7/yatube/internal/feed"
)

func (app *App) notFound(w http.ResponseWriter, r *http.Request) {
	app.metrics.BadRequests.WithLabelValues(r.URL.Path).Inc()
	app.renderError(w, "404.page.html", http.StatusNotFound, r.URL.Path)
}

func (app *App) serverError(w http.ResponseWriter, err error) {
	app.logger.WithError(err).Error("Internal server error")
	app.renderError(w, "500.page.html", http.StatusInternalServerError, "")
}

// handleError maps feed-layer errors to responses: ErrNotFound is a 404,
// anything else is a 500.
func (app *App) handleError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, feed.ErrNotFound) {
		app.notFound(w, r)
		return
	}
	app.serverError(w, err)
}

// renderError uses a bare template set on purpose: error pages must not
// depend on the session or the database.
func (app *App) renderError(w http.ResponseWriter, pageFile string, status int, path string) {
	ts, err := template.ParseFiles(filepath.Join(app.cfg.TemplateDir, pageFile))
	if err != nil {
		http.Error(w, http.StatusText(status), status)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := ts.Execute(w, struct{ Path string }{Path: path}); err != nil {
		app.logger.WithError(err).Warn("Failed to render error page")
	}
}
