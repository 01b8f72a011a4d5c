package web

import (
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kirill-tkachenko7/yatube/internal/models"
)

// logRequest logs every request and flags the ones that take longer than
// two seconds.
func (app *App) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)

		duration := time.Since(start)
		fields := logrus.Fields{
			"method":    r.Method,
			"path":      r.URL.Path,
			"duration":  duration,
			"remote_ip": r.RemoteAddr,
		}
		if duration > 2*time.Second {
			app.logger.WithFields(fields).Warn("Slow request detected")
		} else {
			app.logger.WithFields(fields).Info("Request completed")
		}
	})
}

// requireAuth redirects anonymous visitors to the login page, keeping the
// original destination in the next parameter.
func (app *App) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
		if app.currentUser(r) == nil {
			http.Redirect(w, r, "/login?next="+url.QueryEscape(r.URL.RequestURI()), http.StatusFound)
			return
		}
		next(w, r)
	}
}

// currentUser resolves the session to a user, or nil for anonymous visitors.
func (app *App) currentUser(r *http.Request) *models.User {
	session, err := app.store.Get(r, sessionName)
	if err != nil {
		return nil
	}
	id, ok := session.Values["user_id"].(uint)
	if !ok {
		return nil
	}
	var user models.User
	if err := app.db.First(&user, id).Error; err != nil {
		return nil
	}
	return &user
}

func (app *App) setSessionUser(w http.ResponseWriter, r *http.Request, userID uint) error {
	session, _ := app.store.Get(r, sessionName)
	session.Values["user_id"] = userID
	return session.Save(r, w)
}

func (app *App) clearSessionUser(w http.ResponseWriter, r *http.Request) {
	session, _ := app.store.Get(r, sessionName)
	delete(session.Values, "user_id")
	if err := session.Save(r, w); err != nil {
		app.logger.WithError(err).Warn("Failed to save session")
	}
}

func (app *App) addFlash(w http.ResponseWriter, r *http.Request, message string) {
	session, _ := app.store.Get(r, sessionName)
	session.AddFlash(message)
	if err := session.Save(r, w); err != nil {
		app.logger.WithError(err).Warn("Failed to save session")
	}
}

func (app *App) popFlashes(w http.ResponseWriter, r *http.Request) []string {
	session, _ := app.store.Get(r, sessionName)
	raw := session.Flashes()
	if len(raw) > 0 {
		if err := session.Save(r, w); err != nil {
			app.logger.WithError(err).Warn("Failed to save session")
		}
	}
	flashes := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			flashes = append(flashes, s)
		}
	}
	return flashes
}
