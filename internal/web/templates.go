package web

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"path/filepath"
	"time"

	"github.com/kirill-tkachenko7/yatube/internal/feed"
	"github.com/kirill-tkachenko7/yatube/internal/models"
	"github.com/kirill-tkachenko7/yatube/internal/plural"
)

// templateData is the single context type passed to every page template.
type templateData struct {
	Title       string
	Path        string
	CurrentUser *models.User
	Flashes     []string

	Page     *feed.Page
	FeedHTML template.HTML

	Profile   *feed.Profile
	Following bool
	Detail    *feed.Detail

	PostForm    *postForm
	CommentForm *commentForm

	Form       map[string]string
	FormErrors map[string]string
	Next       string
}

var functions = template.FuncMap{
	"formatDate": func(t time.Time) string {
		return t.Format("Jan 2, 2006 at 3:04PM")
	},
	"pluralize": func(count int, one, few, many string) string {
		return fmt.Sprintf("%d %s", count, plural.Choose(count, one, few, many))
	},
	"int64ToInt": func(n int64) int {
		return int(n)
	},
}

func (app *App) render(w http.ResponseWriter, r *http.Request, status int, pageFile string, data *templateData) {
	if data == nil {
		data = &templateData{}
	}
	data.Path = r.URL.Path
	if data.CurrentUser == nil {
		data.CurrentUser = app.currentUser(r)
	}
	data.Flashes = append(data.Flashes, app.popFlashes(w, r)...)

	files := []string{
		filepath.Join(app.cfg.TemplateDir, "base.layout.html"),
		filepath.Join(app.cfg.TemplateDir, pageFile),
	}
	ts, err := template.New("").Funcs(functions).ParseFiles(files...)
	if err != nil {
		app.serverError(w, err)
		return
	}
	ts, err = ts.ParseGlob(filepath.Join(app.cfg.TemplateDir, "*.partial.html"))
	if err != nil {
		app.serverError(w, err)
		return
	}

	buf := new(bytes.Buffer)
	if err := ts.ExecuteTemplate(buf, "base", data); err != nil {
		app.serverError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		app.logger.WithError(err).Warn("Failed to write response")
	}
}

// renderFeedFragment renders just the post list of a feed page. The index
// handler caches this fragment; the other feed views embed it directly.
func (app *App) renderFeedFragment(page *feed.Page) ([]byte, error) {
	ts, err := template.New("").Funcs(functions).
		ParseFiles(filepath.Join(app.cfg.TemplateDir, "post_list.partial.html"))
	if err != nil {
		return nil, err
	}
	buf := new(bytes.Buffer)
	if err := ts.ExecuteTemplate(buf, "post_list", page); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
