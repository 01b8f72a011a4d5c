package web

import (
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/kirill-tkachenko7/yatube/internal/feed"
	"github.com/kirill-tkachenko7/yatube/internal/pagecache"
)

func pageNumber(r *http.Request) int {
	n, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		return 1
	}
	return n
}

// index shows the global feed. The rendered post list is cached per page
// number with a short TTL; new posts only show up after expiry or an
// explicit clear.
func (app *App) index(w http.ResponseWriter, r *http.Request) {
	number := pageNumber(r)
	key := fmt.Sprintf("index:%d", number)

	data := &templateData{Title: "Последние записи"}
	if fragment, ok := app.cache.Get(key); ok {
		data.FeedHTML = template.HTML(fragment)
		app.render(w, r, http.StatusOK, "index.page.html", data)
		return
	}

	page, err := app.feed.Compose(feed.Request{Mode: feed.ModeGlobal, Page: number})
	if err != nil {
		app.serverError(w, err)
		return
	}
	fragment, err := app.renderFeedFragment(page)
	if err != nil {
		app.serverError(w, err)
		return
	}
	app.cache.Set(key, fragment, pagecache.DefaultTTL)

	data.FeedHTML = template.HTML(fragment)
	app.metrics.SuccessfulRequests.WithLabelValues("/").Inc()
	app.render(w, r, http.StatusOK, "index.page.html", data)
}

func (app *App) groupPosts(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	page, err := app.feed.Compose(feed.Request{Mode: feed.ModeGroup, Slug: slug, Page: pageNumber(r)})
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	fragment, err := app.renderFeedFragment(page)
	if err != nil {
		app.serverError(w, err)
		return
	}
	app.render(w, r, http.StatusOK, "group.page.html", &templateData{
		Title:    page.Group.Title,
		Page:     page,
		FeedHTML: template.HTML(fragment),
	})
}

// followIndex shows posts from the authors the viewer follows. Never cached:
// the page is different for every viewer.
func (app *App) followIndex(w http.ResponseWriter, r *http.Request) {
	viewer := app.currentUser(r)

	page, err := app.feed.Compose(feed.Request{
		Mode:     feed.ModeFollowing,
		ViewerID: viewer.ID,
		Page:     pageNumber(r),
	})
	if err != nil {
		app.serverError(w, err)
		return
	}
	fragment, err := app.renderFeedFragment(page)
	if err != nil {
		app.serverError(w, err)
		return
	}
	app.render(w, r, http.StatusOK, "follow.page.html", &templateData{
		Title:       "Избранные авторы",
		CurrentUser: viewer,
		Page:        page,
		FeedHTML:    template.HTML(fragment),
	})
}

// cacheClear drops every cached page. Guarded by a shared token so only the
// admin tooling can call it.
func (app *App) cacheClear(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get("Authorization")
	if app.cfg.CacheClearToken == "" || token != "Token "+app.cfg.CacheClearToken {
		app.metrics.BadRequests.WithLabelValues("/internal/cache/clear").Inc()
		http.Error(w, "You are not authorized to use this resource!", http.StatusForbidden)
		return
	}
	app.cache.Clear()
	app.logger.Info("Page cache cleared")
	w.WriteHeader(http.StatusNoContent)
}
