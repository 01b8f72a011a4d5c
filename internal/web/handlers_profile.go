package web

import (
	"html/template"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kirill-tkachenko7/yatube/internal/feed"
)

func (app *App) profile(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	profile, err := app.feed.Profile(username)
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	page, err := app.feed.Compose(feed.Request{
		Mode:     feed.ModeAuthor,
		Username: username,
		Page:     pageNumber(r),
	})
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	fragment, err := app.renderFeedFragment(page)
	if err != nil {
		app.serverError(w, err)
		return
	}

	viewer := app.currentUser(r)
	following := false
	if viewer != nil {
		following, err = app.feed.IsFollowing(viewer.ID, profile.User.ID)
		if err != nil {
			app.serverError(w, err)
			return
		}
	}

	app.render(w, r, http.StatusOK, "profile.page.html", &templateData{
		Title:       profile.User.Username,
		CurrentUser: viewer,
		Profile:     profile,
		Following:   following,
		Page:        page,
		FeedHTML:    template.HTML(fragment),
	})
}

func (app *App) profileFollow(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	if err := app.feed.Follow(app.currentUser(r).ID, username); err != nil {
		app.handleError(w, r, err)
		return
	}
	app.metrics.FollowRequests.WithLabelValues("/follow").Inc()
	http.Redirect(w, r, "/"+username+"/", http.StatusFound)
}

func (app *App) profileUnfollow(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	if err := app.feed.Unfollow(app.currentUser(r).ID, username); err != nil {
		app.handleError(w, r, err)
		return
	}
	app.metrics.UnfollowRequests.WithLabelValues("/unfollow").Inc()
	http.Redirect(w, r, "/"+username+"/", http.StatusFound)
}
