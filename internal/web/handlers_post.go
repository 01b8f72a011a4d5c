package web

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/kirill-tkachenko7/yatube/internal/models"
)

// postForm holds the submitted values and field errors of the new/edit post
// form, so a failed submit re-renders with everything the user typed.
type postForm struct {
	Text    string
	GroupID string
	Image   string
	Groups  []models.Group
	Errors  map[string]string
}

func (app *App) loadPostForm(r *http.Request) (*postForm, error) {
	form := &postForm{Errors: map[string]string{}}
	if err := app.db.Order("title").Find(&form.Groups).Error; err != nil {
		return nil, err
	}
	return form, nil
}

// validate checks the submitted fields and resolves the optional group.
// It returns the group id to store, nil when no group was picked.
func (form *postForm) validate(db *gorm.DB) (*uint, bool) {
	if form.Text == "" {
		form.Errors["text"] = "Обязательное поле."
	}
	var groupID *uint
	if form.GroupID != "" {
		id, err := strconv.ParseUint(form.GroupID, 10, 32)
		if err != nil {
			form.Errors["group"] = "Выберите корректный вариант."
		} else {
			var group models.Group
			if dbErr := db.First(&group, uint(id)).Error; dbErr != nil {
				form.Errors["group"] = "Выберите корректный вариант."
			} else {
				gid := uint(id)
				groupID = &gid
			}
		}
	}
	return groupID, len(form.Errors) == 0
}

func (app *App) newPost(w http.ResponseWriter, r *http.Request) {
	form, err := app.loadPostForm(r)
	if err != nil {
		app.serverError(w, err)
		return
	}

	if r.Method == http.MethodGet {
		app.render(w, r, http.StatusOK, "new_post.page.html", &templateData{
			Title:    "Новая запись",
			PostForm: form,
		})
		return
	}

	form.Text = r.PostFormValue("text")
	form.GroupID = r.PostFormValue("group")
	groupID, ok := form.validate(app.db)

	image, imageErr, err := app.saveImage(r)
	if err != nil {
		app.serverError(w, err)
		return
	}
	if imageErr != "" {
		form.Errors["image"] = imageErr
		ok = false
	}

	if !ok {
		app.render(w, r, http.StatusOK, "new_post.page.html", &templateData{
			Title:    "Новая запись",
			PostForm: form,
		})
		return
	}

	post := models.Post{
		Text:     form.Text,
		AuthorID: app.currentUser(r).ID,
		GroupID:  groupID,
		Image:    image,
	}
	if err := app.db.Create(&post).Error; err != nil {
		app.serverError(w, err)
		return
	}
	app.metrics.PostsCreated.WithLabelValues("/new/").Inc()
	http.Redirect(w, r, "/", http.StatusFound)
}

func (app *App) postView(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	postID, _ := strconv.ParseUint(vars["post_id"], 10, 32)

	profile, err := app.feed.Profile(vars["username"])
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	detail, err := app.feed.PostDetail(vars["username"], uint(postID))
	if err != nil {
		app.handleError(w, r, err)
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

	app.render(w, r, http.StatusOK, "post.page.html", &templateData{
		Title:       "Запись " + profile.User.Username,
		CurrentUser: viewer,
		Profile:     profile,
		Following:   following,
		Detail:      detail,
		CommentForm: &commentForm{Errors: map[string]string{}},
	})
}

func (app *App) postEdit(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	username := vars["username"]
	postID, _ := strconv.ParseUint(vars["post_id"], 10, 32)
	postURL := "/" + username + "/" + vars["post_id"] + "/"

	// only the author edits; everyone else is sent back to the read-only
	// view instead of getting an error page
	viewer := app.currentUser(r)
	if viewer.Username != username {
		http.Redirect(w, r, postURL, http.StatusFound)
		return
	}

	detail, err := app.feed.PostDetail(username, uint(postID))
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	post := detail.Post.Post

	form, err := app.loadPostForm(r)
	if err != nil {
		app.serverError(w, err)
		return
	}

	if r.Method == http.MethodGet {
		form.Text = post.Text
		if post.GroupID != nil {
			form.GroupID = strconv.FormatUint(uint64(*post.GroupID), 10)
		}
		form.Image = post.Image
		app.render(w, r, http.StatusOK, "edit_post.page.html", &templateData{
			Title:    "Редактировать запись",
			PostForm: form,
		})
		return
	}

	form.Text = r.PostFormValue("text")
	form.GroupID = r.PostFormValue("group")
	form.Image = post.Image
	groupID, ok := form.validate(app.db)

	image, imageErr, err := app.saveImage(r)
	if err != nil {
		app.serverError(w, err)
		return
	}
	if imageErr != "" {
		form.Errors["image"] = imageErr
		ok = false
	}

	if !ok {
		app.render(w, r, http.StatusOK, "edit_post.page.html", &templateData{
			Title:    "Редактировать запись",
			PostForm: form,
		})
		return
	}

	if image == "" {
		image = post.Image
	}
	updates := map[string]interface{}{
		"text":     form.Text,
		"group_id": groupID,
		"image":    image,
	}
	if err := app.db.Model(&post).Updates(updates).Error; err != nil {
		app.serverError(w, err)
		return
	}
	http.Redirect(w, r, postURL, http.StatusFound)
}

type commentForm struct {
	Text   string
	Errors map[string]string
}

func (app *App) addComment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	postID, _ := strconv.ParseUint(vars["post_id"], 10, 32)
	postURL := "/" + vars["username"] + "/" + vars["post_id"] + "/"

	detail, err := app.feed.PostDetail(vars["username"], uint(postID))
	if err != nil {
		app.handleError(w, r, err)
		return
	}

	if r.Method == http.MethodGet {
		http.Redirect(w, r, postURL, http.StatusFound)
		return
	}

	text := r.PostFormValue("text")
	if text == "" {
		// re-render the post page with the field error in place
		viewer := app.currentUser(r)
		profile, err := app.feed.Profile(vars["username"])
		if err != nil {
			app.handleError(w, r, err)
			return
		}
		following, err := app.feed.IsFollowing(viewer.ID, profile.User.ID)
		if err != nil {
			app.serverError(w, err)
			return
		}
		app.render(w, r, http.StatusOK, "post.page.html", &templateData{
			Title:       "Запись " + vars["username"],
			CurrentUser: viewer,
			Profile:     profile,
			Following:   following,
			Detail:      detail,
			CommentForm: &commentForm{Text: text, Errors: map[string]string{"text": "Обязательное поле."}},
		})
		return
	}

	comment := models.Comment{
		PostID:   detail.Post.ID,
		AuthorID: app.currentUser(r).ID,
		Text:     text,
	}
	if err := app.db.Create(&comment).Error; err != nil {
		app.serverError(w, err)
		return
	}
	app.metrics.CommentsCreated.WithLabelValues("/comment/").Inc()
	http.Redirect(w, r, postURL, http.StatusFound)
}
