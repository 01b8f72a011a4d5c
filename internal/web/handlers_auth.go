package web

import (
	"errors"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/kirill-tkachenko7/yatube/internal/models"
)

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

func checkPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (app *App) register(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		app.render(w, r, http.StatusOK, "register.page.html", &templateData{Title: "Регистрация"})
		return
	}

	username := r.PostFormValue("username")
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")
	password2 := r.PostFormValue("password2")

	var formError string
	switch {
	case username == "":
		formError = "You have to enter a username"
	case email == "" || !strings.Contains(email, "@"):
		formError = "You have to enter a valid email address"
	case password == "":
		formError = "You have to enter a password"
	case password != password2:
		formError = "The two passwords do not match"
	default:
		var existing models.User
		err := app.db.Where("username = ?", username).First(&existing).Error
		if err == nil {
			formError = "The username is already taken"
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			app.serverError(w, err)
			return
		}
	}

	if formError != "" {
		app.metrics.BadRequests.WithLabelValues("/register").Inc()
		app.render(w, r, http.StatusOK, "register.page.html", &templateData{
			Title:      "Регистрация",
			FormErrors: map[string]string{"form": formError},
			Form:       map[string]string{"username": username, "email": email},
		})
		return
	}

	pwHash, err := hashPassword(password)
	if err != nil {
		app.serverError(w, err)
		return
	}
	user := models.User{Username: username, Email: email, PWHash: pwHash}
	if err := app.db.Create(&user).Error; err != nil {
		app.serverError(w, err)
		return
	}

	app.logger.WithField("username", username).Info("User registered successfully")
	app.metrics.SuccessfulRequests.WithLabelValues("/register").Inc()
	app.addFlash(w, r, "You were successfully registered and can login now")
	http.Redirect(w, r, "/login", http.StatusFound)
}

func (app *App) login(w http.ResponseWriter, r *http.Request) {
	next := r.URL.Query().Get("next")
	if next == "" || !strings.HasPrefix(next, "/") {
		next = "/"
	}

	if r.Method == http.MethodGet {
		app.render(w, r, http.StatusOK, "login.page.html", &templateData{Title: "Войти", Next: next})
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if n := r.PostFormValue("next"); n != "" && strings.HasPrefix(n, "/") {
		next = n
	}

	var user models.User
	err := app.db.Where("username = ?", username).First(&user).Error
	formError := ""
	if errors.Is(err, gorm.ErrRecordNotFound) {
		formError = "Invalid username"
	} else if err != nil {
		app.serverError(w, err)
		return
	} else if !checkPasswordHash(password, user.PWHash) {
		formError = "Invalid password"
	}

	if formError != "" {
		app.logger.WithField("username", username).Warn("Invalid login attempt")
		app.metrics.BadRequests.WithLabelValues("/login").Inc()
		app.render(w, r, http.StatusOK, "login.page.html", &templateData{
			Title:      "Войти",
			Next:       next,
			FormErrors: map[string]string{"form": formError},
			Form:       map[string]string{"username": username},
		})
		return
	}

	if err := app.setSessionUser(w, r, user.ID); err != nil {
		app.serverError(w, err)
		return
	}
	app.logger.WithField("username", username).Info("User logged in successfully")
	app.metrics.SuccessfulRequests.WithLabelValues("/login").Inc()
	app.addFlash(w, r, "You were logged in")
	http.Redirect(w, r, next, http.StatusFound)
}

func (app *App) logout(w http.ResponseWriter, r *http.Request) {
	app.clearSessionUser(w, r)
	app.addFlash(w, r, "You were logged out")
	http.Redirect(w, r, "/", http.StatusFound)
}
