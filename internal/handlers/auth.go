package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/vkozyrev/zametki/internal/auth"
	"github.com/vkozyrev/zametki/internal/store"
)

func SignupHandler(st *store.Store, rnd *Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			rnd.Render(w, http.StatusOK, "signup.html", map[string]interface{}{
				"Username": "",
			})
			return
		}

		username := strings.TrimSpace(r.FormValue("username"))
		password := r.FormValue("password")

		if username == "" || password == "" {
			rnd.Render(w, http.StatusOK, "signup.html", map[string]interface{}{
				"Error":    "Имя пользователя и пароль обязательны",
				"Username": username,
			})
			return
		}

		hashedPass, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			http.Error(w, "Error creating user", http.StatusInternalServerError)
			return
		}

		if _, err := st.CreateUser(r.Context(), username, string(hashedPass)); err != nil {
			if errors.Is(err, store.ErrUsernameTaken) {
				rnd.Render(w, http.StatusOK, "signup.html", map[string]interface{}{
					"Error":    "Такое имя пользователя уже занято",
					"Username": username,
				})
				return
			}
			http.Error(w, "Error creating user", http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/login", http.StatusSeeOther)
	}
}

func LoginHandler(st *store.Store, jwtService *auth.JWTService, rnd *Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			rnd.Render(w, http.StatusOK, "login.html", map[string]interface{}{
				"Next":     r.URL.Query().Get("next"),
				"Username": "",
			})
			return
		}

		username := r.FormValue("username")
		password := r.FormValue("password")
		next := r.FormValue("next")

		renderInvalid := func() {
			rnd.Render(w, http.StatusOK, "login.html", map[string]interface{}{
				"Error":    "Неверное имя пользователя или пароль",
				"Username": username,
				"Next":     next,
			})
		}

		user, err := st.GetUserByUsername(r.Context(), username)
		if err != nil {
			renderInvalid()
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
			renderInvalid()
			return
		}

		token, err := jwtService.GenerateToken(user.ID)
		if err != nil {
			http.Error(w, "Failed to generate token", http.StatusInternalServerError)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     auth.TokenCookie,
			Value:    token,
			HttpOnly: true,
			Path:     "/",
			Expires:  time.Now().Add(jwtService.TokenTTL()),
		})

		http.Redirect(w, r, safeNext(next), http.StatusSeeOther)
	}
}

func LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     auth.TokenCookie,
			Value:    "",
			HttpOnly: true,
			Path:     "/",
			MaxAge:   -1,
		})

		http.Redirect(w, r, "/login", http.StatusSeeOther)
	}
}

// safeNext keeps post-login redirects on this site. Anything that is not a
// local absolute path falls back to the notes list.
func safeNext(next string) string {
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		return next
	}
	return "/notes/"
}
