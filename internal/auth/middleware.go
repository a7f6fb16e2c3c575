package auth

import (
	"context"
	"net/http"
	"net/url"
)

type key int

const userIDKey key = 0

// RequireAuth redirects unauthenticated requests to the login page, carrying
// the originally requested path in the next parameter so login can return
// the user where they were headed. Authenticated requests get the user id
// attached to the request context.
func RequireAuth(jwtService *JWTService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			redirectToLogin := func() {
				q := url.Values{"next": {r.URL.Path}}
				http.Redirect(w, r, "/login?"+q.Encode(), http.StatusSeeOther)
			}

			cookie, err := r.Cookie(TokenCookie)
			if err != nil {
				redirectToLogin()
				return
			}

			userID, err := jwtService.ValidateToken(cookie.Value)
			if err != nil {
				redirectToLogin()
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID returns the authenticated user id from the request context, or 0
// when the request never passed RequireAuth.
func UserID(ctx context.Context) int {
	userID, ok := ctx.Value(userIDKey).(int)
	if !ok {
		return 0
	}
	return userID
}
