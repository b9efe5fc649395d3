package middleware

import (
	"context"
	"net/http"

	"go-movie-watchlist/internal/model"
)

type tokenValidator interface {
	ValidateToken(tokenString string) (*model.AuthClaims, error)
}

type contextKey string

const authClaimsContextKey contextKey = "auth_claims"

// SessionCookieName is the cookie carrying the signed identity token.
const SessionCookieName = "token"

type AuthMiddleware struct {
	validator    tokenValidator
	cookieSecure bool
}

func NewAuthMiddleware(validator tokenValidator, cookieSecure bool) *AuthMiddleware {
	return &AuthMiddleware{validator: validator, cookieSecure: cookieSecure}
}

// RequireAuth reads the session cookie and attaches the verified claims to
// the request context. Any verification failure clears the cookie and ends
// the request with 401; expired and tampered tokens are indistinguishable
// to the client.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookieName)
		if err != nil || cookie.Value == "" {
			m.ClearSessionCookie(w)
			writeAuthError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Not authorized.")
			return
		}

		claims, err := m.validator.ValidateToken(cookie.Value)
		if err != nil {
			m.ClearSessionCookie(w)
			writeAuthError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Not authorized.")
			return
		}

		ctx := context.WithValue(r.Context(), authClaimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRoles rejects authenticated callers whose role is outside the
// allow-list.
func (m *AuthMiddleware) RequireRoles(allowedRoles ...model.Role) func(http.Handler) http.Handler {
	roleSet := map[model.Role]struct{}{}
	for _, role := range allowedRoles {
		roleSet[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				writeAuthError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Not authorized.")
				return
			}

			if _, allowed := roleSet[claims.RoleID]; !allowed {
				writeAuthError(w, http.StatusForbidden, "FORBIDDEN", "Forbidden.")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// SetSessionCookie writes the identity token as an http-only,
// same-site-strict cookie.
func (m *AuthMiddleware) SetSessionCookie(w http.ResponseWriter, token string, maxAgeSeconds int) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAgeSeconds,
		HttpOnly: true,
		Secure:   m.cookieSecure,
		SameSite: http.SameSiteStrictMode,
	})
}

func (m *AuthMiddleware) ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.cookieSecure,
		SameSite: http.SameSiteStrictMode,
	})
}

func ClaimsFromContext(ctx context.Context) (*model.AuthClaims, bool) {
	claims, ok := ctx.Value(authClaimsContextKey).(*model.AuthClaims)
	return claims, ok
}

// ContextWithClaims is a test helper used by handler tests to simulate an
// authenticated request.
func ContextWithClaims(ctx context.Context, claims *model.AuthClaims) context.Context {
	return context.WithValue(ctx, authClaimsContextKey, claims)
}

func writeAuthError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, model.APIResponse{
		Success: false,
		Error:   &model.APIError{Code: code, Message: message},
	})
}
