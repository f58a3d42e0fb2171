package http

import (
	"net/http"
	"net/url"
	"strings"
	"unicode"

	"github.com/MKhiriev/go-secure-url/internal/logger"
	"github.com/MKhiriev/go-secure-url/internal/utils"
	"github.com/MKhiriev/go-secure-url/models"
)

// tokenCookie carries the JWT of a browser session.
const tokenCookie = "token"

// auth guards the JSON API. Unauthenticated requests get 401 with a JSON
// detail body.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := h.authenticate(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(r.Context(), userID)))
	})
}

// loginRequired guards browser pages. Unauthenticated visitors are sent to
// the login page and brought back afterwards.
func (h *Handler) loginRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := h.authenticate(r)
		if err != nil {
			logger.FromRequest(r).Debug().Err(err).Msg("login required")
			http.Redirect(w, r, "/login/?next="+url.QueryEscape(r.URL.RequestURI()), http.StatusFound)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(r.Context(), userID)))
	})
}

// authenticate resolves the caller from, in order: a Bearer token, Basic
// credentials, the session cookie.
func (h *Handler) authenticate(r *http.Request) (int64, error) {
	ctx := r.Context()

	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		scheme, _, _ := strings.Cut(strings.TrimSpace(authHeader), " ")

		switch strings.ToLower(scheme) {
		case "bearer":
			tokenString, err := getTokenFromAuthHeader(authHeader)
			if err != nil {
				return 0, err
			}
			token, err := h.services.AuthService.ParseToken(ctx, tokenString)
			if err != nil {
				return 0, err
			}
			return token.UserID, nil

		case "basic":
			login, password, ok := r.BasicAuth()
			if !ok {
				return 0, ErrInvalidAuthorizationHeader
			}
			user, err := h.services.AuthService.Login(ctx, models.User{Login: login, Password: password})
			if err != nil {
				return 0, err
			}
			return user.UserID, nil

		default:
			return 0, ErrInvalidAuthorizationHeader
		}
	}

	if cookie, err := r.Cookie(tokenCookie); err == nil && cookie.Value != "" {
		token, err := h.services.AuthService.ParseToken(ctx, cookie.Value)
		if err != nil {
			return 0, err
		}
		return token.UserID, nil
	}

	return 0, ErrNoCredentials
}

// getTokenFromAuthHeader extracts the token of an "Authorization: Bearer <token>"
// header value.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	_, tokenString, found := strings.Cut(strings.TrimLeftFunc(authHeader, unicode.IsSpace), " ")
	if !found {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
