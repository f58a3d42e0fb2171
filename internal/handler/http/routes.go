package http

import (
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// JSON API without authorization
	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Get("/api/version/", h.getServerVersion)
		r.Post("/api/secure-url/{id}/access/", h.access)
	})

	// JSON API for owners
	router.Group(func(r chi.Router) {
		r.Use(withGZip, h.auth, h.withUserAgent)
		r.Get("/api/secure-url/", h.listSecuredEntities)
		r.Post("/api/secure-url/", h.createSecuredEntity)
		r.Get("/api/secure-url/stats/", h.stats)
		r.Get("/api/secure-url/{id}/", h.getSecuredEntity)
		r.Post("/api/secure-url/{id}/regenerate-password/", h.regeneratePassword)
	})

	// public browser pages
	router.Group(func(r chi.Router) {
		r.Get("/login/", h.loginPage)
		r.Post("/login/", h.loginSubmit)
		r.Post("/logout/", h.logout)
		r.Get("/secure-url/secured-entity/{id}/access/", h.accessPage)
		r.Post("/secure-url/secured-entity/{id}/access/", h.accessSubmit)
	})

	// browser pages for owners
	router.Group(func(r chi.Router) {
		r.Use(h.loginRequired, h.withUserAgent)
		r.Get("/", h.indexPage)
		r.Get("/secure-url/secured-entity/create/", h.createPage)
		r.Post("/secure-url/secured-entity/create/", h.createSubmit)
		r.Get("/secure-url/secured-entity/{id}/", h.detailPage)
		r.Get("/secure-url/secured-entity/{id}/regenerate-password/", h.regenerateRedirect)
		r.Post("/secure-url/secured-entity/{id}/regenerate-password/", h.regenerateSubmit)
	})

	if h.media != nil && h.mediaURL != "" {
		router.Handle(strings.TrimRight(h.mediaURL, "/")+"/*", h.media)
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
