package http

import (
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-secure-url/internal/app"
	"github.com/MKhiriev/go-secure-url/internal/logger"
	"github.com/MKhiriev/go-secure-url/internal/utils"
	"github.com/MKhiriev/go-secure-url/models"
)

const detailPathFormat = "/secure-url/secured-entity/%s/"

var templateFuncs = template.FuncMap{
	"datetime": func(t time.Time) string { return t.UTC().Format("2006-01-02 15:04:05 MST") },
}

// pageData is the single view model shared by all templates.
type pageData struct {
	Title         string
	Authenticated bool
	Next          string
	Login         string
	URL           string
	Created       bool
	Entity        models.SecuredEntityResponse
	Entities      []models.SecuredEntityResponse
	Errors        map[string][]string
}

// NonFieldErrors is a template helper.
func (p pageData) NonFieldErrors() []string {
	return p.Errors[app.FieldNonField]
}

// FieldErrors is a template helper.
func (p pageData) FieldErrors(field string) []string {
	return p.Errors[field]
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, status int, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.pages.ExecuteTemplate(w, name, data); err != nil {
		logger.FromRequest(r).Err(err).Str("template", name).Msg("error rendering page")
	}
}

// renderError answers browser requests that failed outside of form
// validation with a plain status page.
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Str("uri", r.RequestURI).Msg("page failed")
	}
	http.Error(w, http.StatusText(status), status)
}

// ── session ─────────────────────────────────────────────────────────────────

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "login.html", http.StatusOK, pageData{Title: "Log in", Next: safeNext(r.URL.Query().Get("next"))})
}

func (h *Handler) loginSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := r.ParseForm(); err != nil {
		h.renderError(w, r, ErrInvalidJSON)
		return
	}

	data := pageData{
		Title: "Log in",
		Login: r.PostForm.Get("login"),
		Next:  safeNext(r.PostForm.Get("next")),
	}

	user, err := h.services.AuthService.Login(ctx, models.User{Login: data.Login, Password: r.PostForm.Get("password")})
	if err != nil {
		if statusFromError(err) >= http.StatusInternalServerError {
			h.renderError(w, r, err)
			return
		}
		data.Errors = map[string][]string{app.FieldNonField: {app.MsgInvalidLoginPassword}}
		h.render(w, r, "login.html", http.StatusOK, data)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	cookie := &http.Cookie{
		Name:     tokenCookie,
		Value:    token.String(),
		Path:     "/",
		HttpOnly: true,
		Secure:   utils.RequestScheme(r) == "https",
		SameSite: http.SameSiteLaxMode,
	}
	if token.Token != nil {
		if expiresAt, err := token.Claims.GetExpirationTime(); err == nil && expiresAt != nil {
			cookie.Expires = expiresAt.Time
		}
	}
	http.SetCookie(w, cookie)

	next := data.Next
	if next == "" {
		next = "/"
	}
	http.Redirect(w, r, next, http.StatusFound)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{Name: tokenCookie, Value: "", Path: "/", MaxAge: -1, HttpOnly: true})
	http.Redirect(w, r, "/login/", http.StatusFound)
}

// safeNext only allows local absolute paths as post-login targets.
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return ""
	}
	return next
}

// ── owner pages ─────────────────────────────────────────────────────────────

func (h *Handler) indexPage(w http.ResponseWriter, r *http.Request) {
	owner, _ := utils.GetUserIDFromContext(r.Context())

	entities, err := h.services.SecuredEntityService.List(r.Context(), owner)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	h.render(w, r, "list.html", http.StatusOK, pageData{Title: "Secured entities", Authenticated: true, Entities: entities})
}

func (h *Handler) createPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "create.html", http.StatusOK, pageData{Title: "Secure a link or file", Authenticated: true})
}

func (h *Handler) createSubmit(w http.ResponseWriter, r *http.Request) {
	owner, _ := utils.GetUserIDFromContext(r.Context())
	data := pageData{Title: "Secure a link or file", Authenticated: true}

	request, cleanup, err := h.decodeCreateRequest(w, r)
	defer cleanup()
	if err == nil {
		data.URL = request.URL
		var entity models.SecuredEntityResponse
		entity, err = h.services.SecuredEntityService.Create(r.Context(), owner, request)
		if err == nil {
			http.Redirect(w, r, fmt.Sprintf(detailPathFormat, entity.ID)+"?created=1", http.StatusFound)
			return
		}
	}

	if _, ok := fieldFromError(err); !ok && statusFromError(err) >= http.StatusInternalServerError {
		h.renderError(w, r, err)
		return
	}

	data.Errors = formErrors(err)
	h.render(w, r, "create.html", http.StatusOK, data)
}

func (h *Handler) detailPage(w http.ResponseWriter, r *http.Request) {
	owner, _ := utils.GetUserIDFromContext(r.Context())

	entity, err := h.services.SecuredEntityService.Get(r.Context(), owner, chi.URLParam(r, "id"))
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	h.render(w, r, "detail.html", http.StatusOK, pageData{
		Title:         "Secured entity",
		Authenticated: true,
		Entity:        entity,
		Created:       r.URL.Query().Get("created") != "",
	})
}

func (h *Handler) regenerateRedirect(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, fmt.Sprintf(detailPathFormat, chi.URLParam(r, "id")), http.StatusFound)
}

func (h *Handler) regenerateSubmit(w http.ResponseWriter, r *http.Request) {
	owner, _ := utils.GetUserIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	if _, err := h.services.SecuredEntityService.RegeneratePassword(r.Context(), owner, id); err != nil {
		h.renderError(w, r, err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf(detailPathFormat, id), http.StatusFound)
}

// ── access gate ─────────────────────────────────────────────────────────────

func (h *Handler) accessPage(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AccessService.Exists(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.renderError(w, r, err)
		return
	}

	h.render(w, r, "access.html", http.StatusOK, pageData{Title: "Protected resource"})
}

func (h *Handler) accessSubmit(w http.ResponseWriter, r *http.Request) {
	request, err := decodeAccessRequest(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	grant, err := h.services.AccessService.Access(r.Context(), chi.URLParam(r, "id"), request)
	if err != nil {
		if _, ok := fieldFromError(err); !ok {
			h.renderError(w, r, err)
			return
		}
		h.render(w, r, "access.html", http.StatusOK, pageData{Title: "Protected resource", Errors: formErrors(err)})
		return
	}

	http.Redirect(w, r, utils.AbsoluteURL(r, grant.Target), http.StatusFound)
}
