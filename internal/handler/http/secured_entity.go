package http

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-secure-url/internal/service"
	"github.com/MKhiriev/go-secure-url/internal/utils"
	"github.com/MKhiriev/go-secure-url/models"
)

// multipartMemory is the part of a multipart body kept in memory; the rest
// spills to temporary files.
const multipartMemory = 8 << 20

func (h *Handler) listSecuredEntities(w http.ResponseWriter, r *http.Request) {
	owner, _ := utils.GetUserIDFromContext(r.Context())

	entities, err := h.services.SecuredEntityService.List(r.Context(), owner)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, entities, http.StatusOK)
}

// createSecuredEntity accepts either a JSON {"url": ...} body or a multipart
// form with "url" and/or "file" parts.
func (h *Handler) createSecuredEntity(w http.ResponseWriter, r *http.Request) {
	owner, _ := utils.GetUserIDFromContext(r.Context())

	request, cleanup, err := h.decodeCreateRequest(w, r)
	defer cleanup()
	if err != nil {
		writeError(w, r, err)
		return
	}

	entity, err := h.services.SecuredEntityService.Create(r.Context(), owner, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, entity, http.StatusCreated)
}

func (h *Handler) getSecuredEntity(w http.ResponseWriter, r *http.Request) {
	owner, _ := utils.GetUserIDFromContext(r.Context())

	entity, err := h.services.SecuredEntityService.Get(r.Context(), owner, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, entity, http.StatusOK)
}

func (h *Handler) regeneratePassword(w http.ResponseWriter, r *http.Request) {
	owner, _ := utils.GetUserIDFromContext(r.Context())

	entity, err := h.services.SecuredEntityService.RegeneratePassword(r.Context(), owner, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, entity, http.StatusOK)
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	owner, _ := utils.GetUserIDFromContext(r.Context())

	stats, err := h.services.StatsService.Stats(r.Context(), owner)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}

// decodeCreateRequest reads a create payload from JSON or multipart bodies.
// The returned cleanup must always be called.
func (h *Handler) decodeCreateRequest(w http.ResponseWriter, r *http.Request) (models.CreateSecuredEntityRequest, func(), error) {
	var request models.CreateSecuredEntityRequest
	noop := func() {}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "multipart/form-data", "application/x-www-form-urlencoded":
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
		if err := r.ParseMultipartForm(multipartMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				return request, noop, ErrRequestTooLarge
			}
			return request, noop, errors.Join(service.ErrInvalidDataProvided, err)
		}
		cleanup := func() {
			if r.MultipartForm != nil {
				r.MultipartForm.RemoveAll()
			}
		}

		request.URL = r.FormValue("url")

		file, header, err := r.FormFile("file")
		switch {
		case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		case err != nil:
			return request, cleanup, errors.Join(service.ErrInvalidDataProvided, err)
		default:
			request.File = &models.Upload{
				Name:        header.Filename,
				Size:        header.Size,
				ContentType: header.Header.Get("Content-Type"),
				Content:     file,
			}
			cleanup = func() {
				file.Close()
				if r.MultipartForm != nil {
					r.MultipartForm.RemoveAll()
				}
			}
		}

		return request, cleanup, nil

	default:
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil && !errors.Is(err, io.EOF) {
			return request, noop, errors.Join(ErrInvalidJSON, err)
		}
		return request, noop, nil
	}
}
