package http

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-secure-url/internal/utils"
	"github.com/MKhiriev/go-secure-url/models"
)

// access is the API flavour of the access gate. Success answers
// {"secured_entity": "<absolute target>"}.
func (h *Handler) access(w http.ResponseWriter, r *http.Request) {
	request, err := decodeAccessRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	grant, err := h.services.AccessService.Access(r.Context(), chi.URLParam(r, "id"), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	grant.Target = utils.AbsoluteURL(r, grant.Target)
	utils.WriteJSON(w, grant, http.StatusOK)
}

// decodeAccessRequest reads the password from a JSON or form body. An empty
// body is a request without a password, not a decoding error.
func decodeAccessRequest(r *http.Request) (models.AccessRequest, error) {
	var request models.AccessRequest

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/x-www-form-urlencoded" || mediaType == "multipart/form-data" {
		if err := r.ParseMultipartForm(multipartMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			return request, errors.Join(ErrInvalidJSON, err)
		}
		request.Password = formPassword(r)
		return request, nil
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil && !errors.Is(err, io.EOF) {
		return request, errors.Join(ErrInvalidJSON, err)
	}

	return request, nil
}

// formPassword returns nil when the form has no password field at all.
func formPassword(r *http.Request) *string {
	values, ok := r.PostForm["password"]
	if !ok || len(values) == 0 {
		return nil
	}
	return &values[0]
}
