package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-secure-url/internal/app"
	"github.com/MKhiriev/go-secure-url/internal/logger"
	"github.com/MKhiriev/go-secure-url/internal/service"
	"github.com/MKhiriev/go-secure-url/internal/store"
	"github.com/MKhiriev/go-secure-url/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpired:          http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrUnauthenticated:         http.StatusUnauthorized,
	service.ErrForbidden:               http.StatusForbidden,
	service.ErrSecuredEntityNotFound:   http.StatusNotFound,

	service.ErrMissingPassword:        http.StatusBadRequest,
	service.ErrPasswordMismatch:       http.StatusBadRequest,
	service.ErrSecuredEntityExpired:   http.StatusBadRequest,
	service.ErrNoURLOrFileProvided:    http.StatusBadRequest,
	service.ErrBothURLAndFileProvided: http.StatusBadRequest,
	service.ErrInvalidURL:             http.StatusBadRequest,
	service.ErrEmptyFile:              http.StatusBadRequest,

	ErrNoCredentials:              http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrEmptyToken:                 http.StatusUnauthorized,
	ErrInvalidJSON:                http.StatusBadRequest,
	ErrRequestTooLarge:            http.StatusRequestEntityTooLarge,

	store.ErrLoginAlreadyExists: http.StatusConflict,
	store.ErrBlobNotFound:       http.StatusNotFound,
}

// fieldMessage is a validation message reported under a form field.
type fieldMessage struct {
	field   string
	message string
}

// errorFieldMap binds validation errors to the field they are reported under,
// both in JSON bodies and in re-rendered forms.
var errorFieldMap = map[error]fieldMessage{
	service.ErrMissingPassword:        {app.FieldPassword, app.MsgFieldRequired},
	service.ErrPasswordMismatch:       {app.FieldPassword, app.MsgPasswordMismatch},
	service.ErrSecuredEntityExpired:   {app.FieldNonField, app.MsgNoLongerAvailable},
	service.ErrNoURLOrFileProvided:    {app.FieldNonField, app.MsgURLOrFileRequired},
	service.ErrBothURLAndFileProvided: {app.FieldNonField, app.MsgURLAndFileExclusive},
	service.ErrInvalidURL:             {app.FieldURL, app.MsgInvalidURL},
	service.ErrEmptyFile:              {app.FieldFile, app.MsgEmptyFile},
}

var errorDetailMap = map[error]string{
	service.ErrInvalidDataProvided:     app.MsgInvalidDataProvided,
	service.ErrWrongPassword:           app.MsgInvalidLoginPassword,
	service.ErrTokenIsExpired:          app.MsgTokenIsExpired,
	service.ErrTokenIsExpiredOrInvalid: app.MsgTokenIsExpiredOrInvalid,
	service.ErrUnauthenticated:         app.MsgAuthenticationRequired,
	service.ErrForbidden:               app.MsgForbidden,
	service.ErrSecuredEntityNotFound:   app.MsgNotFound,
	ErrNoCredentials:                   app.MsgAuthenticationRequired,
	ErrInvalidAuthorizationHeader:      app.MsgAuthenticationRequired,
	ErrEmptyToken:                      app.MsgAuthenticationRequired,
	ErrInvalidJSON:                     app.MsgInvalidDataProvided,
	ErrRequestTooLarge:                 app.MsgFileTooLarge,
	store.ErrLoginAlreadyExists:        app.MsgLoginAlreadyExists,
	store.ErrBlobNotFound:              app.MsgNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func fieldFromError(err error) (fieldMessage, bool) {
	for target, fm := range errorFieldMap {
		if errors.Is(err, target) {
			return fm, true
		}
	}
	return fieldMessage{}, false
}

func detailFromError(err error) string {
	for target, detail := range errorDetailMap {
		if errors.Is(err, target) {
			return detail
		}
	}
	return app.MsgInternalServerError
}

// formErrors returns err as a field -> messages map for template rendering.
// Errors that do not belong to a field are reported as non-field errors.
func formErrors(err error) map[string][]string {
	if fm, ok := fieldFromError(err); ok {
		return map[string][]string{fm.field: {fm.message}}
	}
	return map[string][]string{app.FieldNonField: {detailFromError(err)}}
}

// writeError writes err as a JSON body: validation errors as
// {"field": ["message"]}, everything else as {"detail": "message"}.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("uri", r.RequestURI).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if fm, ok := fieldFromError(err); ok {
		utils.WriteJSON(w, map[string][]string{fm.field: {fm.message}}, status)
		return
	}

	utils.WriteJSON(w, map[string]string{"detail": detailFromError(err)}, status)
}
