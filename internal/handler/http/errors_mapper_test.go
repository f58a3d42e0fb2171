package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-secure-url/internal/app"
	"github.com/MKhiriev/go-secure-url/internal/service"
	"github.com/MKhiriev/go-secure-url/internal/store"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{service.ErrSecuredEntityNotFound, http.StatusNotFound},
		{fmt.Errorf("wrapped: %w", service.ErrForbidden), http.StatusForbidden},
		{service.ErrPasswordMismatch, http.StatusBadRequest},
		{service.ErrTokenIsExpired, http.StatusUnauthorized},
		{store.ErrLoginAlreadyExists, http.StatusConflict},
		{ErrRequestTooLarge, http.StatusRequestEntityTooLarge},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestFormErrors(t *testing.T) {
	assert.Equal(t,
		map[string][]string{app.FieldPassword: {app.MsgPasswordMismatch}},
		formErrors(fmt.Errorf("access: %w", service.ErrPasswordMismatch)))
	assert.Equal(t,
		map[string][]string{app.FieldNonField: {app.MsgURLOrFileRequired}},
		formErrors(service.ErrNoURLOrFileProvided))
	assert.Equal(t,
		map[string][]string{app.FieldNonField: {app.MsgFileTooLarge}},
		formErrors(ErrRequestTooLarge))
	assert.Equal(t,
		map[string][]string{app.FieldNonField: {app.MsgInternalServerError}},
		formErrors(errors.New("boom")))
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   map[string]any
	}{
		{
			name:       "field error",
			err:        service.ErrMissingPassword,
			wantStatus: http.StatusBadRequest,
			wantBody:   map[string]any{app.FieldPassword: []any{app.MsgFieldRequired}},
		},
		{
			name:       "detail error",
			err:        service.ErrSecuredEntityNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   map[string]any{"detail": app.MsgNotFound},
		},
		{
			name:       "internal error hides cause",
			err:        errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   map[string]any{"detail": app.MsgInternalServerError},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(rec, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var got map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tt.wantBody, got)
		})
	}
}
