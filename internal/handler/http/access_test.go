package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-secure-url/internal/app"
	"github.com/MKhiriev/go-secure-url/internal/service"
	"github.com/MKhiriev/go-secure-url/models"
)

func strPtr(s string) *string { return &s }

func TestAccessAPI_Success(t *testing.T) {
	router, d := newTestRouter(t)
	d.access.EXPECT().Access(gomock.Any(), "abc", models.AccessRequest{Password: strPtr("0a1b2c3d4e5f")}).
		Return(models.AccessGrant{Target: "https://example.com/page"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/secure-url/abc/access/", strings.NewReader(`{"password":"0a1b2c3d4e5f"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := serve(router, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"secured_entity":"https://example.com/page"}`, rec.Body.String())
}

func TestAccessAPI_RelativeFileTargetIsAbsolutized(t *testing.T) {
	router, d := newTestRouter(t)
	d.access.EXPECT().Access(gomock.Any(), "abc", gomock.Any()).
		Return(models.AccessGrant{Target: "/media/secure_url/files/x/a.txt"}, nil)

	req := httptest.NewRequest(http.MethodPost, "http://secure.example.com/api/secure-url/abc/access/", strings.NewReader(`{"password":"p"}`))
	rec := serve(router, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"secured_entity":"http://secure.example.com/media/secure_url/files/x/a.txt"}`, rec.Body.String())
}

func TestAccessAPI_EmptyBodyIsMissingPassword(t *testing.T) {
	router, d := newTestRouter(t)
	d.access.EXPECT().Access(gomock.Any(), "abc", models.AccessRequest{}).Return(models.AccessGrant{}, service.ErrMissingPassword)

	rec := serve(router, httptest.NewRequest(http.MethodPost, "/api/secure-url/abc/access/", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"password":["`+app.MsgFieldRequired+`"]}`, rec.Body.String())
}

func TestAccessAPI_FormBody(t *testing.T) {
	router, d := newTestRouter(t)
	d.access.EXPECT().Access(gomock.Any(), "abc", models.AccessRequest{Password: strPtr("pw")}).
		Return(models.AccessGrant{Target: "https://example.com"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/secure-url/abc/access/", strings.NewReader(url.Values{"password": {"pw"}}.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := serve(router, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAccessAPI_Failures(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "not found", err: service.ErrSecuredEntityNotFound, wantStatus: http.StatusNotFound, wantBody: `{"detail":"` + app.MsgNotFound + `"}`},
		{name: "mismatch", err: service.ErrPasswordMismatch, wantStatus: http.StatusBadRequest, wantBody: `{"password":["` + app.MsgPasswordMismatch + `"]}`},
		{name: "expired", err: service.ErrSecuredEntityExpired, wantStatus: http.StatusBadRequest, wantBody: `{"non_field_errors":["` + app.MsgNoLongerAvailable + `"]}`},
		{name: "log write failed", err: service.ErrAccessNotRecorded, wantStatus: http.StatusInternalServerError, wantBody: `{"detail":"` + app.MsgInternalServerError + `"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, d := newTestRouter(t)
			d.access.EXPECT().Access(gomock.Any(), "abc", gomock.Any()).Return(models.AccessGrant{}, tt.err)

			rec := serve(router, httptest.NewRequest(http.MethodPost, "/api/secure-url/abc/access/", strings.NewReader(`{"password":"x"}`)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestAccessAPI_InvalidJSON(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := serve(router, httptest.NewRequest(http.MethodPost, "/api/secure-url/abc/access/", strings.NewReader(`{"password":`)))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, app.MsgInvalidDataProvided, body["detail"])
}
