package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-secure-url/internal/app"
	"github.com/MKhiriev/go-secure-url/internal/service"
	"github.com/MKhiriev/go-secure-url/internal/utils"
	"github.com/MKhiriev/go-secure-url/models"
)

// captureUser records the user id the middleware put into the context.
func captureUser(got *int64) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*got, _ = utils.GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuth_Bearer(t *testing.T) {
	h, d := newTestHandler(t)
	d.auth.EXPECT().ParseToken(gomock.Any(), "abc").Return(models.Token{UserID: 3}, nil)

	var got int64
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer abc")
	rec := serve(h.auth(captureUser(&got)), req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, int64(3), got)
}

func TestAuth_Basic(t *testing.T) {
	h, d := newTestHandler(t)
	d.auth.EXPECT().Login(gomock.Any(), models.User{Login: "alice", Password: "secret"}).Return(models.User{UserID: 4}, nil)

	var got int64
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.SetBasicAuth("alice", "secret")
	rec := serve(h.auth(captureUser(&got)), req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, int64(4), got)
}

func TestAuth_Cookie(t *testing.T) {
	h, d := newTestHandler(t)
	d.auth.EXPECT().ParseToken(gomock.Any(), "from-cookie").Return(models.Token{UserID: 5}, nil)

	var got int64
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: tokenCookie, Value: "from-cookie"})
	rec := serve(h.auth(captureUser(&got)), req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, int64(5), got)
}

func TestAuth_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		setup      func(d testDeps)
		wantDetail string
	}{
		{name: "no credentials", wantDetail: app.MsgAuthenticationRequired},
		{name: "unknown scheme", header: "Token abc", wantDetail: app.MsgAuthenticationRequired},
		{name: "empty bearer", header: "Bearer ", wantDetail: app.MsgAuthenticationRequired},
		{name: "broken basic", header: "Basic !!!", wantDetail: app.MsgAuthenticationRequired},
		{
			name:   "expired token",
			header: "Bearer old",
			setup: func(d testDeps) {
				d.auth.EXPECT().ParseToken(gomock.Any(), "old").Return(models.Token{}, service.ErrTokenIsExpired)
			},
			wantDetail: app.MsgTokenIsExpired,
		},
		{
			name:   "wrong basic password",
			header: "Basic YWxpY2U6bm9wZQ==",
			setup: func(d testDeps) {
				d.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, service.ErrWrongPassword)
			},
			wantDetail: app.MsgInvalidLoginPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, d := newTestHandler(t)
			if tt.setup != nil {
				tt.setup(d)
			}

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := serve(h.auth(http.NotFoundHandler()), req)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, tt.wantDetail, decodeDetail(t, rec))
		})
	}
}

func TestLoginRequired_RedirectsToLogin(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h.loginRequired(http.NotFoundHandler()), httptest.NewRequest(http.MethodGet, "/secure-url/secured-entity/create/?x=1", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login/?next=%2Fsecure-url%2Fsecured-entity%2Fcreate%2F%3Fx%3D1", rec.Header().Get("Location"))
}

func TestWithUserAgent(t *testing.T) {
	h, d := newTestHandler(t)
	d.userAgents.EXPECT().Record(gomock.Any(), int64(9), "curl/8.5.0")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("User-Agent", "curl/8.5.0")
	req = req.WithContext(utils.WithUserID(req.Context(), 9))

	rec := serve(h.withUserAgent(http.NotFoundHandler()), req)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// anonymous requests are not recorded
	serve(h.withUserAgent(http.NotFoundHandler()), httptest.NewRequest(http.MethodGet, "/", nil))
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	token, err := getTokenFromAuthHeader("Bearer  abc ")
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	_, err = getTokenFromAuthHeader("Bearer")
	assert.ErrorIs(t, err, ErrInvalidAuthorizationHeader)

	_, err = getTokenFromAuthHeader("Bearer   ")
	assert.ErrorIs(t, err, ErrEmptyToken)
}
