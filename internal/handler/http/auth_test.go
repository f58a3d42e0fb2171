package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-secure-url/internal/app"
	"github.com/MKhiriev/go-secure-url/internal/service"
	"github.com/MKhiriev/go-secure-url/internal/store"
	"github.com/MKhiriev/go-secure-url/models"
)

func decodeDetail(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["detail"]
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(d testDeps)
		wantStatus int
		wantBearer bool
		wantDetail string
	}{
		{
			name: "success",
			body: `{"login":"alice","password":"secret"}`,
			setup: func(d testDeps) {
				d.auth.EXPECT().RegisterUser(gomock.Any(), models.User{Login: "alice", Password: "secret"}).
					Return(models.User{UserID: 1, Login: "alice"}, nil)
				d.auth.EXPECT().CreateToken(gomock.Any(), models.User{UserID: 1, Login: "alice"}).
					Return(models.Token{SignedString: "jwt"}, nil)
			},
			wantStatus: http.StatusOK,
			wantBearer: true,
		},
		{
			name:       "bad json",
			body:       `{"login":`,
			setup:      func(d testDeps) {},
			wantStatus: http.StatusBadRequest,
			wantDetail: app.MsgInvalidDataProvided,
		},
		{
			name: "invalid data",
			body: `{"login":""}`,
			setup: func(d testDeps) {
				d.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).
					Return(models.User{}, fmt.Errorf("%w: empty", service.ErrInvalidDataProvided))
			},
			wantStatus: http.StatusBadRequest,
			wantDetail: app.MsgInvalidDataProvided,
		},
		{
			name: "login taken",
			body: `{"login":"alice","password":"secret"}`,
			setup: func(d testDeps) {
				d.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).
					Return(models.User{}, fmt.Errorf("user creation ended with error: %w", store.ErrLoginAlreadyExists))
			},
			wantStatus: http.StatusConflict,
			wantDetail: app.MsgLoginAlreadyExists,
		},
		{
			name: "token failure",
			body: `{"login":"alice","password":"secret"}`,
			setup: func(d testDeps) {
				d.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(models.User{UserID: 1}, nil)
				d.auth.EXPECT().CreateToken(gomock.Any(), gomock.Any()).Return(models.Token{}, service.ErrTokenCreationFailed)
			},
			wantStatus: http.StatusInternalServerError,
			wantDetail: app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, d := newTestRouter(t)
			tt.setup(d)

			rec := serve(router, httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBearer {
				assert.Equal(t, "Bearer jwt", rec.Header().Get("Authorization"))
			}
			if tt.wantDetail != "" {
				assert.Equal(t, tt.wantDetail, decodeDetail(t, rec))
			}
		})
	}
}

func TestLogin(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, d := newTestRouter(t)
		d.auth.EXPECT().Login(gomock.Any(), models.User{Login: "alice", Password: "secret"}).Return(models.User{UserID: 1}, nil)
		d.auth.EXPECT().CreateToken(gomock.Any(), models.User{UserID: 1}).Return(models.Token{SignedString: "jwt"}, nil)

		rec := serve(router, httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader(`{"login":"alice","password":"secret"}`)))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Bearer jwt", rec.Header().Get("Authorization"))
	})

	t.Run("wrong password", func(t *testing.T) {
		router, d := newTestRouter(t)
		d.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, service.ErrWrongPassword)

		rec := serve(router, httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader(`{"login":"alice","password":"x"}`)))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, app.MsgInvalidLoginPassword, decodeDetail(t, rec))
	})
}
