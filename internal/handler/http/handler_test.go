package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-secure-url/internal/config"
	"github.com/MKhiriev/go-secure-url/internal/logger"
	"github.com/MKhiriev/go-secure-url/internal/mock"
	"github.com/MKhiriev/go-secure-url/internal/service"
	"github.com/MKhiriev/go-secure-url/models"
)

const (
	testOwner = int64(7)
	testToken = "valid-token"
)

type testDeps struct {
	auth       *mock.MockAuthService
	entities   *mock.MockSecuredEntityService
	access     *mock.MockAccessService
	stats      *mock.MockStatsService
	userAgents *mock.MockUserAgentService
	appInfo    *mock.MockAppInfoService
}

func newTestHandler(t *testing.T) (*Handler, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	d := testDeps{
		auth:       mock.NewMockAuthService(ctrl),
		entities:   mock.NewMockSecuredEntityService(ctrl),
		access:     mock.NewMockAccessService(ctrl),
		stats:      mock.NewMockStatsService(ctrl),
		userAgents: mock.NewMockUserAgentService(ctrl),
		appInfo:    mock.NewMockAppInfoService(ctrl),
	}

	services := &service.Services{
		AuthService:          d.auth,
		SecuredEntityService: d.entities,
		AccessService:        d.access,
		StatsService:         d.stats,
		UserAgentService:     d.userAgents,
		AppInfoService:       d.appInfo,
	}

	media := http.StripPrefix("/media/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("media:" + r.URL.Path))
	}))

	cfg := config.StructuredConfig{
		Server:  config.Server{RequestTimeout: 5 * time.Second},
		Storage: config.Storage{Files: config.Files{MediaURL: "/media/", MaxUploadSize: 1 << 20}},
	}

	return NewHandler(services, media, cfg, logger.Nop()), d
}

func newTestRouter(t *testing.T) (http.Handler, testDeps) {
	t.Helper()
	h, d := newTestHandler(t)
	return h.Init(), d
}

// expectAuthenticated accepts testToken as testOwner and swallows the
// user agent bookkeeping.
func (d testDeps) expectAuthenticated() {
	d.auth.EXPECT().ParseToken(gomock.Any(), testToken).Return(models.Token{UserID: testOwner}, nil).AnyTimes()
	d.userAgents.EXPECT().Record(gomock.Any(), testOwner, gomock.Any()).AnyTimes()
}

func authorized(req *http.Request) *http.Request {
	req.Header.Set("Authorization", "Bearer "+testToken)
	return req
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestNewHandler(t *testing.T) {
	h := NewHandler(&service.Services{}, nil, config.StructuredConfig{}, logger.Nop())

	require.NotNil(t, h)
	require.NotNil(t, h.pages)
	assert.Equal(t, int64(defaultMaxUploadSize), h.maxUploadSize)

	for _, name := range []string{"login.html", "list.html", "create.html", "detail.html", "access.html"} {
		assert.NotNil(t, h.pages.Lookup(name), name)
	}
}

func TestRoutes_MethodNotAllowed(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := serve(router, httptest.NewRequest(http.MethodDelete, "/api/user/login", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "POST", rec.Header().Get("Allow"))
}

func TestRoutes_UnknownPath(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoutes_Media(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/media/secure_url/files/x/a.txt", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "media:secure_url/files/x/a.txt", rec.Body.String())
}

func TestRoutes_TraceIDEchoed(t *testing.T) {
	router, d := newTestRouter(t)
	d.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v1")

	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	rec := serve(router, req)

	assert.Equal(t, "trace-123", rec.Header().Get(traceIDHeader))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "v1"))
}
