package http

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/MKhiriev/go-secure-url/internal/config"
	"github.com/MKhiriev/go-secure-url/internal/logger"
	"github.com/MKhiriev/go-secure-url/internal/service"
)

//go:embed templates/*.html
var templatesFS embed.FS

// defaultMaxUploadSize is used when the storage config leaves the limit unset.
const defaultMaxUploadSize = 32 << 20

type Handler struct {
	services *service.Services

	// media serves locally stored uploads; nil for remote blob backends.
	media    http.Handler
	mediaURL string

	pages *template.Template

	maxUploadSize  int64
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, media http.Handler, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	maxUploadSize := cfg.Storage.Files.MaxUploadSize
	if maxUploadSize <= 0 {
		maxUploadSize = defaultMaxUploadSize
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		media:          media,
		mediaURL:       cfg.Storage.Files.MediaURL,
		pages:          template.Must(template.New("pages").Funcs(templateFuncs).ParseFS(templatesFS, "templates/*.html")),
		maxUploadSize:  maxUploadSize,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
