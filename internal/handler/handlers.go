package handler

import (
	nethttp "net/http"

	"github.com/MKhiriev/go-secure-url/internal/config"
	"github.com/MKhiriev/go-secure-url/internal/handler/http"
	"github.com/MKhiriev/go-secure-url/internal/logger"
	"github.com/MKhiriev/go-secure-url/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers enabled by cfg. media serves
// locally stored uploads and may be nil.
func NewHandlers(services *service.Services, media nethttp.Handler, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, media, cfg, logger),
	}, nil
}
