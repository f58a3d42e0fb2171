package service

import (
	"github.com/MKhiriev/go-secure-url/internal/adapter"
	"github.com/MKhiriev/go-secure-url/internal/logger"
)

type ClientServices struct {
	AuthService          ClientAuthService
	SecuredEntityService ClientSecuredEntityService
}

func NewClientServices(serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:          NewClientAuthService(serverAdapter, logger),
		SecuredEntityService: NewClientSecuredEntityService(serverAdapter, logger),
	}
}
