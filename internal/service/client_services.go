package service

import (
	"github.com/MKhiriev/go-auth-session/internal/adapter"
	"github.com/MKhiriev/go-auth-session/internal/logger"
	"github.com/MKhiriev/go-auth-session/internal/store"
)

// ClientServices is built once at client start and passed explicitly to the
// app and the terminal UI.
type ClientServices struct {
	SessionService ClientSessionService
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		SessionService: NewClientSessionService(serverAdapter, localStore.SessionRepository, logger),
	}
}
