package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-secure-url/internal/logger"
	"github.com/MKhiriev/go-secure-url/internal/store"
	"github.com/MKhiriev/go-secure-url/models"
)

type userAgentService struct {
	userAgents store.UserAgentRepository
	now        func() time.Time
	logger     *logger.Logger
}

func NewUserAgentService(userAgents store.UserAgentRepository, logger *logger.Logger) UserAgentService {
	return &userAgentService{userAgents: userAgents, now: time.Now, logger: logger}
}

// Record never fails the caller; storage errors are only logged.
func (u *userAgentService) Record(ctx context.Context, userID int64, userAgent string) {
	entry := models.UserAgentLog{
		UserID:    userID,
		UserAgent: userAgent,
		Created:   u.now().UTC(),
	}

	if err := u.userAgents.Save(ctx, entry); err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("error saving user agent")
	}
}
