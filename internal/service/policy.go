package service

import (
	"time"

	"github.com/MKhiriev/go-secure-url/models"
)

// IsAccessible reports whether an entity created at created is still inside
// its access window at now. The boundary itself is already closed.
func IsAccessible(created, now time.Time, window time.Duration) bool {
	return now.Before(created.Add(window))
}

// CanManage reports whether principal may view or change entity.
// Entities whose owner was deleted can no longer be managed by anyone.
func CanManage(entity models.SecuredEntity, principal int64) bool {
	return entity.IsOwnedBy(principal)
}
