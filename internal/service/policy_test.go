package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-secure-url/models"
)

func TestIsAccessible(t *testing.T) {
	created := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	window := 24 * time.Hour

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{name: "right after creation", now: created, want: true},
		{name: "one nanosecond before boundary", now: created.Add(window - time.Nanosecond), want: true},
		{name: "exactly at boundary", now: created.Add(window), want: false},
		{name: "after boundary", now: created.Add(window + time.Minute), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAccessible(created, tt.now, window))
		})
	}
}

func TestIsAccessible_ZeroWindow(t *testing.T) {
	now := time.Now()
	assert.False(t, IsAccessible(now, now, 0))
}

func TestCanManage(t *testing.T) {
	owner := int64(7)

	assert.True(t, CanManage(models.SecuredEntity{UserID: &owner}, 7))
	assert.False(t, CanManage(models.SecuredEntity{UserID: &owner}, 8))
	assert.False(t, CanManage(models.SecuredEntity{}, 7), "orphaned entity")
	assert.False(t, CanManage(models.SecuredEntity{}, 0))
}
