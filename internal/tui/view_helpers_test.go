package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-secure-url/models"
)

var entity = models.SecuredEntityResponse{
	ID:           "e-1",
	Type:         models.FileType,
	Created:      time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC),
	Password:     "abcdef012345",
	IsAccessible: true,
	AccessURL:    "https://secure.example.com/secure-url/secured-entity/e-1/access/",
}

func TestRenderEntity(t *testing.T) {
	out := RenderEntity(entity)

	assert.Contains(t, out, "e-1")
	assert.Contains(t, out, "abcdef012345")
	assert.Contains(t, out, entity.AccessURL)
	assert.Contains(t, out, "2026-03-04 05:06:07 UTC")
	assert.Contains(t, out, "accessible")
}

func TestRenderEntity_Accesses(t *testing.T) {
	accessed := entity
	accessed.Accesses = []time.Time{
		time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 4, 6, 0, 0, 0, time.UTC),
	}

	out := RenderEntity(accessed)

	assert.Contains(t, out, "Accesses")
	assert.Contains(t, out, "2026-03-05 10:00:00 UTC")
	assert.NotContains(t, RenderEntity(entity), "Last access")
}

func TestRenderEntities(t *testing.T) {
	expired := entity
	expired.ID = "e-2"
	expired.IsAccessible = false

	out := RenderEntities([]models.SecuredEntityResponse{entity, expired})

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[1], "no longer available")
	assert.NotContains(t, out, entity.Password)

	assert.Contains(t, RenderEntities(nil), "nothing secured yet")
}

func TestRenderStats(t *testing.T) {
	out := RenderStats(models.Stats{
		"2026-03-05": {Files: 1, Links: 2},
		"2026-03-04": {Files: 0, Links: 3},
	})

	first := strings.Index(out, "2026-03-04")
	second := strings.Index(out, "2026-03-05")
	assert.True(t, first >= 0 && first < second)

	assert.Contains(t, RenderStats(models.Stats{}), "no accesses recorded")
}

func TestHumanizeError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{errors.New(`Post "http://localhost:8080": dial tcp [::1]:8080: connect: connection refused`), "network is down or the server is unavailable"},
		{errors.New("context deadline exceeded"), "network is down or the server is unavailable"},
		{errors.New("not found"), "not found"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, HumanizeError(tt.err))
	}
}
