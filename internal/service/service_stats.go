package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-secure-url/internal/logger"
	"github.com/MKhiriev/go-secure-url/internal/store"
	"github.com/MKhiriev/go-secure-url/models"
)

type statsService struct {
	accessLogs store.AccessLogRepository
	logger     *logger.Logger
}

func NewStatsService(accessLogs store.AccessLogRepository, logger *logger.Logger) StatsService {
	return &statsService{accessLogs: accessLogs, logger: logger}
}

// Stats folds the per-day, per-type rows into one object per day. Days
// without accesses are absent.
func (s *statsService) Stats(ctx context.Context, owner int64) (models.Stats, error) {
	if owner <= 0 {
		return nil, ErrUnauthenticated
	}

	rows, err := s.accessLogs.Stats(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("aggregate access log: %w", err)
	}

	stats := make(models.Stats, len(rows))
	for _, row := range rows {
		day := stats[row.Day]
		day.Add(row.Type, row.Count)
		stats[row.Day] = day
	}

	return stats, nil
}
