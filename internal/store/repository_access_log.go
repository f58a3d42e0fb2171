package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-secure-url/internal/logger"
	"github.com/MKhiriev/go-secure-url/models"
)

// accessLogRepository is the SQL implementation of [AccessLogRepository]
// over the "secured_entity_access_logs" table.
type accessLogRepository struct {
	*DB
	logger *logger.Logger
}

// NewAccessLogRepository constructs an [AccessLogRepository].
func NewAccessLogRepository(db *DB, logger *logger.Logger) AccessLogRepository {
	logger.Debug().Msg("creating access log repository")
	return &accessLogRepository{
		DB:     db,
		logger: logger,
	}
}

// Append records one successful access.
func (a *accessLogRepository) Append(ctx context.Context, securedEntityID string, created time.Time) (models.AccessLogEntry, error) {
	log := logger.FromContext(ctx)

	entry := models.AccessLogEntry{SecuredEntityID: securedEntityID, Created: created.UTC()}
	query, args, err := a.builder.
		Insert(entry.TableName()).
		Columns("secured_entity_id", "created").
		Values(entry.SecuredEntityID, entry.Created).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return models.AccessLogEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = a.QueryRowContext(ctx, query, args...).Scan(&entry.ID); err != nil {
		log.Err(err).
			Str("func", "accessLogRepository.Append").
			Str("secured_entity_id", securedEntityID).
			Bool("retryable", a.errorClassificator.Classify(err) == Retryable).
			Msg("failed to append access log entry")
		return models.AccessLogEntry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return entry, nil
}

// ListByEntity returns the entity's access log, most recent first.
func (a *accessLogRepository) ListByEntity(ctx context.Context, securedEntityID string) ([]models.AccessLogEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := a.builder.
		Select("id", "secured_entity_id", "created").
		From(models.AccessLogEntry{}.TableName()).
		Where(sq.Eq{"secured_entity_id": securedEntityID}).
		OrderBy("created DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := a.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "accessLogRepository.ListByEntity").
			Str("secured_entity_id", securedEntityID).
			Msg("failed to execute query for listing access logs")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.AccessLogEntry, 0, 16)
	for rows.Next() {
		var entry models.AccessLogEntry
		if err = rows.Scan(&entry.ID, &entry.SecuredEntityID, &entry.Created); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		entry.Created = entry.Created.UTC()
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

// Stats aggregates the access log of ownerID's entities by UTC day and
// entity type, counting each entity at most once per day.
func (a *accessLogRepository) Stats(ctx context.Context, ownerID int64) ([]models.StatsRow, error) {
	log := logger.FromContext(ctx)

	day := a.dayExpr("l.created") + " AS day"
	logs := models.AccessLogEntry{}.TableName() + " l"
	entities := models.SecuredEntity{}.TableName() + " e ON e.id = l.secured_entity_id"

	query, args, err := a.builder.
		Select(day, "e.type", "COUNT(DISTINCT l.secured_entity_id)").
		From(logs).
		Join(entities).
		Where(sq.Eq{"e.user_id": ownerID}).
		GroupBy("day", "e.type").
		OrderBy("day", "e.type").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := a.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "accessLogRepository.Stats").
			Int64("owner_id", ownerID).
			Msg("failed to execute stats query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	stats := make([]models.StatsRow, 0, 16)
	for rows.Next() {
		var row models.StatsRow
		if err = rows.Scan(&row.Day, &row.Type, &row.Count); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		stats = append(stats, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return stats, nil
}
