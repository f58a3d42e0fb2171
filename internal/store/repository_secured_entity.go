package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-secure-url/internal/logger"
	"github.com/MKhiriev/go-secure-url/models"
)

var securedEntityColumns = []string{"id", "user_id", "type", "url", "file", "password_salt", "created"}

// securedEntityRepository is the SQL implementation of
// [SecuredEntityRepository] over the "secured_entities" table.
type securedEntityRepository struct {
	*DB
	logger *logger.Logger
}

// NewSecuredEntityRepository constructs a [SecuredEntityRepository].
func NewSecuredEntityRepository(db *DB, logger *logger.Logger) SecuredEntityRepository {
	logger.Debug().Msg("creating secured entity repository")
	return &securedEntityRepository{
		DB:     db,
		logger: logger,
	}
}

// Create inserts a new secured entity. Timestamps are stored in UTC.
func (s *securedEntityRepository) Create(ctx context.Context, entity models.SecuredEntity) error {
	log := logger.FromContext(ctx)

	query, args, err := s.builder.
		Insert(entity.TableName()).
		Columns(securedEntityColumns...).
		Values(entity.ID, entity.UserID, entity.Type, entity.URL, entity.File, entity.PasswordSalt, entity.Created.UTC()).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := s.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "securedEntityRepository.Create").
			Str("id", entity.ID).
			Bool("retryable", s.errorClassificator.Classify(err) == Retryable).
			Msg("failed to insert secured entity")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrSecuredEntityNotSaved
	}

	return nil
}

// Get returns the entity with the given id or [ErrSecuredEntityNotFound].
func (s *securedEntityRepository) Get(ctx context.Context, id string) (models.SecuredEntity, error) {
	log := logger.FromContext(ctx)

	query, args, err := s.builder.
		Select(securedEntityColumns...).
		From(models.SecuredEntity{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.SecuredEntity{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	entity, err := scanSecuredEntity(s.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.SecuredEntity{}, ErrSecuredEntityNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "securedEntityRepository.Get").
			Str("id", id).
			Msg("failed to select secured entity")
		return models.SecuredEntity{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return entity, nil
}

// ListByOwner returns the entities of userID ordered by creation time,
// newest first.
func (s *securedEntityRepository) ListByOwner(ctx context.Context, userID int64) ([]models.SecuredEntity, error) {
	log := logger.FromContext(ctx)

	query, args, err := s.builder.
		Select(securedEntityColumns...).
		From(models.SecuredEntity{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "securedEntityRepository.ListByOwner").
			Int64("user_id", userID).
			Msg("failed to execute query for listing secured entities")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entities := make([]models.SecuredEntity, 0, 16)
	for rows.Next() {
		entity, scanErr := scanSecuredEntity(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "securedEntityRepository.ListByOwner").
				Int64("user_id", userID).
				Msg("failed to scan secured entity row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		entities = append(entities, entity)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", "securedEntityRepository.ListByOwner").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entities, nil
}

// UpdatePasswordSalt overwrites the salt of a single entity. Concurrent
// updates are last-write-wins.
func (s *securedEntityRepository) UpdatePasswordSalt(ctx context.Context, id, salt string) error {
	log := logger.FromContext(ctx)

	query, args, err := s.builder.
		Update(models.SecuredEntity{}.TableName()).
		Set("password_salt", salt).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := s.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "securedEntityRepository.UpdatePasswordSalt").
			Str("id", id).
			Msg("failed to update password salt")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrSecuredEntityNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSecuredEntity(row rowScanner) (models.SecuredEntity, error) {
	var entity models.SecuredEntity
	err := row.Scan(
		&entity.ID,
		&entity.UserID,
		&entity.Type,
		&entity.URL,
		&entity.File,
		&entity.PasswordSalt,
		&entity.Created,
	)
	entity.Created = entity.Created.UTC()

	return entity, err
}
