package store

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/MKhiriev/go-secure-url/internal/logger"
	"github.com/MKhiriev/go-secure-url/models"
)

type userAgentRepository struct {
	*DB
	logger *logger.Logger
}

// NewUserAgentRepository constructs a [UserAgentRepository].
func NewUserAgentRepository(db *DB, logger *logger.Logger) UserAgentRepository {
	return &userAgentRepository{
		DB:     db,
		logger: logger,
	}
}

// Save inserts one row, truncating the User-Agent to its column size.
func (u *userAgentRepository) Save(ctx context.Context, entry models.UserAgentLog) error {
	userAgent := truncateUTF8(entry.UserAgent, models.MaxUserAgentLength)

	query, args, err := u.builder.
		Insert(entry.TableName()).
		Columns("user_id", "user_agent", "created").
		Values(entry.UserID, userAgent, entry.Created.UTC()).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = u.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// truncateUTF8 cuts s to at most n bytes without splitting a rune.
func truncateUTF8(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
