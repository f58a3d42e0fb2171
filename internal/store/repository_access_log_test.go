package store

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-secure-url/internal/config"
	"github.com/MKhiriev/go-secure-url/internal/logger"
	"github.com/MKhiriev/go-secure-url/models"
)

func TestAccessLogAppend(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAccessLogRepository(db, logger.Nop())

	at := time.Date(2026, 3, 4, 5, 6, 7, 0, time.FixedZone("X", 3600))
	mock.ExpectQuery(`INSERT INTO secured_entity_access_logs \(secured_entity_id,created\) VALUES \(\$1,\$2\) RETURNING id`).
		WithArgs("id-1", at.UTC()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	entry, err := repo.Append(context.Background(), "id-1", at)
	require.NoError(t, err)
	assert.Equal(t, int64(42), entry.ID)
	assert.Equal(t, "id-1", entry.SecuredEntityID)
	assert.Equal(t, time.UTC, entry.Created.Location())
}

func TestAccessLogAppend_Error(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAccessLogRepository(db, logger.Nop())
	mock.ExpectQuery("INSERT INTO secured_entity_access_logs").WillReturnError(errors.New("fk violation"))

	_, err := repo.Append(context.Background(), "id-1", time.Now())
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestAccessLogListByEntity(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAccessLogRepository(db, logger.Nop())

	now := time.Now().UTC()
	mock.ExpectQuery(`SELECT id, secured_entity_id, created FROM secured_entity_access_logs WHERE secured_entity_id = \$1 ORDER BY created DESC, id DESC`).
		WithArgs("id-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "secured_entity_id", "created"}).
			AddRow(2, "id-1", now).
			AddRow(1, "id-1", now.Add(-time.Minute)))

	entries, err := repo.ListByEntity(context.Background(), "id-1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, int64(2), entries[0].ID)
}

func TestAccessLogStats_Postgres(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAccessLogRepository(db, logger.Nop())

	mock.ExpectQuery(`SELECT to_char\(l.created AT TIME ZONE 'UTC', 'YYYY-MM-DD'\) AS day, e.type, COUNT\(DISTINCT l.secured_entity_id\) ` +
		`FROM secured_entity_access_logs l JOIN secured_entities e ON e.id = l.secured_entity_id ` +
		`WHERE e.user_id = \$1 GROUP BY day, e.type ORDER BY day, e.type`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"day", "type", "count"}).
			AddRow("2026-01-01", "files", 1).
			AddRow("2026-01-01", "links", 2))

	rows, err := repo.Stats(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, []models.StatsRow{
		{Day: "2026-01-01", Type: models.FileType, Count: 1},
		{Day: "2026-01-01", Type: models.LinkType, Count: 2},
	}, rows)
}

func TestAccessLogStats_SQLiteDayExpression(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	repo := NewAccessLogRepository(newDB(conn, config.DriverSQLite, logger.Nop()), logger.Nop())

	mock.ExpectQuery(`SELECT substr\(l.created, 1, 10\) AS day .* WHERE e.user_id = \?`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"day", "type", "count"}))

	rows, err := repo.Stats(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestUserAgentSave_Truncates(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserAgentRepository(db, logger.Nop())

	long := make([]byte, models.MaxUserAgentLength+10)
	for i := range long {
		long[i] = 'a'
	}

	mock.ExpectExec(`INSERT INTO user_agent_logs \(user_id,user_agent,created\) VALUES \(\$1,\$2,\$3\)`).
		WithArgs(int64(1), string(long[:models.MaxUserAgentLength]), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Save(context.Background(), models.UserAgentLog{UserID: 1, UserAgent: string(long), Created: time.Now()})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserAgentSave_TruncatesOnRuneBoundary(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserAgentRepository(db, logger.Nop())

	// the first three-byte rune straddles the limit
	want := strings.Repeat("a", models.MaxUserAgentLength-1)
	long := want + strings.Repeat("日", 4)

	mock.ExpectExec(`INSERT INTO user_agent_logs \(user_id,user_agent,created\) VALUES \(\$1,\$2,\$3\)`).
		WithArgs(int64(1), want, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Save(context.Background(), models.UserAgentLog{UserID: 1, UserAgent: long, Created: time.Now()})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.True(t, utf8.ValidString(want))
}

func TestTruncateUTF8(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{name: "short", in: "abc", n: 5, want: "abc"},
		{name: "exact", in: "abc", n: 3, want: "abc"},
		{name: "ascii", in: "abcdef", n: 4, want: "abcd"},
		{name: "inside rune", in: "aé", n: 2, want: "a"},
		{name: "after rune", in: "éa", n: 2, want: "é"},
		{name: "wide rune", in: "x日本", n: 5, want: "x日"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateUTF8(tt.in, tt.n)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}
