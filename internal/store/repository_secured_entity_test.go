package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-secure-url/internal/logger"
	"github.com/MKhiriev/go-secure-url/models"
)

var entityColumns = []string{"id", "user_id", "type", "url", "file", "password_salt", "created"}

func strPtr(s string) *string { return &s }
func int64Ptr(i int64) *int64 { return &i }

func TestSecuredEntityCreate(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSecuredEntityRepository(db, logger.Nop())

	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	entity := models.SecuredEntity{
		ID:           "a8098c1a-f86e-11da-bd1a-00112444be1e",
		UserID:       int64Ptr(1),
		Type:         models.LinkType,
		URL:          strPtr("https://example.com"),
		PasswordSalt: "0123456789abcdef0123456789abcdef",
		Created:      created,
	}

	mock.ExpectExec(`INSERT INTO secured_entities \(id,user_id,type,url,file,password_salt,created\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6,\$7\)`).
		WithArgs(entity.ID, entity.UserID, entity.Type, entity.URL, entity.File, entity.PasswordSalt, created).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), entity))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSecuredEntityCreate_Errors(t *testing.T) {
	t.Run("exec error", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewSecuredEntityRepository(db, logger.Nop())
		mock.ExpectExec("INSERT INTO secured_entities").WillReturnError(errors.New("boom"))

		err := repo.Create(context.Background(), models.SecuredEntity{ID: "x", Type: models.LinkType})
		assert.ErrorIs(t, err, ErrExecutingStatement)
	})

	t.Run("no rows affected", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewSecuredEntityRepository(db, logger.Nop())
		mock.ExpectExec("INSERT INTO secured_entities").WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Create(context.Background(), models.SecuredEntity{ID: "x", Type: models.LinkType})
		assert.ErrorIs(t, err, ErrSecuredEntityNotSaved)
	})
}

func TestSecuredEntityGet(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("file entity without owner", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewSecuredEntityRepository(db, logger.Nop())

		mock.ExpectQuery(`SELECT id, user_id, type, url, file, password_salt, created FROM secured_entities WHERE id = \$1`).
			WithArgs("id-1").
			WillReturnRows(sqlmock.NewRows(entityColumns).
				AddRow("id-1", nil, "files", nil, "secure_url/files/u/a.txt", "salt", created))

		entity, err := repo.Get(context.Background(), "id-1")
		require.NoError(t, err)
		assert.Nil(t, entity.UserID)
		assert.Nil(t, entity.URL)
		require.NotNil(t, entity.File)
		assert.Equal(t, "secure_url/files/u/a.txt", *entity.File)
		assert.Equal(t, models.FileType, entity.Type)
		assert.True(t, entity.Created.Equal(created))
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewSecuredEntityRepository(db, logger.Nop())
		mock.ExpectQuery("SELECT").WillReturnError(sql.ErrNoRows)

		_, err := repo.Get(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrSecuredEntityNotFound)
	})

	t.Run("db error", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewSecuredEntityRepository(db, logger.Nop())
		mock.ExpectQuery("SELECT").WillReturnError(errors.New("boom"))

		_, err := repo.Get(context.Background(), "id")
		assert.ErrorIs(t, err, ErrScanningRow)
	})
}

func TestSecuredEntityListByOwner(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSecuredEntityRepository(db, logger.Nop())

	now := time.Now().UTC()
	mock.ExpectQuery(`SELECT .* FROM secured_entities WHERE user_id = \$1 ORDER BY created DESC, id`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(entityColumns).
			AddRow("b", 3, "links", "https://b.example", nil, "s2", now).
			AddRow("a", 3, "files", nil, "k", "s1", now.Add(-time.Hour)))

	entities, err := repo.ListByOwner(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, entities, 2)
	assert.Equal(t, "b", entities[0].ID)
	assert.Equal(t, int64(3), *entities[0].UserID)
	assert.Equal(t, "a", entities[1].ID)
}

func TestSecuredEntityListByOwner_Empty(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSecuredEntityRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows(entityColumns))

	entities, err := repo.ListByOwner(context.Background(), 3)
	require.NoError(t, err)
	assert.NotNil(t, entities)
	assert.Empty(t, entities)
}

func TestSecuredEntityListByOwner_RowError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSecuredEntityRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows(entityColumns).
		AddRow("a", 3, "links", "https://a", nil, "s", time.Now()).
		RowError(0, errors.New("row broke")))

	_, err := repo.ListByOwner(context.Background(), 3)
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestSecuredEntityUpdatePasswordSalt(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewSecuredEntityRepository(db, logger.Nop())
		mock.ExpectExec(`UPDATE secured_entities SET password_salt = \$1 WHERE id = \$2`).
			WithArgs("new-salt", "id-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdatePasswordSalt(context.Background(), "id-1", "new-salt"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewSecuredEntityRepository(db, logger.Nop())
		mock.ExpectExec("UPDATE secured_entities").WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.UpdatePasswordSalt(context.Background(), "id-1", "s"), ErrSecuredEntityNotFound)
	})
}
