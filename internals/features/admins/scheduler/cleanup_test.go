package scheduler

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	var db *sql.DB
	var mock sqlmock.Sqlmock
	var err error

	db, mock, err = sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       db,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gormDB, mock, func() { db.Close() }
}

func TestPruneExpiredTokens_HardDeletes(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	cutoff := time.Now()
	tokenID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "token_blacklist" WHERE expired_at <`).
		WithArgs(cutoff, 100).
		WillReturnRows(sqlmock.NewRows([]string{"blacklist_id", "token", "expired_at"}).
			AddRow(tokenID, "stale-token", cutoff.Add(-time.Hour)))

	// a real DELETE, not a soft-delete UPDATE
	mock.ExpectExec(`DELETE FROM "token_blacklist"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	n, err := pruneExpiredTokens(db, cutoff)
	assert.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPruneExpiredTokens_NothingExpired(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	cutoff := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "token_blacklist" WHERE expired_at <`).
		WithArgs(cutoff, 100).
		WillReturnRows(sqlmock.NewRows([]string{"blacklist_id"}))

	n, err := pruneExpiredTokens(db, cutoff)
	assert.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
