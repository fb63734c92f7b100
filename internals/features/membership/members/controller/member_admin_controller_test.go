package controller

import (
	"bytes"
	"database/sql"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
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

const manualEntryBody = `{
	"full_name": "Yaw Darko",
	"program": "BSc Physics",
	"level": 200,
	"phone": "0551112222",
	"custom_id": "24/500"
}`

func TestCreateManualMember_DuplicateCodeConflict(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	ctrl := NewMemberAdminController(db)
	app := fiber.New()
	app.Post("/api/a/members", ctrl.CreateManualMember)

	mock.ExpectQuery(`INSERT INTO "members"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_members_member_code"})

	req := httptest.NewRequest("POST", "/api/a/members", bytes.NewBufferString(manualEntryBody))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Contains(t, string(body), "already taken")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateManualMember_OverrideCodeSaved(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	ctrl := NewMemberAdminController(db)
	app := fiber.New()
	app.Post("/api/a/members", ctrl.CreateManualMember)

	mock.ExpectQuery(`INSERT INTO "members"`).
		WillReturnRows(sqlmock.NewRows([]string{"member_id"}).AddRow(uuid.New()))

	req := httptest.NewRequest("POST", "/api/a/members", bytes.NewBufferString(manualEntryBody))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode, string(body))
	assert.Contains(t, string(body), `"24/500"`)
	assert.Contains(t, string(body), `"member_is_manual":true`)
	assert.NoError(t, mock.ExpectationsWereMet())
}
