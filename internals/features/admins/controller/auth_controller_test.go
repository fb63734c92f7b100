package controller

import (
	"database/sql"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
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

func logoutApp(ctrl *AuthController) *fiber.App {
	app := fiber.New()
	// stand-in for the JWT guard's locals
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("jwt_token", "revoked-token")
		c.Locals("jwt_claims", jwt.MapClaims{
			"exp": float64(time.Now().Add(time.Hour).Unix()),
		})
		return c.Next()
	})
	app.Post("/api/a/auth/logout", ctrl.Logout)
	return app
}

func TestLogout_BlacklistsToken(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	ctrl := NewAuthController(db, "secret")
	app := logoutApp(ctrl)

	mock.ExpectQuery(`INSERT INTO "token_blacklist"`).
		WillReturnRows(sqlmock.NewRows([]string{"blacklist_id"}).AddRow(uuid.New()))

	resp, err := app.Test(httptest.NewRequest("POST", "/api/a/auth/logout", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogout_SecondCallIsStillLoggedOut(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	ctrl := NewAuthController(db, "secret")
	app := logoutApp(ctrl)

	// the token row already exists from the first logout
	mock.ExpectQuery(`INSERT INTO "token_blacklist"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_token_blacklist_token"})

	resp, err := app.Test(httptest.NewRequest("POST", "/api/a/auth/logout", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
