package auth

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// App mini: locals diisi seolah sudah lewat AuthMiddleware, lalu AdminContext,
// handler akhir mengembalikan role hasil resolve.
func newAdminTestApp(t *testing.T, userID uuid.UUID, email string) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", userID.String())
		c.Locals("user_email", email)
		c.Locals("userRole", "user")
		return c.Next()
	})
	app.Use(AdminContext(gdb))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		role, _ := c.Locals("userRole").(string)
		return c.SendString(role)
	})

	return app, mock
}

func doWhoami(t *testing.T, app *fiber.App) (int, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", "/whoami", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestAdminContextOverwritesTokenRole(t *testing.T) {
	app, mock := newAdminTestApp(t, uuid.New(), "Root@Example.com")

	// Role diambil dari tabel, klaim "user" di token diabaikan
	mock.ExpectQuery(`SELECT \* FROM "admin_users" WHERE lower\(email\) = lower\(\$1\)`).
		WithArgs("Root@Example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "role"}).
			AddRow(uuid.NewString(), "root@example.com", "super_admin"))

	status, body := doWhoami(t, app)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "super_admin", body)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminContextRejectsNonAdminWhenTableFilled(t *testing.T) {
	app, mock := newAdminTestApp(t, uuid.New(), "user@example.com")

	mock.ExpectQuery(`SELECT \* FROM "admin_users" WHERE lower\(email\) = lower\(\$1\)`).
		WithArgs("user@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "admin_users"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	status, _ := doWhoami(t, app)
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminContextBootstrapsFirstVisitor(t *testing.T) {
	app, mock := newAdminTestApp(t, uuid.New(), "First@Example.com")

	mock.ExpectQuery(`SELECT \* FROM "admin_users" WHERE lower\(email\) = lower\(\$1\)`).
		WithArgs("First@Example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "admin_users"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	// Email disimpan lowercase
	mock.ExpectQuery(`INSERT INTO "admin_users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.NewString()))

	status, body := doWhoami(t, app)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "super_admin", body)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminContextBootstrapLostRaceRereads(t *testing.T) {
	app, mock := newAdminTestApp(t, uuid.New(), "first@example.com")

	mock.ExpectQuery(`SELECT \* FROM "admin_users" WHERE lower\(email\) = lower\(\$1\)`).
		WithArgs("first@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "admin_users"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	// Kalah race: unique index lower(email) menolak insert, re-read baris pemenang
	mock.ExpectQuery(`INSERT INTO "admin_users"`).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "uq_admin_users_email_lower"})
	mock.ExpectQuery(`SELECT \* FROM "admin_users" WHERE lower\(email\) = lower\(\$1\)`).
		WithArgs("first@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "role"}).
			AddRow(uuid.NewString(), "first@example.com", "super_admin"))

	status, body := doWhoami(t, app)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "super_admin", body)
	assert.NoError(t, mock.ExpectationsWereMet())
}
