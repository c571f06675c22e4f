package service

import (
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

func newMockTesterService(t *testing.T) (*TesterService, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return NewTesterService(gdb), mock
}

func expectAppRow(mock sqlmock.Sqlmock, appID uuid.UUID, submissionType string, createdBy *uuid.UUID) {
	rows := sqlmock.NewRows([]string{"id", "name", "submission_type", "status", "created_by"})
	if createdBy != nil {
		rows.AddRow(appID.String(), "Beta Wallet", submissionType, "pending", createdBy.String())
	} else {
		rows.AddRow(appID.String(), "Beta Wallet", submissionType, "pending", nil)
	}
	mock.ExpectQuery(`SELECT \* FROM "apps" WHERE id = \$1`).
		WithArgs(appID, 1).
		WillReturnRows(rows)
}

func fiberCode(t *testing.T, err error) int {
	t.Helper()
	fe, ok := err.(*fiber.Error)
	require.True(t, ok, "expected *fiber.Error, got %T: %v", err, err)
	return fe.Code
}

func TestRegisterAppNotFound(t *testing.T) {
	svc, mock := newMockTesterService(t)

	appID := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "apps" WHERE id = \$1`).
		WithArgs(appID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.Register(appID, uuid.New())
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterRejectsLiveListing(t *testing.T) {
	svc, mock := newMockTesterService(t)

	appID := uuid.New()
	expectAppRow(mock, appID, "live", nil)

	_, err := svc.Register(appID, uuid.New())
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterRejectsOwnApp(t *testing.T) {
	svc, mock := newMockTesterService(t)

	appID := uuid.New()
	owner := uuid.New()
	expectAppRow(mock, appID, "test", &owner)

	_, err := svc.Register(appID, owner)
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterDuplicateIsConflict(t *testing.T) {
	svc, mock := newMockTesterService(t)

	appID := uuid.New()
	owner := uuid.New()
	expectAppRow(mock, appID, "test", &owner)

	// Unique index (app_id, user_id) di storage menolak baris kedua
	mock.ExpectQuery(`INSERT INTO "test_requests"`).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "uq_test_requests_app_user"})

	_, err := svc.Register(appID, uuid.New())
	assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterHappyPath(t *testing.T) {
	svc, mock := newMockTesterService(t)

	appID := uuid.New()
	owner := uuid.New()
	userID := uuid.New()
	expectAppRow(mock, appID, "test", &owner)

	newID := uuid.New()
	mock.ExpectQuery(`INSERT INTO "test_requests"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(newID.String()))

	req, err := svc.Register(appID, userID)
	require.NoError(t, err)
	assert.Equal(t, appID, req.AppID)
	assert.Equal(t, userID, req.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnregisterTwiceIsNotFound(t *testing.T) {
	svc, mock := newMockTesterService(t)

	appID := uuid.New()
	userID := uuid.New()

	mock.ExpectExec(`DELETE FROM "test_requests" WHERE app_id = \$1 AND user_id = \$2`).
		WithArgs(appID, userID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "test_requests" WHERE app_id = \$1 AND user_id = \$2`).
		WithArgs(appID, userID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, svc.Unregister(appID, userID))

	err := svc.Unregister(appID, userID)
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListApplicantsRequiresOwnership(t *testing.T) {
	svc, mock := newMockTesterService(t)

	appID := uuid.New()
	owner := uuid.New()
	mock.ExpectQuery(`SELECT "id","created_by" FROM "apps" WHERE id = \$1`).
		WithArgs(appID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_by"}).
			AddRow(appID.String(), owner.String()))

	_, err := svc.ListApplicantsFor(appID, uuid.New(), false)
	assert.Equal(t, fiber.StatusForbidden, fiberCode(t, err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListApplicantsAdminBypassesOwnership(t *testing.T) {
	svc, mock := newMockTesterService(t)

	appID := uuid.New()
	mock.ExpectQuery(`JOIN users ON users\.id = test_requests\.user_id`).
		WithArgs(appID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "app_id", "user_id", "email", "name"}).
			AddRow(uuid.NewString(), appID.String(), uuid.NewString(), "tester@example.com", "Tester"))

	applicants, err := svc.ListApplicantsFor(appID, uuid.New(), true)
	require.NoError(t, err)
	require.Len(t, applicants, 1)
	assert.Equal(t, "tester@example.com", applicants[0].Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}
