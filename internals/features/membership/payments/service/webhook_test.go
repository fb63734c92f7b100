package service

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

	"github.com/chrisarpong/TEIN-Registration/internals/constants"
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

func paymentColumns() []string {
	return []string{
		"payment_id", "payment_member_id", "payment_amount", "payment_type",
		"payment_order_id", "payment_status", "payment_paid_at", "payment_created_at",
	}
}

func memberColumns() []string {
	return []string{
		"member_id", "member_code", "member_full_name", "member_program",
		"member_level", "member_phone", "member_email", "member_status",
	}
}

func TestSettlePayment_UnknownStatusIgnored(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	err := SettlePayment(db, "TEINREG-1", "pending")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettlePayment_UnknownOrder(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "payments".*FOR UPDATE`).
		WithArgs("TEINREG-404", 1).
		WillReturnRows(sqlmock.NewRows(paymentColumns()))
	mock.ExpectRollback()

	err := SettlePayment(db, "TEINREG-404", "settlement")
	assert.ErrorIs(t, err, ErrUnknownOrder)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettlePayment_ReplayedNotificationIsNoOp(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	paymentID := uuid.New()
	memberID := uuid.New()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "payments".*FOR UPDATE`).
		WithArgs("TEINREG-2", 1).
		WillReturnRows(sqlmock.NewRows(paymentColumns()).
			AddRow(paymentID, memberID, 15.00, constants.PaymentTypeRegistrationStandard,
				"TEINREG-2", constants.PaymentStatusSuccess, now, now))
	mock.ExpectCommit()

	err := SettlePayment(db, "TEINREG-2", "settlement")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettlePayment_SettlementActivatesMemberAndQueuesEmail(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	paymentID := uuid.New()
	memberID := uuid.New()
	now := time.Now()
	code := "25/1301"

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "payments".*FOR UPDATE`).
		WithArgs("TEINREG-3", 1).
		WillReturnRows(sqlmock.NewRows(paymentColumns()).
			AddRow(paymentID, memberID, 15.00, constants.PaymentTypeRegistrationStandard,
				"TEINREG-3", constants.PaymentStatusPending, nil, now))

	// mark the payment paid
	mock.ExpectExec(`UPDATE "payments" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	// pending member, no code yet
	mock.ExpectQuery(`SELECT \* FROM "members"`).
		WithArgs(memberID, 1).
		WillReturnRows(sqlmock.NewRows(memberColumns()).
			AddRow(memberID, nil, "Ama Mensah", "B.Ed Social Sciences",
				200, "0551112222", "ama@ucc.edu.gh", constants.MemberStatusPending))

	// activation flip; the trigger fills member_code server-side
	mock.ExpectExec(`UPDATE "members" SET "member_status"`).
		WithArgs(constants.MemberStatusActive, memberID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	// reload picks up the assigned code
	mock.ExpectQuery(`SELECT \* FROM "members"`).
		WithArgs(memberID, 1).
		WillReturnRows(sqlmock.NewRows(memberColumns()).
			AddRow(memberID, code, "Ama Mensah", "B.Ed Social Sciences",
				200, "0551112222", "ama@ucc.edu.gh", constants.MemberStatusActive))

	mock.ExpectQuery(`INSERT INTO "email_outbox"`).
		WillReturnRows(sqlmock.NewRows([]string{"outbox_id"}).AddRow(uuid.New()))

	mock.ExpectCommit()

	err := SettlePayment(db, "TEINREG-3", "settlement")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettlePayment_RenewalDoesNotTouchMemberStatus(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	paymentID := uuid.New()
	memberID := uuid.New()
	now := time.Now()
	code := "24/1188"

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "payments".*FOR UPDATE`).
		WithArgs("TEINRNW-9", 1).
		WillReturnRows(sqlmock.NewRows(paymentColumns()).
			AddRow(paymentID, memberID, 5.00, constants.PaymentTypeRenewal,
				"TEINRNW-9", constants.PaymentStatusPending, nil, now))

	mock.ExpectExec(`UPDATE "payments" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	// active member keeps its status; no member UPDATE must follow
	mock.ExpectQuery(`SELECT \* FROM "members"`).
		WithArgs(memberID, 1).
		WillReturnRows(sqlmock.NewRows(memberColumns()).
			AddRow(memberID, code, "Kofi Owusu", "BSc Biochemistry",
				300, "0249998877", "kofi@ucc.edu.gh", constants.MemberStatusActive))

	mock.ExpectQuery(`INSERT INTO "email_outbox"`).
		WillReturnRows(sqlmock.NewRows([]string{"outbox_id"}).AddRow(uuid.New()))

	mock.ExpectCommit()

	err := SettlePayment(db, "TEINRNW-9", "settlement")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettlePayment_ExpireMarksPaymentFailed(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectExec(`UPDATE "payments" SET "payment_status"`).
		WithArgs(constants.PaymentStatusFailed, "TEINREG-7", constants.PaymentStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := SettlePayment(db, "TEINREG-7", "expire")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
