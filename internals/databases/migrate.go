package database

import (
	"log"

	"gorm.io/gorm"

	adminModel "github.com/chrisarpong/TEIN-Registration/internals/features/admins/model"
	memberModel "github.com/chrisarpong/TEIN-Registration/internals/features/membership/members/model"
	paymentModel "github.com/chrisarpong/TEIN-Registration/internals/features/membership/payments/model"
	outboxModel "github.com/chrisarpong/TEIN-Registration/internals/features/notifications/model"
)

// Migrate creates the schema and the member-code assignment trigger.
//
// Member codes are assigned inside Postgres: when a row becomes Active with
// no code, the trigger writes "<admission_year_prefix>/<sequence>". Two
// simultaneous registrations therefore never race in Go, and the unique
// index on member_code stays the single uniqueness authority.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		return err
	}

	if err := db.AutoMigrate(
		&memberModel.MemberModel{},
		&paymentModel.PaymentModel{},
		&outboxModel.EmailOutboxModel{},
		&adminModel.AdminUserModel{},
		&adminModel.TokenBlacklistModel{},
	); err != nil {
		return err
	}

	stmts := []string{
		`CREATE SEQUENCE IF NOT EXISTS member_code_seq START WITH 1300`,
		`CREATE OR REPLACE FUNCTION assign_member_code() RETURNS trigger AS $$
		BEGIN
			IF NEW.member_status = 'Active' AND NEW.member_code IS NULL THEN
				NEW.member_code := NEW.member_admission_year_prefix || '/' || nextval('member_code_seq');
			END IF;
			RETURN NEW;
		END;
		$$ LANGUAGE plpgsql`,
		`DROP TRIGGER IF EXISTS trg_assign_member_code ON members`,
		`CREATE TRIGGER trg_assign_member_code
			BEFORE INSERT OR UPDATE ON members
			FOR EACH ROW EXECUTE FUNCTION assign_member_code()`,
	}
	for _, s := range stmts {
		if err := db.Exec(s).Error; err != nil {
			return err
		}
	}

	log.Println("[INFO] schema migrated")
	return nil
}
