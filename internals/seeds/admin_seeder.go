package seeds

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/chrisarpong/TEIN-Registration/internals/configs"
	"github.com/chrisarpong/TEIN-Registration/internals/features/admins/model"
)

// SeedFirstAdmin creates the bootstrap admin account from SEED_ADMIN_EMAIL /
// SEED_ADMIN_PASSWORD when the table is empty. Idempotent across restarts.
func SeedFirstAdmin(db *gorm.DB, cfg *configs.Config) error {
	if cfg.SeedAdminEmail == "" || cfg.SeedAdminPass == "" {
		log.Println("[INFO] seed admin credentials not set, skipping")
		return nil
	}

	var count int64
	if err := db.Model(&model.AdminUserModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.SeedAdminPass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := model.AdminUserModel{
		AdminEmail:    cfg.SeedAdminEmail,
		AdminFullName: "TEIN-UCC Admin",
		AdminPassword: string(hash),
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("[INFO] seeded first admin %s", cfg.SeedAdminEmail)
	return nil
}
