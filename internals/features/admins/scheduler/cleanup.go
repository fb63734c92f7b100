package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/chrisarpong/TEIN-Registration/internals/features/admins/model"
)

// StartBlacklistCleanupScheduler prunes expired revoked tokens once a day.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		for {
			if n, err := pruneExpiredTokens(db, time.Now()); err != nil {
				log.Printf("[CLEANUP] prune blacklist: %v", err)
			} else if n > 0 {
				log.Printf("[CLEANUP] removed %d expired blacklist tokens", n)
			}

			time.Sleep(24 * time.Hour)
		}
	}()
}

// pruneExpiredTokens hard-deletes a batch of tokens past their expiry.
// Unscoped on both ends: the model is soft-deleting, and leaving tombstones
// here would grow the table forever.
func pruneExpiredTokens(db *gorm.DB, cutoff time.Time) (int, error) {
	var expired []model.TokenBlacklistModel
	if err := db.Unscoped().
		Where("expired_at < ?", cutoff).
		Limit(100).
		Find(&expired).Error; err != nil {
		return 0, err
	}
	if len(expired) == 0 {
		return 0, nil
	}

	if err := db.Unscoped().Delete(&expired).Error; err != nil {
		return 0, err
	}
	return len(expired), nil
}
