package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"alumnihub_backend/internals/features/users/auth/model"

	"gorm.io/gorm"
)

// StartBlacklistCleanupScheduler prunes token_blacklist rows past their
// expiry plus a TTL grace (TOKEN_BLACKLIST_TTL_DAYS, default 7), daily, in
// batches of 100.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		ttlDays := 7
		if val := os.Getenv("TOKEN_BLACKLIST_TTL_DAYS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
				ttlDays = parsed
			}
		}

		for {
			log.Println("[CLEANUP] pruning token_blacklist")

			deleteBefore := time.Now().Add(-time.Duration(ttlDays) * 24 * time.Hour)

			var expired []model.TokenBlacklistModel
			if err := db.
				Where("token_blacklist_expired_at < ?", deleteBefore).
				Limit(100).
				Find(&expired).Error; err != nil {
				log.Printf("[CLEANUP ERROR] fetch expired tokens: %v", err)
			} else if len(expired) > 0 {
				if err := db.Unscoped().Delete(&expired).Error; err != nil {
					log.Printf("[CLEANUP ERROR] delete tokens: %v", err)
				} else {
					log.Printf("[CLEANUP] %d expired tokens removed", len(expired))
				}
			}

			time.Sleep(24 * time.Hour)
		}
	}()
}
