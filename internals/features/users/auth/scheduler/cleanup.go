package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	authModel "campushub_backend/internals/features/users/auth/model"
)

// StartBlacklistCleanupScheduler purges expired blacklist entries and stale
// OTP rows periodically so the tables stay small.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		ticker := time.NewTicker(6 * time.Hour)
		defer ticker.Stop()
		for {
			cleanup(db)
			<-ticker.C
		}
	}()
}

func cleanup(db *gorm.DB) {
	now := time.Now().UTC()

	res := db.Unscoped().
		Where("expires_at < ?", now).
		Delete(&authModel.TokenBlacklist{})
	if res.Error != nil {
		log.Printf("[SCHEDULER] blacklist cleanup failed: %v", res.Error)
	} else if res.RowsAffected > 0 {
		log.Printf("[SCHEDULER] purged %d expired blacklist tokens", res.RowsAffected)
	}

	res = db.Where("expires_at < ?", now.Add(-24*time.Hour)).
		Delete(&authModel.OtpModel{})
	if res.Error != nil {
		log.Printf("[SCHEDULER] otp cleanup failed: %v", res.Error)
	}
}
