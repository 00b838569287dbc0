package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	"tahfidzku_backend/internals/features/users/auth/model"
)

// StartBlacklistCleanupScheduler menghapus token blacklist yang sudah
// kedaluwarsa tiap jam, supaya tabel tidak membengkak.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			res := db.Where("token_blacklist_expires_at < ?", time.Now()).
				Delete(&model.TokenBlacklistModel{})
			if res.Error != nil {
				log.Printf("[ERROR] cleanup token blacklist: %v", res.Error)
				continue
			}
			if res.RowsAffected > 0 {
				log.Printf("[INFO] cleanup token blacklist: %d baris dihapus", res.RowsAffected)
			}
		}
	}()
}
