package middlewares

import (
	"log"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	settingsModel "tahfidzku_backend/internals/features/system/settings/model"
	helper "tahfidzku_backend/internals/helpers"
)

// Mode maintenance dievaluasi di server (bukan flag localStorage di client):
// baris app_settings dibaca ulang maksimal tiap 30 detik.
const maintenanceCacheTTL = 30 * time.Second

type maintenanceCache struct {
	mu        sync.Mutex
	fetchedAt time.Time
	enabled   bool
	message   string
}

var mCache maintenanceCache

// MaintenanceGuard mengembalikan 503 untuk route non-admin selama maintenance.
func MaintenanceGuard(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		enabled, message := maintenanceState(db)
		if !enabled {
			return c.Next()
		}
		if message == "" {
			message = "Aplikasi sedang dalam pemeliharaan. Silakan coba lagi nanti."
		}
		return helper.JsonError(c, fiber.StatusServiceUnavailable, message)
	}
}

func maintenanceState(db *gorm.DB) (bool, string) {
	mCache.mu.Lock()
	defer mCache.mu.Unlock()

	if time.Since(mCache.fetchedAt) < maintenanceCacheTTL {
		return mCache.enabled, mCache.message
	}

	var row settingsModel.AppSettingModel
	err := db.First(&row).Error
	switch {
	case err == nil:
		mCache.enabled = row.AppSettingMaintenanceMode
		mCache.message = row.AppSettingMaintenanceMessage
	case err == gorm.ErrRecordNotFound:
		mCache.enabled = false
		mCache.message = ""
	default:
		// DB bermasalah: jangan blokir trafik hanya karena cek flag gagal
		log.Printf("[WARN] gagal baca app_settings: %v", err)
	}
	mCache.fetchedAt = time.Now()

	return mCache.enabled, mCache.message
}

// ResetMaintenanceCache dipanggil setelah admin mengubah setting
// supaya perubahan langsung terlihat tanpa menunggu TTL.
func ResetMaintenanceCache() {
	mCache.mu.Lock()
	mCache.fetchedAt = time.Time{}
	mCache.mu.Unlock()
}
