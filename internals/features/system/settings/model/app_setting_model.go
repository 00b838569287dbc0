package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Satu baris konfigurasi aplikasi (maintenance mode dsb).
type AppSettingModel struct {
	AppSettingID                 uuid.UUID `gorm:"type:uuid;primaryKey;column:app_setting_id" json:"app_setting_id"`
	AppSettingMaintenanceMode    bool      `gorm:"not null;default:false;column:app_setting_maintenance_mode" json:"app_setting_maintenance_mode"`
	AppSettingMaintenanceMessage string    `gorm:"column:app_setting_maintenance_message" json:"app_setting_maintenance_message"`

	AppSettingCreatedAt time.Time `gorm:"column:app_setting_created_at;autoCreateTime" json:"app_setting_created_at"`
	AppSettingUpdatedAt time.Time `gorm:"column:app_setting_updated_at;autoUpdateTime" json:"app_setting_updated_at"`
}

func (AppSettingModel) TableName() string { return "app_settings" }

func (m *AppSettingModel) BeforeCreate(tx *gorm.DB) error {
	if m.AppSettingID == uuid.Nil {
		m.AppSettingID = uuid.New()
	}
	return nil
}
