package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Token yang sudah di-logout. Baris kedaluwarsa dibersihkan scheduler.
type TokenBlacklistModel struct {
	TokenBlacklistID        uuid.UUID `gorm:"type:uuid;primaryKey;column:token_blacklist_id" json:"token_blacklist_id"`
	TokenBlacklistToken     string    `gorm:"not null;index;column:token_blacklist_token" json:"token_blacklist_token"`
	TokenBlacklistExpiresAt time.Time `gorm:"not null;column:token_blacklist_expires_at" json:"token_blacklist_expires_at"`

	TokenBlacklistCreatedAt time.Time `gorm:"column:token_blacklist_created_at;autoCreateTime" json:"token_blacklist_created_at"`
}

func (TokenBlacklistModel) TableName() string { return "token_blacklist" }

func (m *TokenBlacklistModel) BeforeCreate(tx *gorm.DB) error {
	if m.TokenBlacklistID == uuid.Nil {
		m.TokenBlacklistID = uuid.New()
	}
	return nil
}
