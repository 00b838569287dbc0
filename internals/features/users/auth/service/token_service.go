// file: internals/features/users/auth/service/token_service.go
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	teacherModel "tahfidzku_backend/internals/features/institute/teachers/model"
	authModel "tahfidzku_backend/internals/features/users/auth/model"
)

const AccessTokenTTL = 12 * time.Hour

// CreateAccessToken menerbitkan JWT HMAC dengan claim user_id, role,
// dan teacher_id kalau akun tertaut ke baris teachers.
func CreateAccessToken(db *gorm.DB, user *authModel.UserModel, secret string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.UserID.String(),
		"role":    user.UserRole,
		"exp":     time.Now().Add(AccessTokenTTL).Unix(),
		"iat":     time.Now().Unix(),
	}

	var teacher teacherModel.TeacherModel
	err := db.Where("teacher_user_id = ?", user.UserID).First(&teacher).Error
	if err == nil {
		claims["teacher_id"] = teacher.TeacherID.String()
	} else if err != gorm.ErrRecordNotFound {
		return "", err
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(secret))
}

// BlacklistToken menyimpan token yang di-logout sampai masa berlakunya habis.
func BlacklistToken(db *gorm.DB, raw string, expiresAt time.Time) error {
	row := authModel.TokenBlacklistModel{
		TokenBlacklistToken:     raw,
		TokenBlacklistExpiresAt: expiresAt,
	}
	return db.Create(&row).Error
}

// IsTokenBlacklisted dipakai middleware auth.
func IsTokenBlacklisted(db *gorm.DB) func(raw string) (bool, error) {
	return func(raw string) (bool, error) {
		var n int64
		err := db.Model(&authModel.TokenBlacklistModel{}).
			Where("token_blacklist_token = ? AND token_blacklist_expires_at > ?", raw, time.Now()).
			Count(&n).Error
		return n > 0, err
	}
}

// TokenExpiry membaca exp dari claims (fallback: TTL penuh dari sekarang).
func TokenExpiry(claims jwt.MapClaims) time.Time {
	if v, ok := claims["exp"].(float64); ok {
		return time.Unix(int64(v), 0)
	}
	return time.Now().Add(AccessTokenTTL)
}
