// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tahfidzku_backend/internals/configs"
	"tahfidzku_backend/internals/constants"
	"tahfidzku_backend/internals/features/users/auth/model"
	"tahfidzku_backend/internals/features/users/auth/service"
	helper "tahfidzku_backend/internals/helpers"
)

type AuthController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validator: validator.New()}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type registerRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=admin teacher"`
}

// POST /api/auth/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var user model.UserModel
	err := ctl.DB.Where("user_email = ?", strings.ToLower(strings.TrimSpace(req.Email))).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses login")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.Password)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	token, err := service.CreateAccessToken(ctl.DB, &user, configs.JWTSecret)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return helper.JsonOK(c, "Login berhasil", fiber.Map{
		"access_token": token,
		"user":         user,
	})
}

// POST /api/auth/logout (butuh token valid)
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	raw, _ := c.Locals("raw_token").(string)
	if raw == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	expires := service.TokenExpiry(nil)
	if claims, ok := c.Locals("jwt_claims").(jwt.MapClaims); ok {
		expires = service.TokenExpiry(claims)
	}

	if err := service.BlacklistToken(ctl.DB, raw, expires); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal logout")
	}
	return helper.JsonOK(c, "Logout berhasil", nil)
}

// POST /api/a/users (admin only — membuat akun pengajar/admin baru)
func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	user := model.UserModel{
		UserName:     strings.TrimSpace(req.Name),
		UserEmail:    strings.ToLower(strings.TrimSpace(req.Email)),
		UserPassword: string(hash),
		UserRole:     req.Role,
	}
	if err := ctl.DB.Create(&user).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat akun")
	}

	return helper.JsonCreated(c, "Akun berhasil dibuat", user)
}

// GET /api/auth/me
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user model.UserModel
	if err := ctl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"user":       user,
		"teacher_id": helper.GetTeacherIDFromToken(c),
		"is_admin":   user.UserRole == constants.RoleAdmin,
	})
}
