// file: internals/middlewares/auth/auth_middleware.go
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	helper "tahfidzku_backend/internals/helpers"
)

type AuthJWTOpts struct {
	Secret              string
	BlacklistChecker    func(rawToken string) (bool, error) // return true kalau token sudah di-blacklist
	AllowCookieFallback bool                                // pakai cookie access_token jika tidak ada Bearer
}

// AuthJWT memverifikasi Bearer token dan mengisi Locals:
// user_id, role, teacher_id (kalau akun tertaut pengajar).
func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret wajib diisi")
	}

	return func(c *fiber.Ctx) error {
		// 1) Ambil token: Authorization: Bearer xxx (atau cookie jika diizinkan)
		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		} else if o.AllowCookieFallback {
			raw = strings.TrimSpace(c.Cookies("access_token"))
		}
		if raw == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
		}

		// 2) Cek blacklist (opsional)
		if o.BlacklistChecker != nil {
			if black, err := o.BlacklistChecker(raw); err == nil && black {
				return helper.JsonError(c, fiber.StatusUnauthorized, "Token revoked")
			}
		}

		// 3) Parse + verifikasi algoritma
		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid token")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid token claims")
		}

		c.Locals("jwt_claims", claims)
		c.Locals("raw_token", raw)

		if v := strClaim(claims, "user_id"); v != "" {
			c.Locals("user_id", v)
		}
		if v := strClaim(claims, "role"); v != "" {
			c.Locals("role", v)
		}
		if v := strClaim(claims, "teacher_id"); v != "" {
			c.Locals("teacher_id", v)
		}

		return c.Next()
	}
}

func strClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}
