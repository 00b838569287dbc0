// file: internals/helpers/token.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Ambil user_id dari c.Locals("user_id").
// Return 401 kalau belum login, 400 kalau formatnya tidak valid.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return localsUUID(c, "user_id", "User belum login")
}

// TeacherID opsional di token: uuid.Nil artinya user bukan pengajar.
func GetTeacherIDFromToken(c *fiber.Ctx) uuid.UUID {
	id, err := localsUUID(c, "teacher_id", "")
	if err != nil {
		return uuid.Nil
	}
	return id
}

func GetRoleFromToken(c *fiber.Ctx) string {
	if v, ok := c.Locals("role").(string); ok {
		return v
	}
	return ""
}

func localsUUID(c *fiber.Ctx, key, emptyMsg string) (uuid.UUID, error) {
	v := c.Locals(key)
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, emptyMsg)
	}

	switch t := v.(type) {
	case uuid.UUID:
		if t == uuid.Nil {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, emptyMsg)
		}
		return t, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, emptyMsg)
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "ID pada token tidak valid")
		}
		return id, nil
	default:
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "ID pada token tidak valid")
	}
}

// ParseUUIDParam membaca path param dan parse jadi UUID.
func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(c.Params(name)))
}
