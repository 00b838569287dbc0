// file: internals/middlewares/auth/role_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"

	"tahfidzku_backend/internals/constants"
	helper "tahfidzku_backend/internals/helpers"
)

// RequireRoles menolak request kalau role di token tidak termasuk allowed.
// featureName hanya dipakai untuk pesan error.
func RequireRoles(featureName string, allowed ...string) fiber.Handler {
	adminOnly := len(allowed) == 1 && allowed[0] == constants.RoleAdmin

	return func(c *fiber.Ctx) error {
		role := helper.GetRoleFromToken(c)
		for _, a := range allowed {
			if role == a {
				return c.Next()
			}
		}
		msg := constants.RoleErrorTeacher(featureName)
		if adminOnly {
			msg = constants.RoleErrorAdmin(featureName)
		}
		return helper.JsonError(c, fiber.StatusForbidden, msg)
	}
}
