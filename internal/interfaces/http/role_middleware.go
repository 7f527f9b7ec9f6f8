package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stocklens-api/internal/application/dto"
)

// RequireRole devuelve un middleware Fiber que permite el paso solo a los roles
// indicados. Debe usarse DESPUÉS de AuthMiddleware (lee LocalRole del token).
//
// Comportamiento:
//   - 401 → el token no trae claim de rol (tokens legacy).
//   - 403 → el rol no está en la lista permitida.
func RequireRole(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "MISSING_ROLE",
				Message: "el token no incluye rol",
			})
		}
		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code:    "FORBIDDEN",
			Message: "rol '" + role + "' sin permiso para esta operación",
		})
	}
}
