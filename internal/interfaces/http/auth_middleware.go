package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/diegofsiilva/cenas-bar/internal/application/dto"
	"github.com/diegofsiilva/cenas-bar/pkg/jwt"
)

// LocalRole chave em c.Locals com o papel extraído do token.
const LocalRole = "role"

// AdminMiddleware valida o Bearer Token JWT e exige papel admin.
func AdminMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "cabeçalho Authorization obrigatório"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "token vazio"})
		}
		role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil || role != "admin" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "token inválido ou expirado"})
		}
		c.Locals(LocalRole, role)
		return c.Next()
	}
}
