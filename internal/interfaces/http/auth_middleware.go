package http

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/bodega-api/internal/application/dto"
)

// HeaderAPIKey encabezado con el secreto compartido de la API.
const HeaderAPIKey = "X-API-Key"

// APIKeyMiddleware valida el secreto compartido del encabezado X-API-Key.
//
// Si apiKeyHash (bcrypt) está configurado tiene precedencia: el valor
// recibido se compara contra el hash. Si solo hay apiKey en claro, la
// comparación es de tiempo constante. Sin secreto configurado, todo
// request queda rechazado.
func APIKeyMiddleware(apiKey, apiKeyHash string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		got := c.Get(HeaderAPIKey)
		if got == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code: "MISSING_API_KEY", Message: "encabezado " + HeaderAPIKey + " requerido",
			})
		}
		if !validAPIKey(got, apiKey, apiKeyHash) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code: "INVALID_API_KEY", Message: "secreto inválido",
			})
		}
		return c.Next()
	}
}

func validAPIKey(got, apiKey, apiKeyHash string) bool {
	if apiKeyHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(apiKeyHash), []byte(got)) == nil
	}
	if apiKey == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(apiKey)) == 1
}
