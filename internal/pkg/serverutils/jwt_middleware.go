package serverutils

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// JwtMiddleware guards staff dashboard routes. It expects tokens issued by
// the auth service carrying user_id and tenant_id claims.
func JwtMiddleware(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Missing token"})
	}
	tokenStr := authHeader[7:]

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})

	if err != nil || !token.Valid {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid claims"})
	}

	if scope, _ := claims["scope"].(string); scope == "portal" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Portal tokens cannot access staff routes"})
	}

	ctx.Locals("user_id", claims["user_id"])
	ctx.Locals("tenant_id", claims["tenant_id"])
	ctx.Locals("role", claims["role"])
	return ctx.Next()
}
