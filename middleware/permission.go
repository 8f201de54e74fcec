package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// RequirePermission membaca snapshot permission dari klaim token, tidak
// pernah menyentuh database. Snapshot dibuat saat login; perubahan role
// baru terasa setelah user login ulang atau refresh token.
func RequirePermission(name string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := GetJWTClaims(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authorization context missing"})
		}

		if !claims.HasPermission(name) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "insufficient permissions"})
		}

		return c.Next()
	}
}

// RequireAnyPermission lolos bila salah satu nama permission ada di snapshot.
func RequireAnyPermission(names ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := GetJWTClaims(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authorization context missing"})
		}

		for _, name := range names {
			if claims.HasPermission(name) {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "insufficient permissions"})
	}
}
