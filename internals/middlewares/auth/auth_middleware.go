// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"appboard_backend/internals/configs"
)

// AuthMiddleware: wajib bawa bearer JWT valid; set user_id/user_email/userRole
// ke locals. Role dari klaim hanya role "user-level" — jalur admin me-resolve
// ulang ke tabel admin_users (lihat AdminContext).
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := parseBearerClaims(c)
		if err != nil {
			return err
		}
		if err := storeClaimsToLocals(c, claims); err != nil {
			return err
		}
		return c.Next()
	}
}

// OptionalAuthMiddleware: token boleh kosong (submit anonim). Token invalid
// tetap ditolak supaya tidak ada atribusi setengah jadi.
func OptionalAuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if strings.TrimSpace(c.Get(fiber.HeaderAuthorization)) == "" {
			return c.Next()
		}
		claims, err := parseBearerClaims(c)
		if err != nil {
			return err
		}
		if err := storeClaimsToLocals(c, claims); err != nil {
			return err
		}
		return c.Next()
	}
}

func parseBearerClaims(c *fiber.Ctx) (jwt.MapClaims, error) {
	tokenString, err := extractBearerToken(c)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, err.Error())
	}

	secretKey := configs.JWTSecret
	if secretKey == "" {
		log.Println("[ERROR] JWT_SECRET kosong")
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
	}

	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secretKey), nil
	}); err != nil {
		log.Println("[ERROR] Gagal parse token:", err)
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
	}

	if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
		log.Println("[ERROR] Exp validation:", err)
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
	}

	return claims, nil
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if authHeader == "" {
		return "", errors.New("Unauthorized - Missing token")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", errors.New("Unauthorized - Invalid token format")
	}
	return strings.TrimSpace(parts[1]), nil
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return errors.New("missing exp claim")
	}
	expFloat, ok := expRaw.(float64)
	if !ok {
		return errors.New("invalid exp claim")
	}
	expTime := time.Unix(int64(expFloat), 0)
	if time.Now().After(expTime.Add(leeway)) {
		return errors.New("token expired")
	}
	return nil
}

func storeClaimsToLocals(c *fiber.Ctx, claims jwt.MapClaims) error {
	idRaw, _ := claims["user_id"].(string)
	userID, err := uuid.Parse(idRaw)
	if err != nil {
		log.Println("[ERROR] user_id claim:", err)
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing user ID")
	}
	c.Locals("user_id", userID.String())

	if email, ok := claims["email"].(string); ok && email != "" {
		c.Locals("user_email", strings.ToLower(email))
	}
	if role, ok := claims["role"].(string); ok && role != "" {
		c.Locals("userRole", role)
	}
	return nil
}
