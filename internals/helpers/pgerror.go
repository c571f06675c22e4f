package helper

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Deteksi unique violation Postgres (kode "23505")
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code == "23505"
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == "23505"
	}
	// string fallback (kompatibel untuk lib/pq & pgx yang dibungkus)
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, "23505")
}

// MapPGError memetakan error storage ke (status, pesan) tanpa membocorkan
// detail internal untuk kasus 500.
func MapPGError(err error) (int, string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.StatusNotFound, "Data tidak ditemukan"
	}
	if IsUniqueViolation(err) {
		return fiber.StatusConflict, "Data duplikat (unique violation)"
	}
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) && pgxErr.Code == "23503" {
		return fiber.StatusBadRequest, "Referensi tidak ditemukan (FK violation)"
	}
	return fiber.StatusInternalServerError, "Internal server error"
}

func WritePGError(c *fiber.Ctx, err error) error {
	code, msg := MapPGError(err)
	return JsonError(c, code, msg)
}

// JsonFromError: *fiber.Error dari service dipakai apa adanya (domain error);
// sisanya dianggap error storage dan dipetakan via MapPGError.
func JsonFromError(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return JsonError(c, fe.Code, fe.Message)
	}
	return WritePGError(c, err)
}
