package model

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"appboard_backend/internals/constants"
)

// Validator instance
var validate = validator.New()

// UserModel merepresentasikan tabel users di database
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email     string    `gorm:"size:255;unique;not null" json:"email" validate:"required,email"`
	Name      *string   `gorm:"size:100" json:"name"`
	Password  string    `gorm:"not null" json:"-" validate:"required,min=8"`
	Role      string    `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

// SetDefaultValues memastikan nilai default sebelum validasi
func (u *UserModel) SetDefaultValues() {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if u.Role == "" {
		u.Role = constants.RoleUser
	}
}

// Validate memeriksa input register. Password di sini masih plaintext —
// hash (bcrypt) dilakukan di service sebelum simpan.
func (u *UserModel) Validate() error {
	u.SetDefaultValues()

	if err := validate.Struct(u); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func formatValidationError(err error) error {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid input")
	}

	parts := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		switch fieldErr.Tag() {
		case "required":
			parts = append(parts, fieldErr.Field()+" wajib diisi")
		case "email":
			parts = append(parts, "Format email tidak valid")
		case "min":
			parts = append(parts, fieldErr.Field()+" minimal "+fieldErr.Param()+" karakter")
		default:
			parts = append(parts, fieldErr.Field()+" tidak valid")
		}
	}
	return fiber.NewError(fiber.StatusBadRequest, strings.Join(parts, "; "))
}
