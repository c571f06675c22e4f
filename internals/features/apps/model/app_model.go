package model

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"appboard_backend/internals/constants"
)

// Validator instance
var validate = validator.New()

// AppModel merepresentasikan tabel apps di database.
// submission_type menentukan field mana yang wajib/nullable:
//   - live : platform, play_url, description wajib; start/end_date dipaksa null
//   - test : start_date, end_date, test_url wajib; platform, play_url dipaksa null
type AppModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name           string          `gorm:"size:255;not null" json:"name" validate:"required"`
	SubmissionType string          `gorm:"type:varchar(10);not null" json:"submission_type" validate:"required,oneof=live test"`
	Platform       *string         `gorm:"type:varchar(10)" json:"platform"`
	PlayURL        *string         `gorm:"type:text" json:"play_url"`
	TestURL        *string         `gorm:"type:text" json:"test_url"`
	Description    *string         `gorm:"type:text" json:"description"`
	IconURL        *string         `gorm:"type:text" json:"icon_url"`
	StartDate      *datatypes.Date `json:"start_date"`
	EndDate        *datatypes.Date `json:"end_date"`
	Status         string          `gorm:"type:varchar(10);not null;default:'pending'" json:"status"`
	CreatedBy      *uuid.UUID      `gorm:"type:uuid" json:"created_by"` // null = anonim
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Derived — diisi subquery saat baca, bukan kolom tersimpan
	TesterCount int64 `gorm:"->;-:migration" json:"tester_count"`

	TestRequests []TestRequestModel `gorm:"foreignKey:AppID;constraint:OnDelete:CASCADE" json:"-"`
}

func (AppModel) TableName() string {
	return "apps"
}

// SetDefaultValues memastikan nilai default sebelum validasi
func (m *AppModel) SetDefaultValues() {
	m.Name = strings.TrimSpace(m.Name)
	if m.Status == "" {
		m.Status = constants.StatusPending
	}
}

// Validate menormalkan lalu memeriksa invariant per submission_type.
// Gagal → *fiber.Error 400 dengan pesan per field; tidak pernah koersi diam-diam.
func (m *AppModel) Validate() error {
	m.SetDefaultValues()

	if err := validate.Struct(m); err != nil {
		return formatValidationError(err)
	}

	if m.IconURL == nil || strings.TrimSpace(*m.IconURL) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "icon_url wajib diisi")
	}

	switch m.SubmissionType {
	case constants.SubmissionLive:
		if m.Platform == nil || !constants.IsValidPlatform(*m.Platform) {
			return fiber.NewError(fiber.StatusBadRequest, "platform wajib diisi (android/ios) untuk submission live")
		}
		if m.PlayURL == nil || strings.TrimSpace(*m.PlayURL) == "" {
			return fiber.NewError(fiber.StatusBadRequest, "play_url wajib diisi untuk submission live")
		}
		if m.Description == nil || strings.TrimSpace(*m.Description) == "" {
			return fiber.NewError(fiber.StatusBadRequest, "description wajib diisi untuk submission live")
		}
		// tanggal hanya untuk test
		m.StartDate = nil
		m.EndDate = nil

	case constants.SubmissionTest:
		if m.StartDate == nil || m.EndDate == nil {
			return fiber.NewError(fiber.StatusBadRequest, "start_date dan end_date wajib diisi untuk submission test")
		}
		if time.Time(*m.EndDate).Before(time.Time(*m.StartDate)) {
			return fiber.NewError(fiber.StatusBadRequest, "end_date tidak boleh sebelum start_date")
		}
		if m.TestURL == nil || strings.TrimSpace(*m.TestURL) == "" {
			return fiber.NewError(fiber.StatusBadRequest, "test_url wajib diisi untuk submission test")
		}
		// platform & play_url hanya untuk live
		m.Platform = nil
		m.PlayURL = nil
	}

	if !constants.IsValidStatus(m.Status) {
		return fiber.NewError(fiber.StatusBadRequest, "status tidak valid")
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
		case "oneof":
			parts = append(parts, fieldErr.Field()+" harus salah satu dari: "+fieldErr.Param())
		default:
			parts = append(parts, fieldErr.Field()+" tidak valid")
		}
	}
	return fiber.NewError(fiber.StatusBadRequest, strings.Join(parts, "; "))
}
