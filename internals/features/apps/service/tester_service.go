package service

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"appboard_backend/internals/constants"
	appModel "appboard_backend/internals/features/apps/model"
	helper "appboard_backend/internals/helpers"
)

// TesterService: ledger pendaftaran tester per (app, user).
// Duplikasi dicegah dua lapis: cek aplikasi + unique index storage
// (uq_test_requests_app_user) supaya race dua request bersamaan tetap
// menghasilkan tepat satu baris.
type TesterService struct {
	DB *gorm.DB
}

func NewTesterService(db *gorm.DB) *TesterService {
	return &TesterService{DB: db}
}

// Applicant — identitas pendaftar; hanya boleh dilihat owner app atau admin.
type Applicant struct {
	ID        uuid.UUID `json:"id"`
	AppID     uuid.UUID `json:"app_id"`
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	Name      *string   `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *TesterService) Register(appID, userID uuid.UUID) (*appModel.TestRequestModel, error) {
	var app appModel.AppModel
	if err := s.DB.First(&app, "id = ?", appID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Aplikasi tidak ditemukan")
		}
		return nil, err
	}

	if app.SubmissionType != constants.SubmissionTest {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Hanya listing test yang menerima tester")
	}
	if app.CreatedBy != nil && *app.CreatedBy == userID {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Tidak bisa mendaftar sebagai tester di app sendiri")
	}

	req := &appModel.TestRequestModel{AppID: appID, UserID: userID}
	if err := s.DB.Create(req).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return nil, fiber.NewError(fiber.StatusConflict, "Sudah terdaftar sebagai tester")
		}
		return nil, err
	}
	return req, nil
}

func (s *TesterService) Unregister(appID, userID uuid.UUID) error {
	res := s.DB.Where("app_id = ? AND user_id = ?", appID, userID).
		Delete(&appModel.TestRequestModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Pendaftaran tester tidak ditemukan")
	}
	return nil
}

func (s *TesterService) CountFor(appID uuid.UUID) (int64, error) {
	var n int64
	err := s.DB.Model(&appModel.TestRequestModel{}).
		Where("app_id = ?", appID).
		Count(&n).Error
	return n, err
}

// ListApplicantsFor: enumerasi identitas pendaftar (email = data privileged).
// requester harus owner app; admin lewat jalur sendiri dengan isAdmin=true.
func (s *TesterService) ListApplicantsFor(appID, requesterID uuid.UUID, isAdmin bool) ([]Applicant, error) {
	if !isAdmin {
		var app appModel.AppModel
		if err := s.DB.Select("id", "created_by").First(&app, "id = ?", appID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fiber.NewError(fiber.StatusNotFound, "Aplikasi tidak ditemukan")
			}
			return nil, err
		}
		if app.CreatedBy == nil || *app.CreatedBy != requesterID {
			return nil, fiber.NewError(fiber.StatusForbidden, "Hanya pemilik app yang boleh melihat daftar tester")
		}
	}

	var applicants []Applicant
	if err := s.DB.Table("test_requests").
		Select("test_requests.id, test_requests.app_id, test_requests.user_id, users.email, users.name, test_requests.created_at").
		Joins("JOIN users ON users.id = test_requests.user_id").
		Where("test_requests.app_id = ?", appID).
		Order("test_requests.created_at ASC").
		Scan(&applicants).Error; err != nil {
		return nil, err
	}
	return applicants, nil
}

// ListMine: semua pendaftaran milik user + app-nya (dashboard).
func (s *TesterService) ListMine(userID uuid.UUID) ([]appModel.TestRequestModel, error) {
	var regs []appModel.TestRequestModel
	if err := s.DB.Preload("App").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&regs).Error; err != nil {
		return nil, err
	}
	return regs, nil
}
