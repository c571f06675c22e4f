package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"appboard_backend/internals/constants"
	appModel "appboard_backend/internals/features/apps/model"
	"appboard_backend/internals/helpers/listing"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// SubmitAppRequest — submit publik (auth opsional)
type SubmitAppRequest struct {
	Name           string  `json:"name" validate:"required"`
	SubmissionType string  `json:"submission_type" validate:"required,oneof=live test"`
	Platform       *string `json:"platform,omitempty" validate:"omitempty,oneof=android ios"`
	PlayURL        *string `json:"play_url,omitempty" validate:"omitempty,url"`
	TestURL        *string `json:"test_url,omitempty" validate:"omitempty,url"`
	Description    *string `json:"description,omitempty"`
	IconURL        string  `json:"icon_url" validate:"required"`
	StartDate      *string `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate        *string `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// Normalize — trim & normalisasi dasar
func (r *SubmitAppRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.SubmissionType = strings.ToLower(strings.TrimSpace(r.SubmissionType))
	r.IconURL = strings.TrimSpace(r.IconURL)
}

// ToModel — konversi ke model. end_date kosong → dihitung start + 14 hari.
// Validasi invariant per-type tetap di model.Validate().
func (r *SubmitAppRequest) ToModel(createdBy *uuid.UUID) (*appModel.AppModel, error) {
	m := &appModel.AppModel{
		Name:           r.Name,
		SubmissionType: r.SubmissionType,
		Platform:       r.Platform,
		PlayURL:        r.PlayURL,
		TestURL:        r.TestURL,
		Description:    r.Description,
		IconURL:        &r.IconURL,
		Status:         constants.StatusPending,
		CreatedBy:      createdBy,
	}

	if r.StartDate != nil {
		d, err := parseDate(*r.StartDate)
		if err != nil {
			return nil, err
		}
		m.StartDate = d

		endStr := ""
		if r.EndDate != nil {
			endStr = *r.EndDate
		} else if r.SubmissionType == constants.SubmissionTest {
			computed, err := listing.DefaultEndDate(*r.StartDate)
			if err != nil {
				return nil, err
			}
			endStr = computed
		}
		if endStr != "" {
			d, err := parseDate(endStr)
			if err != nil {
				return nil, err
			}
			m.EndDate = d
		}
	}

	return m, nil
}

// UpdateAppRequest — partial update (pointer agar bisa bedakan omit vs null).
// Dipakai owner (PATCH /api/u/apps) dan admin (PATCH /api/a/apps);
// Status hanya diproses di jalur admin.
type UpdateAppRequest struct {
	ID             string  `json:"id" validate:"required,uuid"`
	Name           *string `json:"name,omitempty"`
	SubmissionType *string `json:"submission_type,omitempty" validate:"omitempty,oneof=live test"`
	Platform       *string `json:"platform,omitempty" validate:"omitempty,oneof=android ios"`
	PlayURL        *string `json:"play_url,omitempty" validate:"omitempty,url"`
	TestURL        *string `json:"test_url,omitempty" validate:"omitempty,url"`
	Description    *string `json:"description,omitempty"`
	IconURL        *string `json:"icon_url,omitempty"`
	StartDate      *string `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate        *string `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status         *string `json:"status,omitempty" validate:"omitempty,oneof=pending approved rejected"`
}

// ApplyToModel — terapkan perubahan parsial ke model existing.
// Transisi ke submission_type=test tanpa platform/play_url baru ⇒ keduanya
// di-null-kan supaya invariant type tidak bocor dari state live sebelumnya
// (model.Validate() juga menegakkan ini).
func (r *UpdateAppRequest) ApplyToModel(m *appModel.AppModel) error {
	if r.Name != nil {
		m.Name = strings.TrimSpace(*r.Name)
	}
	if r.SubmissionType != nil {
		newType := strings.ToLower(strings.TrimSpace(*r.SubmissionType))
		if newType == constants.SubmissionTest && m.SubmissionType != constants.SubmissionTest {
			if r.Platform == nil {
				m.Platform = nil
			}
			if r.PlayURL == nil {
				m.PlayURL = nil
			}
		}
		m.SubmissionType = newType
	}
	if r.Platform != nil {
		m.Platform = r.Platform
	}
	if r.PlayURL != nil {
		m.PlayURL = r.PlayURL
	}
	if r.TestURL != nil {
		m.TestURL = r.TestURL
	}
	if r.Description != nil {
		m.Description = r.Description
	}
	if r.IconURL != nil {
		m.IconURL = r.IconURL
	}
	if r.StartDate != nil {
		d, err := parseDate(*r.StartDate)
		if err != nil {
			return err
		}
		m.StartDate = d
	}
	if r.EndDate != nil {
		d, err := parseDate(*r.EndDate)
		if err != nil {
			return err
		}
		m.EndDate = d
	}
	return nil
}

/* =======================================================
   FILTER & RESPONSE DTOs
   ======================================================= */

// AppFilter — filter list repository
type AppFilter struct {
	Status         string
	SubmissionType string
	Platform       string
	Q              string // free-text: name OR description, case-insensitive
	CreatedBy      *uuid.UUID
	VisibleOnly    bool // board publik: approved OR submission_type=test
}

type AppResponse struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	SubmissionType string     `json:"submission_type"`
	Platform       *string    `json:"platform"`
	PlayURL        *string    `json:"play_url"`
	TestURL        *string    `json:"test_url"`
	Description    *string    `json:"description"`
	IconURL        *string    `json:"icon_url"`
	StartDate      *string    `json:"start_date"`
	EndDate        *string    `json:"end_date"`
	Status         string     `json:"status"`
	CreatedBy      *uuid.UUID `json:"created_by"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	TesterCount    int64      `json:"tester_count"`

	// Derived untuk badge countdown listing test (null untuk live)
	DaysRemaining *int    `json:"days_remaining,omitempty"`
	BadgeTier     *string `json:"badge_tier,omitempty"`
}

func FromModel(m *appModel.AppModel) AppResponse {
	resp := AppResponse{
		ID:             m.ID,
		Name:           m.Name,
		SubmissionType: m.SubmissionType,
		Platform:       m.Platform,
		PlayURL:        m.PlayURL,
		TestURL:        m.TestURL,
		Description:    m.Description,
		IconURL:        m.IconURL,
		StartDate:      formatDate(m.StartDate),
		EndDate:        formatDate(m.EndDate),
		Status:         m.Status,
		CreatedBy:      m.CreatedBy,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
		TesterCount:    m.TesterCount,
	}

	if resp.EndDate != nil {
		if d, err := listing.DaysRemaining(*resp.EndDate, time.Now()); err == nil {
			tier := listing.BadgeTier(d)
			resp.DaysRemaining = &d
			resp.BadgeTier = &tier
		}
	}

	return resp
}

func FromModels(ms []appModel.AppModel) []AppResponse {
	out := make([]AppResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}

/* =======================================================
   Internal helpers
   ======================================================= */

func parseDate(s string) (*datatypes.Date, error) {
	t, err := time.Parse(listing.ISODate, s)
	if err != nil {
		return nil, err
	}
	d := datatypes.Date(t)
	return &d, nil
}

func formatDate(d *datatypes.Date) *string {
	if d == nil {
		return nil
	}
	s := time.Time(*d).Format(listing.ISODate)
	return &s
}
