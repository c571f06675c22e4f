package model

import (
	"time"

	"github.com/google/uuid"

	"appboard_backend/internals/constants"
)

// AdminUserModel merepresentasikan tabel admin_users — side table role admin,
// di-query ulang per request privileged (role tidak pernah dipercaya dari
// klaim token). Unique lower(email) dibuat manual di databases.Migrate().
type AdminUserModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email     string     `gorm:"size:255;not null" json:"email"`
	Role      string     `gorm:"type:varchar(20);not null;default:'admin'" json:"role"`
	CreatedBy *uuid.UUID `gorm:"type:uuid" json:"created_by"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (AdminUserModel) TableName() string {
	return "admin_users"
}

func (m *AdminUserModel) SetDefaultValues() {
	if m.Role == "" {
		m.Role = constants.RoleAdmin
	}
}
