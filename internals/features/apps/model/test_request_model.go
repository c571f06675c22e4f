package model

import (
	"time"

	"github.com/google/uuid"
)

// TestRequestModel: pendaftaran tester untuk app bertipe test.
// Uniqueness (app_id, user_id) dijaga di level storage (unique index),
// bukan sekadar check-then-insert di aplikasi.
type TestRequestModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	AppID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_test_requests_app_user" json:"app_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_test_requests_app_user" json:"user_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	App *AppModel `gorm:"foreignKey:AppID;constraint:OnDelete:CASCADE" json:"app,omitempty"`
}

func (TestRequestModel) TableName() string {
	return "test_requests"
}
