package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"appboard_backend/internals/features/apps/dto"
	appModel "appboard_backend/internals/features/apps/model"
	helper "appboard_backend/internals/helpers"
)

// AppRepository: kontrak persistence untuk app listing. Satu implementasi GORM
// di sini; backend lain cukup memenuhi kontrak yang sama.
type AppRepository interface {
	Create(m *appModel.AppModel) error
	GetByID(id uuid.UUID) (*appModel.AppModel, error)
	List(filter dto.AppFilter, paging helper.Paging) ([]appModel.AppModel, int64, error)
	ListByOwner(ownerID uuid.UUID) ([]appModel.AppModel, error)
	Update(m *appModel.AppModel) error
	Delete(id uuid.UUID) error
}

type gormAppRepository struct {
	db *gorm.DB
}

func NewAppRepository(db *gorm.DB) AppRepository {
	return &gormAppRepository{db: db}
}

// Subquery tester_count dihitung saat baca, bukan kolom tersimpan.
const testerCountSelect = `apps.*, (SELECT count(*) FROM test_requests tr WHERE tr.app_id = apps.id) AS tester_count`

func (r *gormAppRepository) Create(m *appModel.AppModel) error {
	return r.db.Create(m).Error
}

func (r *gormAppRepository) GetByID(id uuid.UUID) (*appModel.AppModel, error) {
	var m appModel.AppModel
	if err := r.db.
		Select(testerCountSelect).
		Where("apps.id = ?", id).
		First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *gormAppRepository) List(filter dto.AppFilter, paging helper.Paging) ([]appModel.AppModel, int64, error) {
	base := r.db.Model(&appModel.AppModel{})
	base = applyFilter(base, filter)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []appModel.AppModel
	if err := base.
		Select(testerCountSelect).
		Order("apps.created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *gormAppRepository) ListByOwner(ownerID uuid.UUID) ([]appModel.AppModel, error) {
	var items []appModel.AppModel
	if err := r.db.
		Select(testerCountSelect).
		Where("apps.created_by = ?", ownerID).
		Order("apps.created_at DESC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *gormAppRepository) Update(m *appModel.AppModel) error {
	// Save full row: field yang dipaksa null oleh Validate() (mis. platform
	// saat transisi ke test) ikut ter-null-kan atomik dalam satu UPDATE.
	return r.db.Save(m).Error
}

// Delete menghapus app + seluruh tester registration-nya dalam satu transaksi
// (sweep eksplisit; FK ON DELETE CASCADE di DB jadi lapis kedua).
func (r *gormAppRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("app_id = ?", id).Delete(&appModel.TestRequestModel{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&appModel.AppModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func applyFilter(q *gorm.DB, f dto.AppFilter) *gorm.DB {
	if f.VisibleOnly {
		// Predikat visibilitas board publik: approved ATAU listing test
		q = q.Where("apps.status = ? OR apps.submission_type = ?", "approved", "test")
	}
	if f.Status != "" {
		q = q.Where("apps.status = ?", f.Status)
	}
	if f.SubmissionType != "" {
		q = q.Where("apps.submission_type = ?", f.SubmissionType)
	}
	if f.Platform != "" {
		q = q.Where("apps.platform = ?", f.Platform)
	}
	if f.Q != "" {
		like := "%" + f.Q + "%"
		q = q.Where("apps.name ILIKE ? OR apps.description ILIKE ?", like, like)
	}
	if f.CreatedBy != nil {
		q = q.Where("apps.created_by = ?", *f.CreatedBy)
	}
	return q
}
