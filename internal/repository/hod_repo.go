package repository

import (
	"context"

	"gorm.io/gorm"
	"nexora.lk/campuscore/internal/model"
)

type HODRepository interface {
	// Create inserts the account and the HOD profile, and points the
	// department back at the new head, all in one transaction.
	Create(ctx context.Context, account *model.Account, hod *model.HOD) error
	// CreateProfile inserts a profile for an existing account and points
	// the department at the new head, in one transaction.
	CreateProfile(ctx context.Context, hod *model.HOD) error
	FindByID(ctx context.Context, id string) (*model.HOD, error)
	FindByHODID(ctx context.Context, hodID string) (*model.HOD, error)
	FindByDepartmentID(ctx context.Context, departmentID string) (*model.HOD, error)
	FindAll(ctx context.Context) ([]*model.HOD, error)
	Update(ctx context.Context, hod *model.HOD, account *model.Account) error
	// Delete removes profile and account and clears the department's
	// back-reference in one transaction.
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type hodRepository struct {
	db *gorm.DB
}

func NewHODRepository(db *gorm.DB) HODRepository {
	return &hodRepository{db: db}
}

func (r *hodRepository) Create(ctx context.Context, account *model.Account, hod *model.HOD) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(account).Error; err != nil {
			return err
		}

		hod.AccountID = account.ID
		hod.Account = *account
		if err := tx.Omit("Account", "Department").Create(hod).Error; err != nil {
			return err
		}

		return tx.Model(&model.Department{}).
			Where("id = ?", hod.DepartmentID).
			Update("hod_id", hod.ID).Error
	})
}

func (r *hodRepository) CreateProfile(ctx context.Context, hod *model.HOD) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Account", "Department").Create(hod).Error; err != nil {
			return err
		}

		return tx.Model(&model.Department{}).
			Where("id = ?", hod.DepartmentID).
			Update("hod_id", hod.ID).Error
	})
}

func (r *hodRepository) FindByID(ctx context.Context, id string) (*model.HOD, error) {
	var hod model.HOD
	if err := r.db.WithContext(ctx).
		Preload("Account").
		Preload("Department").
		Where("id = ?", id).
		First(&hod).Error; err != nil {
		return nil, err
	}

	return &hod, nil
}

func (r *hodRepository) FindByHODID(ctx context.Context, hodID string) (*model.HOD, error) {
	var hod model.HOD
	if err := r.db.WithContext(ctx).
		Preload("Account").
		Preload("Department").
		Where("hod_id = ?", hodID).
		First(&hod).Error; err != nil {
		return nil, err
	}

	return &hod, nil
}

func (r *hodRepository) FindByDepartmentID(ctx context.Context, departmentID string) (*model.HOD, error) {
	var hod model.HOD
	if err := r.db.WithContext(ctx).
		Where("department_id = ?", departmentID).
		First(&hod).Error; err != nil {
		return nil, err
	}

	return &hod, nil
}

func (r *hodRepository) FindAll(ctx context.Context) ([]*model.HOD, error) {
	var hods []*model.HOD
	if err := r.db.WithContext(ctx).
		Preload("Account").
		Preload("Department").
		Order("created_at DESC").
		Find(&hods).Error; err != nil {
		return nil, err
	}

	return hods, nil
}

func (r *hodRepository) Update(ctx context.Context, hod *model.HOD, account *model.Account) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Account", "Department").Save(hod).Error; err != nil {
			return err
		}

		if account != nil {
			if err := tx.Save(account).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *hodRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var hod model.HOD
		if err := tx.Where("id = ?", id).First(&hod).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.Department{}).
			Where("id = ?", hod.DepartmentID).
			Update("hod_id", nil).Error; err != nil {
			return err
		}

		if err := tx.Delete(&model.HOD{}, "id = ?", hod.ID).Error; err != nil {
			return err
		}

		return tx.Delete(&model.Account{}, "id = ?", hod.AccountID).Error
	})
}

func (r *hodRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.HOD{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
