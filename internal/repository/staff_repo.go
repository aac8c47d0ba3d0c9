package repository

import (
	"context"

	"gorm.io/gorm"
	"nexora.lk/campuscore/internal/model"
)

type StaffRepository interface {
	Create(ctx context.Context, account *model.Account, staff *model.Staff) error
	CreateProfile(ctx context.Context, staff *model.Staff) error
	FindByID(ctx context.Context, id string) (*model.Staff, error)
	FindByStaffID(ctx context.Context, staffID string) (*model.Staff, error)
	FindAll(ctx context.Context) ([]*model.Staff, error)
	Update(ctx context.Context, staff *model.Staff, account *model.Account) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type staffRepository struct {
	db *gorm.DB
}

func NewStaffRepository(db *gorm.DB) StaffRepository {
	return &staffRepository{db: db}
}

func (r *staffRepository) Create(ctx context.Context, account *model.Account, staff *model.Staff) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(account).Error; err != nil {
			return err
		}

		staff.AccountID = account.ID
		staff.Account = *account
		return tx.Omit("Account", "Department").Create(staff).Error
	})
}

func (r *staffRepository) CreateProfile(ctx context.Context, staff *model.Staff) error {
	return r.db.WithContext(ctx).Omit("Account", "Department").Create(staff).Error
}

func (r *staffRepository) FindByID(ctx context.Context, id string) (*model.Staff, error) {
	var staff model.Staff
	if err := r.db.WithContext(ctx).
		Preload("Account").
		Preload("Department").
		Where("id = ?", id).
		First(&staff).Error; err != nil {
		return nil, err
	}

	return &staff, nil
}

func (r *staffRepository) FindByStaffID(ctx context.Context, staffID string) (*model.Staff, error) {
	var staff model.Staff
	if err := r.db.WithContext(ctx).
		Preload("Account").
		Preload("Department").
		Where("staff_id = ?", staffID).
		First(&staff).Error; err != nil {
		return nil, err
	}

	return &staff, nil
}

func (r *staffRepository) FindAll(ctx context.Context) ([]*model.Staff, error) {
	var staff []*model.Staff
	if err := r.db.WithContext(ctx).
		Preload("Account").
		Preload("Department").
		Order("created_at DESC").
		Find(&staff).Error; err != nil {
		return nil, err
	}

	return staff, nil
}

func (r *staffRepository) Update(ctx context.Context, staff *model.Staff, account *model.Account) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Account", "Department").Save(staff).Error; err != nil {
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

func (r *staffRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var staff model.Staff
		if err := tx.Where("id = ?", id).First(&staff).Error; err != nil {
			return err
		}

		if err := tx.Delete(&model.Staff{}, "id = ?", staff.ID).Error; err != nil {
			return err
		}

		return tx.Delete(&model.Account{}, "id = ?", staff.AccountID).Error
	})
}

func (r *staffRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Staff{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
