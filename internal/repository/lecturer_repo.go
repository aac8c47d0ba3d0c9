package repository

import (
	"context"

	"gorm.io/gorm"
	"nexora.lk/campuscore/internal/model"
)

type LecturerRepository interface {
	Create(ctx context.Context, account *model.Account, lecturer *model.Lecturer) error
	CreateProfile(ctx context.Context, lecturer *model.Lecturer) error
	FindByID(ctx context.Context, id string) (*model.Lecturer, error)
	FindByLecturerID(ctx context.Context, lecturerID string) (*model.Lecturer, error)
	FindAll(ctx context.Context) ([]*model.Lecturer, error)
	Update(ctx context.Context, lecturer *model.Lecturer, account *model.Account) error
	// ReplaceCourses swaps the taught-courses association wholesale.
	ReplaceCourses(ctx context.Context, lecturer *model.Lecturer, courses []model.Course) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type lecturerRepository struct {
	db *gorm.DB
}

func NewLecturerRepository(db *gorm.DB) LecturerRepository {
	return &lecturerRepository{db: db}
}

func (r *lecturerRepository) Create(ctx context.Context, account *model.Account, lecturer *model.Lecturer) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(account).Error; err != nil {
			return err
		}

		lecturer.AccountID = account.ID
		lecturer.Account = *account
		return tx.Omit("Account", "Department", "CoursesTaught").Create(lecturer).Error
	})
}

func (r *lecturerRepository) CreateProfile(ctx context.Context, lecturer *model.Lecturer) error {
	return r.db.WithContext(ctx).Omit("Account", "Department", "CoursesTaught").Create(lecturer).Error
}

func (r *lecturerRepository) FindByID(ctx context.Context, id string) (*model.Lecturer, error) {
	var lecturer model.Lecturer
	if err := r.db.WithContext(ctx).
		Preload("Account").
		Preload("Department").
		Preload("CoursesTaught").
		Where("id = ?", id).
		First(&lecturer).Error; err != nil {
		return nil, err
	}

	return &lecturer, nil
}

func (r *lecturerRepository) FindByLecturerID(ctx context.Context, lecturerID string) (*model.Lecturer, error) {
	var lecturer model.Lecturer
	if err := r.db.WithContext(ctx).
		Preload("Account").
		Preload("Department").
		Where("lecturer_id = ?", lecturerID).
		First(&lecturer).Error; err != nil {
		return nil, err
	}

	return &lecturer, nil
}

func (r *lecturerRepository) FindAll(ctx context.Context) ([]*model.Lecturer, error) {
	var lecturers []*model.Lecturer
	if err := r.db.WithContext(ctx).
		Preload("Account").
		Preload("Department").
		Preload("CoursesTaught").
		Order("created_at DESC").
		Find(&lecturers).Error; err != nil {
		return nil, err
	}

	return lecturers, nil
}

func (r *lecturerRepository) Update(ctx context.Context, lecturer *model.Lecturer, account *model.Account) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Account", "Department", "CoursesTaught").Save(lecturer).Error; err != nil {
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

func (r *lecturerRepository) ReplaceCourses(ctx context.Context, lecturer *model.Lecturer, courses []model.Course) error {
	return r.db.WithContext(ctx).Model(lecturer).Association("CoursesTaught").Replace(courses)
}

func (r *lecturerRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var lecturer model.Lecturer
		if err := tx.Where("id = ?", id).First(&lecturer).Error; err != nil {
			return err
		}

		if err := tx.Model(&lecturer).Association("CoursesTaught").Clear(); err != nil {
			return err
		}

		if err := tx.Delete(&model.Lecturer{}, "id = ?", lecturer.ID).Error; err != nil {
			return err
		}

		return tx.Delete(&model.Account{}, "id = ?", lecturer.AccountID).Error
	})
}

func (r *lecturerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Lecturer{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
