package repository

import (
	"context"

	"gorm.io/gorm"
	"nexora.lk/campuscore/internal/model"
)

type StudentRepository interface {
	// Create inserts the account and the student profile as one unit.
	Create(ctx context.Context, account *model.Account, student *model.Student) error
	// CreateProfile inserts a profile referencing an already-stored account;
	// used by the import path when the account is matched by email.
	CreateProfile(ctx context.Context, student *model.Student) error
	FindByID(ctx context.Context, id string) (*model.Student, error)
	FindByStudentID(ctx context.Context, studentID string) (*model.Student, error)
	FindByRegistrationNumber(ctx context.Context, regNumber string) (*model.Student, error)
	FindAll(ctx context.Context) ([]*model.Student, error)
	// Update persists the profile and, when account is non-nil, the paired
	// account inside the same transaction.
	Update(ctx context.Context, student *model.Student, account *model.Account) error
	// Delete removes the profile together with its account.
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type studentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) Create(ctx context.Context, account *model.Account, student *model.Student) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(account).Error; err != nil {
			return err
		}

		student.AccountID = account.ID
		student.Account = *account
		return tx.Omit("Account", "Course", "Department").Create(student).Error
	})
}

func (r *studentRepository) CreateProfile(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Omit("Account", "Course", "Department").Create(student).Error
}

func (r *studentRepository) FindByID(ctx context.Context, id string) (*model.Student, error) {
	var student model.Student
	if err := r.db.WithContext(ctx).
		Preload("Account").
		Preload("Course").
		Preload("Department").
		Where("id = ?", id).
		First(&student).Error; err != nil {
		return nil, err
	}

	return &student, nil
}

func (r *studentRepository) FindByStudentID(ctx context.Context, studentID string) (*model.Student, error) {
	var student model.Student
	if err := r.db.WithContext(ctx).
		Preload("Account").
		Preload("Course").
		Preload("Department").
		Where("student_id = ?", studentID).
		First(&student).Error; err != nil {
		return nil, err
	}

	return &student, nil
}

func (r *studentRepository) FindByRegistrationNumber(ctx context.Context, regNumber string) (*model.Student, error) {
	var student model.Student
	if err := r.db.WithContext(ctx).
		Where("registration_number = ?", regNumber).
		First(&student).Error; err != nil {
		return nil, err
	}

	return &student, nil
}

func (r *studentRepository) FindAll(ctx context.Context) ([]*model.Student, error) {
	var students []*model.Student
	if err := r.db.WithContext(ctx).
		Preload("Account").
		Preload("Course").
		Preload("Department").
		Order("created_at DESC").
		Find(&students).Error; err != nil {
		return nil, err
	}

	return students, nil
}

func (r *studentRepository) Update(ctx context.Context, student *model.Student, account *model.Account) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Account", "Course", "Department").Save(student).Error; err != nil {
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

func (r *studentRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var student model.Student
		if err := tx.Where("id = ?", id).First(&student).Error; err != nil {
			return err
		}

		if err := tx.Delete(&model.Student{}, "id = ?", student.ID).Error; err != nil {
			return err
		}

		return tx.Delete(&model.Account{}, "id = ?", student.AccountID).Error
	})
}

func (r *studentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Student{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
