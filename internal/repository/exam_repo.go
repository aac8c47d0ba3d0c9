package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"nexora.lk/campuscore/internal/model"
)

type ExamResultRepository interface {
	Create(ctx context.Context, result *model.ExamResult) error
	FindByID(ctx context.Context, id string) (*model.ExamResult, error)
	// FindByKey looks up the single result for (student, course, year,
	// semester); the natural key the reconciliation path upserts on.
	FindByKey(ctx context.Context, studentID, courseID uuid.UUID, academicYear string, semester int) (*model.ExamResult, error)
	FindByStudent(ctx context.Context, studentID string) ([]*model.ExamResult, error)
	FindAll(ctx context.Context) ([]*model.ExamResult, error)
	Update(ctx context.Context, result *model.ExamResult) error
	Delete(ctx context.Context, id string) error
}

type examResultRepository struct {
	db *gorm.DB
}

func NewExamResultRepository(db *gorm.DB) ExamResultRepository {
	return &examResultRepository{db: db}
}

func (r *examResultRepository) Create(ctx context.Context, result *model.ExamResult) error {
	return r.db.WithContext(ctx).Omit("Student", "Course").Create(result).Error
}

func (r *examResultRepository) FindByID(ctx context.Context, id string) (*model.ExamResult, error) {
	var result model.ExamResult
	if err := r.db.WithContext(ctx).
		Preload("Student").
		Preload("Student.Account").
		Preload("Course").
		Where("id = ?", id).
		First(&result).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *examResultRepository) FindByKey(ctx context.Context, studentID, courseID uuid.UUID, academicYear string, semester int) (*model.ExamResult, error) {
	var result model.ExamResult
	if err := r.db.WithContext(ctx).
		Where("student_id = ? AND course_id = ? AND academic_year = ? AND semester = ?",
			studentID, courseID, academicYear, semester).
		First(&result).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *examResultRepository) FindByStudent(ctx context.Context, studentID string) ([]*model.ExamResult, error) {
	var results []*model.ExamResult
	if err := r.db.WithContext(ctx).
		Preload("Course").
		Where("student_id = ?", studentID).
		Order("academic_year DESC, semester DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}

	return results, nil
}

func (r *examResultRepository) FindAll(ctx context.Context) ([]*model.ExamResult, error) {
	var results []*model.ExamResult
	if err := r.db.WithContext(ctx).
		Preload("Student").
		Preload("Student.Account").
		Preload("Course").
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}

	return results, nil
}

func (r *examResultRepository) Update(ctx context.Context, result *model.ExamResult) error {
	return r.db.WithContext(ctx).Omit("Student", "Course").Save(result).Error
}

func (r *examResultRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.ExamResult{}, "id = ?", id).Error
}
