package repository

import (
	"context"

	"gorm.io/gorm"
	"nexora.lk/campuscore/internal/model"
)

type CourseRepository interface {
	Create(ctx context.Context, course *model.Course) error
	FindByID(ctx context.Context, id string) (*model.Course, error)
	FindByCode(ctx context.Context, code string) (*model.Course, error)
	FindAll(ctx context.Context) ([]*model.Course, error)
	FindByDepartment(ctx context.Context, departmentID string) ([]*model.Course, error)
	Update(ctx context.Context, course *model.Course) error
	ReplacePrerequisites(ctx context.Context, course *model.Course, prerequisites []model.Course) error
	Delete(ctx context.Context, id string) error
}

type courseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) Create(ctx context.Context, course *model.Course) error {
	return r.db.WithContext(ctx).Omit("Department", "Prerequisites").Create(course).Error
}

func (r *courseRepository) FindByID(ctx context.Context, id string) (*model.Course, error) {
	var course model.Course
	if err := r.db.WithContext(ctx).
		Preload("Department").
		Preload("Prerequisites").
		Where("id = ?", id).
		First(&course).Error; err != nil {
		return nil, err
	}

	return &course, nil
}

func (r *courseRepository) FindByCode(ctx context.Context, code string) (*model.Course, error) {
	var course model.Course
	if err := r.db.WithContext(ctx).
		Preload("Department").
		Where("course_code = ?", code).
		First(&course).Error; err != nil {
		return nil, err
	}

	return &course, nil
}

func (r *courseRepository) FindAll(ctx context.Context) ([]*model.Course, error) {
	var courses []*model.Course
	if err := r.db.WithContext(ctx).
		Preload("Department").
		Preload("Prerequisites").
		Order("course_code ASC").
		Find(&courses).Error; err != nil {
		return nil, err
	}

	return courses, nil
}

func (r *courseRepository) FindByDepartment(ctx context.Context, departmentID string) ([]*model.Course, error) {
	var courses []*model.Course
	if err := r.db.WithContext(ctx).
		Preload("Department").
		Where("department_id = ?", departmentID).
		Order("course_code ASC").
		Find(&courses).Error; err != nil {
		return nil, err
	}

	return courses, nil
}

func (r *courseRepository) Update(ctx context.Context, course *model.Course) error {
	return r.db.WithContext(ctx).Omit("Department", "Prerequisites").Save(course).Error
}

func (r *courseRepository) ReplacePrerequisites(ctx context.Context, course *model.Course, prerequisites []model.Course) error {
	return r.db.WithContext(ctx).Model(course).Association("Prerequisites").Replace(prerequisites)
}

func (r *courseRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Course{}, "id = ?", id).Error
}
