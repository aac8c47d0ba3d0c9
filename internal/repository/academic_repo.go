package repository

import (
	"context"

	"gorm.io/gorm"
	"nexora.lk/campuscore/internal/model"
)

type TimetableRepository interface {
	Create(ctx context.Context, entry *model.Timetable) error
	FindByID(ctx context.Context, id string) (*model.Timetable, error)
	FindAll(ctx context.Context) ([]*model.Timetable, error)
	FindByDepartment(ctx context.Context, departmentID string) ([]*model.Timetable, error)
	Update(ctx context.Context, entry *model.Timetable) error
	Delete(ctx context.Context, id string) error
}

type timetableRepository struct {
	db *gorm.DB
}

func NewTimetableRepository(db *gorm.DB) TimetableRepository {
	return &timetableRepository{db: db}
}

func (r *timetableRepository) Create(ctx context.Context, entry *model.Timetable) error {
	return r.db.WithContext(ctx).Omit("Course", "Lecturer", "Department").Create(entry).Error
}

func (r *timetableRepository) FindByID(ctx context.Context, id string) (*model.Timetable, error) {
	var entry model.Timetable
	if err := r.db.WithContext(ctx).
		Preload("Course").
		Preload("Lecturer").
		Preload("Lecturer.Account").
		Preload("Department").
		Where("id = ?", id).
		First(&entry).Error; err != nil {
		return nil, err
	}

	return &entry, nil
}

func (r *timetableRepository) FindAll(ctx context.Context) ([]*model.Timetable, error) {
	var entries []*model.Timetable
	if err := r.db.WithContext(ctx).
		Preload("Course").
		Preload("Lecturer").
		Preload("Lecturer.Account").
		Preload("Department").
		Order("day_of_week ASC, start_time ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *timetableRepository) FindByDepartment(ctx context.Context, departmentID string) ([]*model.Timetable, error) {
	var entries []*model.Timetable
	if err := r.db.WithContext(ctx).
		Preload("Course").
		Preload("Lecturer").
		Preload("Lecturer.Account").
		Where("department_id = ?", departmentID).
		Order("day_of_week ASC, start_time ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *timetableRepository) Update(ctx context.Context, entry *model.Timetable) error {
	return r.db.WithContext(ctx).Omit("Course", "Lecturer", "Department").Save(entry).Error
}

func (r *timetableRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Timetable{}, "id = ?", id).Error
}

type ConvocationRepository interface {
	Create(ctx context.Context, record *model.Convocation) error
	FindByID(ctx context.Context, id string) (*model.Convocation, error)
	FindByExamIndexNo(ctx context.Context, examIndexNo string) (*model.Convocation, error)
	FindAll(ctx context.Context) ([]*model.Convocation, error)
	Update(ctx context.Context, record *model.Convocation) error
	Delete(ctx context.Context, id string) error
}

type convocationRepository struct {
	db *gorm.DB
}

func NewConvocationRepository(db *gorm.DB) ConvocationRepository {
	return &convocationRepository{db: db}
}

func (r *convocationRepository) Create(ctx context.Context, record *model.Convocation) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *convocationRepository) FindByID(ctx context.Context, id string) (*model.Convocation, error) {
	var record model.Convocation
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *convocationRepository) FindByExamIndexNo(ctx context.Context, examIndexNo string) (*model.Convocation, error) {
	var record model.Convocation
	if err := r.db.WithContext(ctx).
		Where("exam_index_no = ?", examIndexNo).
		First(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *convocationRepository) FindAll(ctx context.Context) ([]*model.Convocation, error) {
	var records []*model.Convocation
	if err := r.db.WithContext(ctx).
		Order("serial_no ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func (r *convocationRepository) Update(ctx context.Context, record *model.Convocation) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *convocationRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Convocation{}, "id = ?", id).Error
}
