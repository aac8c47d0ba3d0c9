package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"nexora.lk/campuscore/internal/dto"
	"nexora.lk/campuscore/internal/model"
	"nexora.lk/campuscore/internal/repository"
	"nexora.lk/campuscore/pkg/apperror"
)

type TimetableService interface {
	Create(ctx context.Context, input dto.CreateTimetableInput) (*model.Timetable, error)
	GetAll(ctx context.Context) ([]*model.Timetable, error)
	Get(ctx context.Context, id string) (*model.Timetable, error)
	GetByDepartment(ctx context.Context, departmentID string) ([]*model.Timetable, error)
	Update(ctx context.Context, id string, input dto.UpdateTimetableInput) (*model.Timetable, error)
	Delete(ctx context.Context, id string) error
}

type timetableService struct {
	timetables  repository.TimetableRepository
	courses     repository.CourseRepository
	lecturers   repository.LecturerRepository
	departments repository.DepartmentRepository
}

func NewTimetableService(
	timetables repository.TimetableRepository,
	courses repository.CourseRepository,
	lecturers repository.LecturerRepository,
	departments repository.DepartmentRepository,
) TimetableService {
	return &timetableService{
		timetables:  timetables,
		courses:     courses,
		lecturers:   lecturers,
		departments: departments,
	}
}

func (s *timetableService) Create(ctx context.Context, input dto.CreateTimetableInput) (*model.Timetable, error) {
	if err := validateTimeRange(input.StartTime, input.EndTime); err != nil {
		return nil, err
	}

	course, err := s.courses.FindByID(ctx, input.CourseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: course not found", apperror.ErrNotFound)
		}
		return nil, err
	}

	lecturer, err := s.lecturers.FindByID(ctx, input.LecturerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: lecturer not found", apperror.ErrNotFound)
		}
		return nil, err
	}

	department, err := s.departments.FindByID(ctx, input.DepartmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: department not found", apperror.ErrNotFound)
		}
		return nil, err
	}

	sessionType := input.SessionType
	if sessionType == "" {
		sessionType = "Lecture"
	}

	entry := &model.Timetable{
		CourseID:     course.ID,
		LecturerID:   lecturer.ID,
		DepartmentID: department.ID,
		DayOfWeek:    input.DayOfWeek,
		StartTime:    input.StartTime,
		EndTime:      input.EndTime,
		Room:         input.Room,
		SessionType:  sessionType,
		Semester:     input.Semester,
		AcademicYear: input.AcademicYear,
		IsActive:     true,
		Notes:        input.Notes,
	}

	if err := s.timetables.Create(ctx, entry); err != nil {
		return nil, translateWriteError(err)
	}

	return s.timetables.FindByID(ctx, entry.ID.String())
}

func (s *timetableService) GetAll(ctx context.Context) ([]*model.Timetable, error) {
	return s.timetables.FindAll(ctx)
}

func (s *timetableService) Get(ctx context.Context, id string) (*model.Timetable, error) {
	entry, err := s.timetables.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: timetable entry not found", apperror.ErrNotFound)
		}
		return nil, err
	}
	return entry, nil
}

func (s *timetableService) GetByDepartment(ctx context.Context, departmentID string) ([]*model.Timetable, error) {
	return s.timetables.FindByDepartment(ctx, departmentID)
}

func (s *timetableService) Update(ctx context.Context, id string, input dto.UpdateTimetableInput) (*model.Timetable, error) {
	entry, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.DayOfWeek != nil {
		entry.DayOfWeek = *input.DayOfWeek
	}
	if input.StartTime != nil {
		entry.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		entry.EndTime = *input.EndTime
	}
	if err := validateTimeRange(entry.StartTime, entry.EndTime); err != nil {
		return nil, err
	}
	if input.Room != nil {
		entry.Room = *input.Room
	}
	if input.SessionType != nil {
		entry.SessionType = *input.SessionType
	}
	if input.Semester != nil {
		entry.Semester = *input.Semester
	}
	if input.IsActive != nil {
		entry.IsActive = *input.IsActive
	}
	if input.Notes != nil {
		entry.Notes = *input.Notes
	}

	if err := s.timetables.Update(ctx, entry); err != nil {
		return nil, err
	}

	return s.timetables.FindByID(ctx, id)
}

func (s *timetableService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.timetables.Delete(ctx, id)
}

// validateTimeRange expects HH:MM wall-clock times and rejects sessions
// that end at or before their start.
func validateTimeRange(start, end string) error {
	startAt, err := time.Parse("15:04", start)
	if err != nil {
		return fmt.Errorf("%w: invalid start time %q, expected HH:MM", apperror.ErrInvalidInput, start)
	}
	endAt, err := time.Parse("15:04", end)
	if err != nil {
		return fmt.Errorf("%w: invalid end time %q, expected HH:MM", apperror.ErrInvalidInput, end)
	}
	if !endAt.After(startAt) {
		return fmt.Errorf("%w: end time must be after start time", apperror.ErrInvalidInput)
	}
	return nil
}

type ConvocationService interface {
	Create(ctx context.Context, input dto.CreateConvocationInput) (*model.Convocation, error)
	GetAll(ctx context.Context) ([]*model.Convocation, error)
	Get(ctx context.Context, id string) (*model.Convocation, error)
	Update(ctx context.Context, id string, input dto.UpdateConvocationInput) (*model.Convocation, error)
	Delete(ctx context.Context, id string) error
}

type convocationService struct {
	records repository.ConvocationRepository
	courses repository.CourseRepository
}

func NewConvocationService(records repository.ConvocationRepository, courses repository.CourseRepository) ConvocationService {
	return &convocationService{records: records, courses: courses}
}

func (s *convocationService) Create(ctx context.Context, input dto.CreateConvocationInput) (*model.Convocation, error) {
	if _, err := s.records.FindByExamIndexNo(ctx, input.ExamIndexNo); err == nil {
		return nil, fmt.Errorf("%w: exam index number %s already registered", apperror.ErrConflict, input.ExamIndexNo)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if _, err := s.courses.FindByCode(ctx, input.CourseCode); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: course not found: %s", apperror.ErrNotFound, input.CourseCode)
		}
		return nil, err
	}

	studyMode := input.StudyMode
	if studyMode == "" {
		studyMode = "Full Time"
	}
	paymentStatus := input.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = "Pending"
	}
	convocationYear := input.ConvocationYear
	if convocationYear == 0 {
		convocationYear = time.Now().Year()
	}

	record := &model.Convocation{
		SerialNo:         input.SerialNo,
		YearCompleted:    input.YearCompleted,
		Gender:           input.Gender,
		FullName:         input.FullName,
		NameWithInitials: input.NameWithInitials,
		StudyMode:        studyMode,
		Address:          input.Address,
		ContactNumber:    input.ContactNumber,
		PaymentStatus:    paymentStatus,
		ExamIndexNo:      input.ExamIndexNo,
		CourseCode:       input.CourseCode,
		ConvocationYear:  convocationYear,
		Email:            input.Email,
		Remarks:          input.Remarks,
	}

	if err := s.records.Create(ctx, record); err != nil {
		return nil, translateWriteError(err)
	}

	return record, nil
}

func (s *convocationService) GetAll(ctx context.Context) ([]*model.Convocation, error) {
	return s.records.FindAll(ctx)
}

func (s *convocationService) Get(ctx context.Context, id string) (*model.Convocation, error) {
	record, err := s.records.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: convocation record not found", apperror.ErrNotFound)
		}
		return nil, err
	}
	return record, nil
}

func (s *convocationService) Update(ctx context.Context, id string, input dto.UpdateConvocationInput) (*model.Convocation, error) {
	record, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.StudyMode != nil {
		record.StudyMode = *input.StudyMode
	}
	if input.Address != nil {
		record.Address = *input.Address
	}
	if input.ContactNumber != nil {
		record.ContactNumber = *input.ContactNumber
	}
	if input.PaymentStatus != nil {
		record.PaymentStatus = *input.PaymentStatus
	}
	if input.Email != nil {
		record.Email = input.Email
	}
	if input.Remarks != nil {
		record.Remarks = input.Remarks
	}

	if err := s.records.Update(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

func (s *convocationService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.records.Delete(ctx, id)
}
