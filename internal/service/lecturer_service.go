package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"nexora.lk/campuscore/internal/dto"
	"nexora.lk/campuscore/internal/model"
	"nexora.lk/campuscore/internal/repository"
	"nexora.lk/campuscore/pkg/apperror"
)

type LecturerService interface {
	Create(ctx context.Context, input dto.CreateLecturerInput) (*model.Lecturer, error)
	GetAll(ctx context.Context) ([]*model.Lecturer, error)
	Get(ctx context.Context, id string) (*model.Lecturer, error)
	Update(ctx context.Context, id string, input dto.UpdateLecturerInput) (*model.Lecturer, error)
	Delete(ctx context.Context, id string) error
}

type lecturerService struct {
	lecturers   repository.LecturerRepository
	accounts    repository.AccountRepository
	departments repository.DepartmentRepository
	courses     repository.CourseRepository
}

func NewLecturerService(
	lecturers repository.LecturerRepository,
	accounts repository.AccountRepository,
	departments repository.DepartmentRepository,
	courses repository.CourseRepository,
) LecturerService {
	return &lecturerService{
		lecturers:   lecturers,
		accounts:    accounts,
		departments: departments,
		courses:     courses,
	}
}

func (s *lecturerService) Create(ctx context.Context, input dto.CreateLecturerInput) (*model.Lecturer, error) {
	if err := ensureAccountUnique(ctx, s.accounts, input.Email, input.Username); err != nil {
		return nil, err
	}

	if _, err := s.lecturers.FindByLecturerID(ctx, input.LecturerID); err == nil {
		return nil, fmt.Errorf("%w: lecturer id %s is already in use", apperror.ErrConflict, input.LecturerID)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	departmentID, err := parseUUIDPtr(input.DepartmentID)
	if err != nil {
		return nil, err
	}
	if departmentID != nil {
		if _, err := s.departments.FindByID(ctx, departmentID.String()); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: department not found", apperror.ErrNotFound)
			}
			return nil, err
		}
	}

	courses, err := s.resolveCourses(ctx, input.CourseIDs)
	if err != nil {
		return nil, err
	}

	account, err := buildAccount(input.AccountFields, model.RoleLecturer)
	if err != nil {
		return nil, err
	}

	designation := input.Designation
	if designation == "" {
		designation = "Lecturer"
	}
	employmentType := input.EmploymentType
	if employmentType == "" {
		employmentType = "Full-time"
	}

	lecturer := &model.Lecturer{
		LecturerID:        input.LecturerID,
		DepartmentID:      departmentID,
		Designation:       designation,
		Qualification:     input.Qualification,
		Specialization:    input.Specialization,
		YearsOfExperience: input.YearsOfExperience,
		JoinDate:          input.JoinDate,
		OfficeRoom:        input.OfficeRoom,
		EmploymentType:    employmentType,
	}

	if err := s.lecturers.Create(ctx, account, lecturer); err != nil {
		return nil, translateWriteError(err)
	}

	if len(courses) > 0 {
		if err := s.lecturers.ReplaceCourses(ctx, lecturer, courses); err != nil {
			return nil, err
		}
	}

	created, err := s.lecturers.FindByID(ctx, lecturer.ID.String())
	if err != nil {
		return nil, err
	}

	created.Account.PasswordHash = ""
	return created, nil
}

func (s *lecturerService) GetAll(ctx context.Context) ([]*model.Lecturer, error) {
	lecturers, err := s.lecturers.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, lecturer := range lecturers {
		lecturer.Account.PasswordHash = ""
	}
	return lecturers, nil
}

func (s *lecturerService) Get(ctx context.Context, id string) (*model.Lecturer, error) {
	lecturer, err := s.lecturers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: lecturer not found", apperror.ErrNotFound)
		}
		return nil, err
	}

	lecturer.Account.PasswordHash = ""
	return lecturer, nil
}

func (s *lecturerService) Update(ctx context.Context, id string, input dto.UpdateLecturerInput) (*model.Lecturer, error) {
	lecturer, err := s.lecturers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: lecturer not found", apperror.ErrNotFound)
		}
		return nil, err
	}

	departmentID, err := parseUUIDPtr(input.DepartmentID)
	if err != nil {
		return nil, err
	}
	if departmentID != nil {
		if _, err := s.departments.FindByID(ctx, departmentID.String()); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: department not found", apperror.ErrNotFound)
			}
			return nil, err
		}
		lecturer.DepartmentID = departmentID
	}

	if input.Designation != nil {
		lecturer.Designation = *input.Designation
	}
	if input.Qualification != nil {
		lecturer.Qualification = *input.Qualification
	}
	if input.Specialization != nil {
		lecturer.Specialization = *input.Specialization
	}
	if input.YearsOfExperience != nil {
		lecturer.YearsOfExperience = *input.YearsOfExperience
	}
	if input.JoinDate != nil {
		lecturer.JoinDate = input.JoinDate
	}
	if input.OfficeRoom != nil {
		lecturer.OfficeRoom = input.OfficeRoom
	}
	if input.EmploymentType != nil {
		lecturer.EmploymentType = *input.EmploymentType
	}

	var account *model.Account
	if !input.AccountPatch.Empty() {
		if err := ensurePatchedAccountUnique(ctx, s.accounts, &lecturer.Account, input.AccountPatch); err != nil {
			return nil, err
		}
		account = &lecturer.Account
		applyAccountPatch(account, input.AccountPatch)
	}

	if err := s.lecturers.Update(ctx, lecturer, account); err != nil {
		return nil, translateWriteError(err)
	}

	if input.CourseIDs != nil {
		courses, err := s.resolveCourses(ctx, input.CourseIDs)
		if err != nil {
			return nil, err
		}
		if err := s.lecturers.ReplaceCourses(ctx, lecturer, courses); err != nil {
			return nil, err
		}
	}

	return s.Get(ctx, id)
}

func (s *lecturerService) Delete(ctx context.Context, id string) error {
	if err := s.lecturers.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: lecturer not found", apperror.ErrNotFound)
		}
		return err
	}
	return nil
}

func (s *lecturerService) resolveCourses(ctx context.Context, ids []string) ([]model.Course, error) {
	courses := make([]model.Course, 0, len(ids))
	for _, id := range ids {
		course, err := s.courses.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: course %s not found", apperror.ErrNotFound, id)
			}
			return nil, err
		}
		courses = append(courses, *course)
	}
	return courses, nil
}
