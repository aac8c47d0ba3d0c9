package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"nexora.lk/campuscore/internal/dto"
	"nexora.lk/campuscore/internal/model"
	"nexora.lk/campuscore/internal/repository"
	"nexora.lk/campuscore/pkg/apperror"
)

// DirectoryService manages the read-mostly reference data the lifecycle
// and import paths validate against.
type DirectoryService interface {
	CreateDepartment(ctx context.Context, input dto.CreateDepartmentInput) (*model.Department, error)
	GetDepartments(ctx context.Context) ([]*model.Department, error)
	GetDepartment(ctx context.Context, id string) (*model.Department, error)
	UpdateDepartment(ctx context.Context, id string, input dto.UpdateDepartmentInput) (*model.Department, error)
	DeleteDepartment(ctx context.Context, id string) error

	CreateCourse(ctx context.Context, input dto.CreateCourseInput) (*model.Course, error)
	GetCourses(ctx context.Context) ([]*model.Course, error)
	GetCourse(ctx context.Context, id string) (*model.Course, error)
	UpdateCourse(ctx context.Context, id string, input dto.UpdateCourseInput) (*model.Course, error)
	DeleteCourse(ctx context.Context, id string) error
}

type directoryService struct {
	departments repository.DepartmentRepository
	courses     repository.CourseRepository
}

func NewDirectoryService(departments repository.DepartmentRepository, courses repository.CourseRepository) DirectoryService {
	return &directoryService{departments: departments, courses: courses}
}

func (s *directoryService) CreateDepartment(ctx context.Context, input dto.CreateDepartmentInput) (*model.Department, error) {
	if _, err := s.departments.FindByName(ctx, input.Name); err == nil {
		return nil, fmt.Errorf("%w: department %s already exists", apperror.ErrConflict, input.Name)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	department := &model.Department{
		Name:            strings.TrimSpace(input.Name),
		Code:            strings.ToUpper(input.Code),
		Description:     input.Description,
		EstablishedYear: input.EstablishedYear,
		Building:        input.Building,
		OfficePhone:     input.OfficePhone,
		Email:           input.Email,
		IsActive:        true,
	}

	if err := s.departments.Create(ctx, department); err != nil {
		return nil, translateWriteError(err)
	}

	return department, nil
}

func (s *directoryService) GetDepartments(ctx context.Context) ([]*model.Department, error) {
	return s.departments.FindAll(ctx)
}

func (s *directoryService) GetDepartment(ctx context.Context, id string) (*model.Department, error) {
	department, err := s.departments.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: department not found", apperror.ErrNotFound)
		}
		return nil, err
	}
	return department, nil
}

func (s *directoryService) UpdateDepartment(ctx context.Context, id string, input dto.UpdateDepartmentInput) (*model.Department, error) {
	department, err := s.GetDepartment(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		department.Name = strings.TrimSpace(*input.Name)
	}
	if input.Code != nil {
		department.Code = strings.ToUpper(*input.Code)
	}
	if input.Description != nil {
		department.Description = *input.Description
	}
	if input.EstablishedYear != nil {
		department.EstablishedYear = input.EstablishedYear
	}
	if input.Building != nil {
		department.Building = input.Building
	}
	if input.OfficePhone != nil {
		department.OfficePhone = input.OfficePhone
	}
	if input.Email != nil {
		department.Email = input.Email
	}
	if input.IsActive != nil {
		department.IsActive = *input.IsActive
	}

	if err := s.departments.Update(ctx, department); err != nil {
		return nil, translateWriteError(err)
	}

	return department, nil
}

func (s *directoryService) DeleteDepartment(ctx context.Context, id string) error {
	if _, err := s.GetDepartment(ctx, id); err != nil {
		return err
	}
	return s.departments.Delete(ctx, id)
}

func (s *directoryService) CreateCourse(ctx context.Context, input dto.CreateCourseInput) (*model.Course, error) {
	code := strings.ToUpper(input.CourseCode)

	if _, err := s.courses.FindByCode(ctx, code); err == nil {
		return nil, fmt.Errorf("%w: course %s already exists", apperror.ErrConflict, code)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	department, err := s.GetDepartment(ctx, input.DepartmentID)
	if err != nil {
		return nil, err
	}

	prerequisites, err := s.resolvePrerequisites(ctx, input.PrerequisiteIDs)
	if err != nil {
		return nil, err
	}

	courseType := input.CourseType
	if courseType == "" {
		courseType = "Core"
	}

	course := &model.Course{
		CourseCode:   code,
		CourseName:   input.CourseName,
		DepartmentID: department.ID,
		Credits:      input.Credits,
		Semester:     input.Semester,
		Year:         input.Year,
		Description:  input.Description,
		CourseType:   courseType,
		IsActive:     true,
	}

	if err := s.courses.Create(ctx, course); err != nil {
		return nil, translateWriteError(err)
	}

	if len(prerequisites) > 0 {
		if err := s.courses.ReplacePrerequisites(ctx, course, prerequisites); err != nil {
			return nil, err
		}
	}

	return s.courses.FindByID(ctx, course.ID.String())
}

func (s *directoryService) GetCourses(ctx context.Context) ([]*model.Course, error) {
	return s.courses.FindAll(ctx)
}

func (s *directoryService) GetCourse(ctx context.Context, id string) (*model.Course, error) {
	course, err := s.courses.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: course not found", apperror.ErrNotFound)
		}
		return nil, err
	}
	return course, nil
}

func (s *directoryService) UpdateCourse(ctx context.Context, id string, input dto.UpdateCourseInput) (*model.Course, error) {
	course, err := s.GetCourse(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.DepartmentID != nil {
		department, err := s.GetDepartment(ctx, *input.DepartmentID)
		if err != nil {
			return nil, err
		}
		course.DepartmentID = department.ID
	}

	if input.CourseName != nil {
		course.CourseName = *input.CourseName
	}
	if input.Credits != nil {
		course.Credits = *input.Credits
	}
	if input.Semester != nil {
		course.Semester = *input.Semester
	}
	if input.Year != nil {
		course.Year = *input.Year
	}
	if input.Description != nil {
		course.Description = *input.Description
	}
	if input.CourseType != nil {
		course.CourseType = *input.CourseType
	}
	if input.IsActive != nil {
		course.IsActive = *input.IsActive
	}

	if err := s.courses.Update(ctx, course); err != nil {
		return nil, translateWriteError(err)
	}

	if input.PrerequisiteIDs != nil {
		prerequisites, err := s.resolvePrerequisites(ctx, input.PrerequisiteIDs)
		if err != nil {
			return nil, err
		}
		if err := s.courses.ReplacePrerequisites(ctx, course, prerequisites); err != nil {
			return nil, err
		}
	}

	return s.courses.FindByID(ctx, id)
}

func (s *directoryService) DeleteCourse(ctx context.Context, id string) error {
	if _, err := s.GetCourse(ctx, id); err != nil {
		return err
	}
	return s.courses.Delete(ctx, id)
}

func (s *directoryService) resolvePrerequisites(ctx context.Context, ids []string) ([]model.Course, error) {
	prerequisites := make([]model.Course, 0, len(ids))
	for _, id := range ids {
		course, err := s.courses.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: prerequisite course %s not found", apperror.ErrNotFound, id)
			}
			return nil, err
		}
		prerequisites = append(prerequisites, *course)
	}
	return prerequisites, nil
}
