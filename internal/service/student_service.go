package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"nexora.lk/campuscore/internal/dto"
	"nexora.lk/campuscore/internal/model"
	"nexora.lk/campuscore/internal/repository"
	"nexora.lk/campuscore/pkg/apperror"
)

type StudentService interface {
	Create(ctx context.Context, input dto.CreateStudentInput) (*model.Student, error)
	GetAll(ctx context.Context) ([]*model.Student, error)
	Get(ctx context.Context, id string) (*model.Student, error)
	Update(ctx context.Context, id string, input dto.UpdateStudentInput) (*model.Student, error)
	Delete(ctx context.Context, id string) error
}

type studentService struct {
	students    repository.StudentRepository
	accounts    repository.AccountRepository
	departments repository.DepartmentRepository
	courses     repository.CourseRepository
}

func NewStudentService(
	students repository.StudentRepository,
	accounts repository.AccountRepository,
	departments repository.DepartmentRepository,
	courses repository.CourseRepository,
) StudentService {
	return &studentService{
		students:    students,
		accounts:    accounts,
		departments: departments,
		courses:     courses,
	}
}

func (s *studentService) Create(ctx context.Context, input dto.CreateStudentInput) (*model.Student, error) {
	if err := ensureAccountUnique(ctx, s.accounts, input.Email, input.Username); err != nil {
		return nil, err
	}

	if _, err := s.students.FindByStudentID(ctx, input.StudentID); err == nil {
		return nil, fmt.Errorf("%w: student id %s is already in use", apperror.ErrConflict, input.StudentID)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if _, err := s.students.FindByRegistrationNumber(ctx, input.RegistrationNumber); err == nil {
		return nil, fmt.Errorf("%w: registration number %s is already in use", apperror.ErrConflict, input.RegistrationNumber)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	courseID, departmentID, err := s.resolveRefs(ctx, input.CourseID, input.DepartmentID)
	if err != nil {
		return nil, err
	}

	account, err := buildAccount(input.AccountFields, model.RoleStudent)
	if err != nil {
		return nil, err
	}

	enrollment := time.Now()
	if input.EnrollmentDate != nil {
		enrollment = *input.EnrollmentDate
	}

	student := &model.Student{
		StudentID:          input.StudentID,
		RegistrationNumber: input.RegistrationNumber,
		CourseID:           courseID,
		DepartmentID:       departmentID,
		Batch:              input.Batch,
		YearOfStudy:        input.YearOfStudy,
		Semester:           input.Semester,
		EnrollmentDate:     enrollment,
		AcademicStatus:     "active",
		GuardianName:       input.GuardianName,
		GuardianPhone:      input.GuardianPhone,
	}

	if err := s.students.Create(ctx, account, student); err != nil {
		return nil, translateWriteError(err)
	}

	created, err := s.students.FindByID(ctx, student.ID.String())
	if err != nil {
		return nil, err
	}

	created.Account.PasswordHash = ""
	return created, nil
}

func (s *studentService) GetAll(ctx context.Context) ([]*model.Student, error) {
	students, err := s.students.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, student := range students {
		student.Account.PasswordHash = ""
	}
	return students, nil
}

func (s *studentService) Get(ctx context.Context, id string) (*model.Student, error) {
	student, err := s.students.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: student not found", apperror.ErrNotFound)
		}
		return nil, err
	}

	student.Account.PasswordHash = ""
	return student, nil
}

func (s *studentService) Update(ctx context.Context, id string, input dto.UpdateStudentInput) (*model.Student, error) {
	student, err := s.students.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: student not found", apperror.ErrNotFound)
		}
		return nil, err
	}

	courseID, departmentID, err := s.resolveRefs(ctx, input.CourseID, input.DepartmentID)
	if err != nil {
		return nil, err
	}
	if courseID != nil {
		student.CourseID = courseID
	}
	if departmentID != nil {
		student.DepartmentID = departmentID
	}

	if input.Batch != nil {
		student.Batch = *input.Batch
	}
	if input.YearOfStudy != nil {
		student.YearOfStudy = *input.YearOfStudy
	}
	if input.Semester != nil {
		student.Semester = *input.Semester
	}
	if input.AcademicStatus != nil {
		student.AcademicStatus = *input.AcademicStatus
	}
	if input.GPA != nil {
		student.GPA = *input.GPA
	}
	if input.Attendance != nil {
		student.Attendance = *input.Attendance
	}
	if input.GuardianName != nil {
		student.GuardianName = input.GuardianName
	}
	if input.GuardianPhone != nil {
		student.GuardianPhone = input.GuardianPhone
	}

	var account *model.Account
	if !input.AccountPatch.Empty() {
		if err := ensurePatchedAccountUnique(ctx, s.accounts, &student.Account, input.AccountPatch); err != nil {
			return nil, err
		}
		account = &student.Account
		applyAccountPatch(account, input.AccountPatch)
	}

	if err := s.students.Update(ctx, student, account); err != nil {
		return nil, translateWriteError(err)
	}

	return s.Get(ctx, id)
}

func (s *studentService) Delete(ctx context.Context, id string) error {
	if err := s.students.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: student not found", apperror.ErrNotFound)
		}
		return err
	}
	return nil
}

func (s *studentService) resolveRefs(ctx context.Context, courseID, departmentID *string) (course, department *uuid.UUID, err error) {
	cid, err := parseUUIDPtr(courseID)
	if err != nil {
		return nil, nil, err
	}
	if cid != nil {
		if _, err := s.courses.FindByID(ctx, cid.String()); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil, fmt.Errorf("%w: course not found", apperror.ErrNotFound)
			}
			return nil, nil, err
		}
	}

	did, err := parseUUIDPtr(departmentID)
	if err != nil {
		return nil, nil, err
	}
	if did != nil {
		if _, err := s.departments.FindByID(ctx, did.String()); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil, fmt.Errorf("%w: department not found", apperror.ErrNotFound)
			}
			return nil, nil, err
		}
	}

	return cid, did, nil
}
