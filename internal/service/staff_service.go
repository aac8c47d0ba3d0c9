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

type StaffService interface {
	Create(ctx context.Context, input dto.CreateStaffInput) (*model.Staff, error)
	GetAll(ctx context.Context) ([]*model.Staff, error)
	Get(ctx context.Context, id string) (*model.Staff, error)
	Update(ctx context.Context, id string, input dto.UpdateStaffInput) (*model.Staff, error)
	Delete(ctx context.Context, id string) error
}

type staffService struct {
	staff       repository.StaffRepository
	accounts    repository.AccountRepository
	departments repository.DepartmentRepository
}

func NewStaffService(
	staff repository.StaffRepository,
	accounts repository.AccountRepository,
	departments repository.DepartmentRepository,
) StaffService {
	return &staffService{
		staff:       staff,
		accounts:    accounts,
		departments: departments,
	}
}

func (s *staffService) Create(ctx context.Context, input dto.CreateStaffInput) (*model.Staff, error) {
	if err := ensureAccountUnique(ctx, s.accounts, input.Email, input.Username); err != nil {
		return nil, err
	}

	if _, err := s.staff.FindByStaffID(ctx, input.StaffID); err == nil {
		return nil, fmt.Errorf("%w: staff id %s is already in use", apperror.ErrConflict, input.StaffID)
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

	account, err := buildAccount(input.AccountFields, model.RoleStaff)
	if err != nil {
		return nil, err
	}

	staffType := input.StaffType
	if staffType == "" {
		staffType = "Administrative"
	}
	employmentType := input.EmploymentType
	if employmentType == "" {
		employmentType = "Full-time"
	}

	staff := &model.Staff{
		StaffID:        input.StaffID,
		DepartmentID:   departmentID,
		Position:       input.Position,
		StaffType:      staffType,
		JoinDate:       input.JoinDate,
		OfficeRoom:     input.OfficeRoom,
		EmploymentType: employmentType,
	}

	if err := s.staff.Create(ctx, account, staff); err != nil {
		return nil, translateWriteError(err)
	}

	created, err := s.staff.FindByID(ctx, staff.ID.String())
	if err != nil {
		return nil, err
	}

	created.Account.PasswordHash = ""
	return created, nil
}

func (s *staffService) GetAll(ctx context.Context) ([]*model.Staff, error) {
	staff, err := s.staff.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, member := range staff {
		member.Account.PasswordHash = ""
	}
	return staff, nil
}

func (s *staffService) Get(ctx context.Context, id string) (*model.Staff, error) {
	staff, err := s.staff.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: staff member not found", apperror.ErrNotFound)
		}
		return nil, err
	}

	staff.Account.PasswordHash = ""
	return staff, nil
}

func (s *staffService) Update(ctx context.Context, id string, input dto.UpdateStaffInput) (*model.Staff, error) {
	staff, err := s.staff.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: staff member not found", apperror.ErrNotFound)
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
		staff.DepartmentID = departmentID
	}

	if input.Position != nil {
		staff.Position = *input.Position
	}
	if input.StaffType != nil {
		staff.StaffType = *input.StaffType
	}
	if input.JoinDate != nil {
		staff.JoinDate = input.JoinDate
	}
	if input.OfficeRoom != nil {
		staff.OfficeRoom = input.OfficeRoom
	}
	if input.EmploymentType != nil {
		staff.EmploymentType = *input.EmploymentType
	}

	var account *model.Account
	if !input.AccountPatch.Empty() {
		if err := ensurePatchedAccountUnique(ctx, s.accounts, &staff.Account, input.AccountPatch); err != nil {
			return nil, err
		}
		account = &staff.Account
		applyAccountPatch(account, input.AccountPatch)
	}

	if err := s.staff.Update(ctx, staff, account); err != nil {
		return nil, translateWriteError(err)
	}

	return s.Get(ctx, id)
}

func (s *staffService) Delete(ctx context.Context, id string) error {
	if err := s.staff.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: staff member not found", apperror.ErrNotFound)
		}
		return err
	}
	return nil
}
