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

type HODService interface {
	Create(ctx context.Context, input dto.CreateHODInput) (*model.HOD, error)
	GetAll(ctx context.Context) ([]*model.HOD, error)
	Get(ctx context.Context, id string) (*model.HOD, error)
	Update(ctx context.Context, id string, input dto.UpdateHODInput) (*model.HOD, error)
	Delete(ctx context.Context, id string) error
}

type hodService struct {
	hods        repository.HODRepository
	accounts    repository.AccountRepository
	departments repository.DepartmentRepository
}

func NewHODService(
	hods repository.HODRepository,
	accounts repository.AccountRepository,
	departments repository.DepartmentRepository,
) HODService {
	return &hodService{
		hods:        hods,
		accounts:    accounts,
		departments: departments,
	}
}

func (s *hodService) Create(ctx context.Context, input dto.CreateHODInput) (*model.HOD, error) {
	department, err := s.departments.FindByID(ctx, input.DepartmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: department not found", apperror.ErrNotFound)
		}
		return nil, err
	}

	// One head per department. Checked up front for a useful message;
	// the unique index on department_id backstops concurrent creates.
	if _, err := s.hods.FindByDepartmentID(ctx, input.DepartmentID); err == nil {
		return nil, fmt.Errorf("%w: department %s already has a head", apperror.ErrConflict, department.Name)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := ensureAccountUnique(ctx, s.accounts, input.Email, input.Username); err != nil {
		return nil, err
	}

	if _, err := s.hods.FindByHODID(ctx, input.HODID); err == nil {
		return nil, fmt.Errorf("%w: hod id %s is already in use", apperror.ErrConflict, input.HODID)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	account, err := buildAccount(input.AccountFields, model.RoleHOD)
	if err != nil {
		return nil, err
	}

	hod := &model.HOD{
		HODID:           input.HODID,
		DepartmentID:    department.ID,
		Designation:     "Head of Department",
		Qualification:   input.Qualification,
		Specialization:  input.Specialization,
		AppointmentDate: input.AppointmentDate,
		OfficeRoom:      input.OfficeRoom,
	}

	if err := s.hods.Create(ctx, account, hod); err != nil {
		return nil, translateWriteError(err)
	}

	created, err := s.hods.FindByID(ctx, hod.ID.String())
	if err != nil {
		return nil, err
	}

	created.Account.PasswordHash = ""
	return created, nil
}

func (s *hodService) GetAll(ctx context.Context) ([]*model.HOD, error) {
	hods, err := s.hods.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, hod := range hods {
		hod.Account.PasswordHash = ""
	}
	return hods, nil
}

func (s *hodService) Get(ctx context.Context, id string) (*model.HOD, error) {
	hod, err := s.hods.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: head of department not found", apperror.ErrNotFound)
		}
		return nil, err
	}

	hod.Account.PasswordHash = ""
	return hod, nil
}

func (s *hodService) Update(ctx context.Context, id string, input dto.UpdateHODInput) (*model.HOD, error) {
	hod, err := s.hods.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: head of department not found", apperror.ErrNotFound)
		}
		return nil, err
	}

	if input.Qualification != nil {
		hod.Qualification = *input.Qualification
	}
	if input.Specialization != nil {
		hod.Specialization = *input.Specialization
	}
	if input.AppointmentDate != nil {
		hod.AppointmentDate = input.AppointmentDate
	}
	if input.OfficeRoom != nil {
		hod.OfficeRoom = input.OfficeRoom
	}

	var account *model.Account
	if !input.AccountPatch.Empty() {
		if err := ensurePatchedAccountUnique(ctx, s.accounts, &hod.Account, input.AccountPatch); err != nil {
			return nil, err
		}
		account = &hod.Account
		applyAccountPatch(account, input.AccountPatch)
	}

	if err := s.hods.Update(ctx, hod, account); err != nil {
		return nil, translateWriteError(err)
	}

	return s.Get(ctx, id)
}

func (s *hodService) Delete(ctx context.Context, id string) error {
	if err := s.hods.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: head of department not found", apperror.ErrNotFound)
		}
		return err
	}
	return nil
}
