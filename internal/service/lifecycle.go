package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"nexora.lk/campuscore/internal/dto"
	"nexora.lk/campuscore/internal/model"
	"nexora.lk/campuscore/internal/repository"
	"nexora.lk/campuscore/pkg/apperror"
)

// Shared pieces of the account+profile lifecycle. Every profile variant
// creates its account through buildAccount so the role always matches the
// variant, and runs the same uniqueness prechecks; the storage-level
// unique indexes remain the final arbiter under concurrency.

func ensureAccountUnique(ctx context.Context, accounts repository.AccountRepository, email, username string) error {
	if _, err := accounts.FindByEmail(ctx, email); err == nil {
		return fmt.Errorf("%w: email %s is already registered", apperror.ErrConflict, email)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if _, err := accounts.FindByUsername(ctx, username); err == nil {
		return fmt.Errorf("%w: username %s is already taken", apperror.ErrConflict, username)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return nil
}

func buildAccount(fields dto.AccountFields, role model.Role) (*model.Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(fields.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	return &model.Account{
		Username:     fields.Username,
		Email:        fields.Email,
		PasswordHash: string(hash),
		Role:         role,
		FirstName:    fields.FirstName,
		LastName:     fields.LastName,
		NIC:          fields.NIC,
		Phone:        fields.Phone,
		Address:      fields.Address,
		IsActive:     true,
	}, nil
}

// applyAccountPatch copies set fields onto the account and reports
// whether anything changed.
func applyAccountPatch(account *model.Account, patch dto.AccountPatch) bool {
	changed := false
	if patch.Username != nil {
		account.Username = *patch.Username
		changed = true
	}
	if patch.Email != nil {
		account.Email = *patch.Email
		changed = true
	}
	if patch.FirstName != nil {
		account.FirstName = *patch.FirstName
		changed = true
	}
	if patch.LastName != nil {
		account.LastName = *patch.LastName
		changed = true
	}
	if patch.NIC != nil {
		account.NIC = patch.NIC
		changed = true
	}
	if patch.Phone != nil {
		account.Phone = patch.Phone
		changed = true
	}
	if patch.Address != nil {
		account.Address = patch.Address
		changed = true
	}
	if patch.IsActive != nil {
		account.IsActive = *patch.IsActive
		changed = true
	}
	return changed
}

// ensurePatchedAccountUnique re-checks email/username uniqueness when a
// patch changes them, excluding the account being updated.
func ensurePatchedAccountUnique(ctx context.Context, accounts repository.AccountRepository, account *model.Account, patch dto.AccountPatch) error {
	if patch.Email != nil && *patch.Email != account.Email {
		if other, err := accounts.FindByEmail(ctx, *patch.Email); err == nil && other.ID != account.ID {
			return fmt.Errorf("%w: email %s is already registered", apperror.ErrConflict, *patch.Email)
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
	}

	if patch.Username != nil && *patch.Username != account.Username {
		if other, err := accounts.FindByUsername(ctx, *patch.Username); err == nil && other.ID != account.ID {
			return fmt.Errorf("%w: username %s is already taken", apperror.ErrConflict, *patch.Username)
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
	}

	return nil
}

func parseUUIDPtr(s *string) (*uuid.UUID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s is not a valid id", apperror.ErrInvalidInput, *s)
	}
	return &id, nil
}

// translateWriteError maps constraint violations the transaction hit to
// the conflict taxonomy; everything else passes through.
func translateWriteError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: a record with the same unique value already exists", apperror.ErrConflict)
	}
	return err
}
