package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"nexora.lk/campuscore/internal/dto"
	"nexora.lk/campuscore/pkg/apperror"
)

func newTestHODService(store *fakeStore) HODService {
	return NewHODService(&fakeHODRepo{store}, &fakeAccountRepo{store}, &fakeDepartmentRepo{store})
}

func hodInput(deptID, hodID, email, username string) dto.CreateHODInput {
	return dto.CreateHODInput{
		AccountFields: dto.AccountFields{
			Username:  username,
			Email:     email,
			Password:  "secret123",
			FirstName: "Sunil",
			LastName:  "Fernando",
		},
		HODID:         hodID,
		DepartmentID:  deptID,
		Qualification: "PhD",
	}
}

func TestHODCreateSetsDepartmentHead(t *testing.T) {
	store := newFakeStore()
	department := store.addDepartment("Engineering", "ENG")
	svc := newTestHODService(store)

	hod, err := svc.Create(context.Background(), hodInput(department.ID.String(), "HD001", "sunil@nexora.lk", "sunil"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if hod.Account.PasswordHash != "" {
		t.Fatal("password hash leaked")
	}
	if hod.Designation != "Head of Department" {
		t.Fatalf("designation = %q", hod.Designation)
	}

	stored := store.departments[department.ID]
	if stored.HODID == nil || *stored.HODID != hod.ID {
		t.Fatal("department back-reference not set")
	}
}

func TestHODCreateOneHeadPerDepartment(t *testing.T) {
	store := newFakeStore()
	department := store.addDepartment("Engineering", "ENG")
	svc := newTestHODService(store)

	if _, err := svc.Create(context.Background(), hodInput(department.ID.String(), "HD001", "sunil@nexora.lk", "sunil")); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	_, err := svc.Create(context.Background(), hodInput(department.ID.String(), "HD002", "nimal@nexora.lk", "nimal"))
	if !errors.Is(err, apperror.ErrConflict) {
		t.Fatalf("got %v, want ErrConflict", err)
	}
	if !strings.Contains(err.Error(), "already has a head") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestHODCreateUnknownDepartment(t *testing.T) {
	svc := newTestHODService(newFakeStore())

	_, err := svc.Create(context.Background(), hodInput("2f0b53b8-0000-4000-8000-000000000000", "HD001", "sunil@nexora.lk", "sunil"))
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestHODCreateDuplicateEmail(t *testing.T) {
	store := newFakeStore()
	engineering := store.addDepartment("Engineering", "ENG")
	business := store.addDepartment("Business Management", "BM")
	svc := newTestHODService(store)

	if _, err := svc.Create(context.Background(), hodInput(engineering.ID.String(), "HD001", "sunil@nexora.lk", "sunil")); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	_, err := svc.Create(context.Background(), hodInput(business.ID.String(), "HD002", "sunil@nexora.lk", "sunil2"))
	if !errors.Is(err, apperror.ErrConflict) {
		t.Fatalf("got %v, want ErrConflict", err)
	}
}

func TestHODDeleteClearsDepartmentHead(t *testing.T) {
	store := newFakeStore()
	department := store.addDepartment("Engineering", "ENG")
	svc := newTestHODService(store)

	hod, err := svc.Create(context.Background(), hodInput(department.ID.String(), "HD001", "sunil@nexora.lk", "sunil"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Delete(context.Background(), hod.ID.String()); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if store.departments[department.ID].HODID != nil {
		t.Fatal("department back-reference not cleared")
	}
	if len(store.accounts) != 0 {
		t.Fatal("paired account not removed with the profile")
	}

	if err := svc.Delete(context.Background(), hod.ID.String()); !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("second delete: got %v, want ErrNotFound", err)
	}
}
