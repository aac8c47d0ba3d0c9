package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"nexora.lk/campuscore/internal/config"
	"nexora.lk/campuscore/internal/dto"
	"nexora.lk/campuscore/internal/model"
	"nexora.lk/campuscore/pkg/apperror"
)

func newTestAuthService(t *testing.T, store *fakeStore) AuthService {
	t.Helper()
	cfg := &config.Config{
		JWTSecret:      "test-secret",
		JWTTTL:         time.Hour,
		LoginRateLimit: time.Second,
	}
	return NewAuthService(&fakeAccountRepo{store}, nil, cfg)
}

func seedAccount(t *testing.T, store *fakeStore, email, password string, role model.Role, active bool) *model.Account {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	account := &model.Account{
		ID:           uuid.New(),
		Username:     email[:1] + "user",
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		FirstName:    "Test",
		LastName:     "User",
		IsActive:     active,
	}
	store.accounts[account.ID] = account
	return account
}

func TestLoginThenAuthenticate(t *testing.T) {
	store := newFakeStore()
	svc := newTestAuthService(t, store)
	seeded := seedAccount(t, store, "amal@nexora.lk", "secret123", model.RoleStudent, true)

	resp, err := svc.Login(context.Background(), dto.LoginInput{
		Email:    "amal@nexora.lk",
		Password: "secret123",
	}, "10.0.0.1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if resp.AccessToken == "" {
		t.Fatal("expected an access token")
	}
	if resp.Account.PasswordHash != "" {
		t.Fatal("password hash leaked in login response")
	}
	if resp.SessionTerminated {
		t.Fatal("first login must not report a terminated session")
	}

	account, err := svc.Authenticate(context.Background(), resp.AccessToken)
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if account.ID != seeded.ID {
		t.Fatalf("authenticated wrong account: %s", account.ID)
	}
	if account.LastLoginAt == nil {
		t.Fatal("last login time not recorded")
	}
}

func TestLoginInvalidCredentialsAreIndistinguishable(t *testing.T) {
	store := newFakeStore()
	svc := newTestAuthService(t, store)
	seedAccount(t, store, "amal@nexora.lk", "secret123", model.RoleStudent, true)
	seedAccount(t, store, "sleepy@nexora.lk", "secret123", model.RoleStudent, false)

	cases := []struct {
		name  string
		email string
		pass  string
	}{
		{"unknown email", "ghost@nexora.lk", "secret123"},
		{"wrong password", "amal@nexora.lk", "wrong"},
		{"inactive account", "sleepy@nexora.lk", "secret123"},
	}

	for _, tc := range cases {
		_, err := svc.Login(context.Background(), dto.LoginInput{Email: tc.email, Password: tc.pass}, "")
		if !errors.Is(err, apperror.ErrInvalidCredentials) {
			t.Fatalf("%s: got %v, want ErrInvalidCredentials", tc.name, err)
		}
	}
}

func TestSecondLoginSupersedesFirstSession(t *testing.T) {
	store := newFakeStore()
	svc := newTestAuthService(t, store)
	seedAccount(t, store, "admin@nexora.lk", "secret123", model.RoleAdmin, true)

	first, err := svc.Login(context.Background(), dto.LoginInput{Email: "admin@nexora.lk", Password: "secret123"}, "")
	if err != nil {
		t.Fatalf("first login: %v", err)
	}

	second, err := svc.Login(context.Background(), dto.LoginInput{Email: "admin@nexora.lk", Password: "secret123"}, "")
	if err != nil {
		t.Fatalf("second login: %v", err)
	}
	if !second.SessionTerminated {
		t.Fatal("elevated re-login must flag the superseded session")
	}

	if _, err := svc.Authenticate(context.Background(), first.AccessToken); !errors.Is(err, apperror.ErrSessionSuperseded) {
		t.Fatalf("stale token: got %v, want ErrSessionSuperseded", err)
	}
	if _, err := svc.Authenticate(context.Background(), second.AccessToken); err != nil {
		t.Fatalf("fresh token rejected: %v", err)
	}
}

func TestStudentReloginDoesNotFlagTermination(t *testing.T) {
	store := newFakeStore()
	svc := newTestAuthService(t, store)
	seedAccount(t, store, "amal@nexora.lk", "secret123", model.RoleStudent, true)

	if _, err := svc.Login(context.Background(), dto.LoginInput{Email: "amal@nexora.lk", Password: "secret123"}, ""); err != nil {
		t.Fatalf("first login: %v", err)
	}
	second, err := svc.Login(context.Background(), dto.LoginInput{Email: "amal@nexora.lk", Password: "secret123"}, "")
	if err != nil {
		t.Fatalf("second login: %v", err)
	}
	if second.SessionTerminated {
		t.Fatal("session termination flag is for elevated roles only")
	}
}

func TestAuthenticateGarbageToken(t *testing.T) {
	store := newFakeStore()
	svc := newTestAuthService(t, store)

	if _, err := svc.Authenticate(context.Background(), "not-a-jwt"); !errors.Is(err, apperror.ErrInvalidToken) {
		t.Fatalf("got %v, want ErrInvalidToken", err)
	}
}

func TestAuthenticateDeactivatedAccount(t *testing.T) {
	store := newFakeStore()
	svc := newTestAuthService(t, store)
	account := seedAccount(t, store, "amal@nexora.lk", "secret123", model.RoleStudent, true)

	resp, err := svc.Login(context.Background(), dto.LoginInput{Email: "amal@nexora.lk", Password: "secret123"}, "")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	store.accounts[account.ID].IsActive = false

	if _, err := svc.Authenticate(context.Background(), resp.AccessToken); !errors.Is(err, apperror.ErrUnauthorized) {
		t.Fatalf("got %v, want ErrUnauthorized", err)
	}
}

func TestAuthorizeRoleExpansion(t *testing.T) {
	store := newFakeStore()
	svc := newTestAuthService(t, store)

	admin := &model.Account{Role: model.RoleAdmin}
	director := &model.Account{Role: model.RoleDirector}
	student := &model.Account{Role: model.RoleStudent}

	if err := svc.Authorize(admin, model.RoleAdmin); err != nil {
		t.Fatalf("admin rejected from admin gate: %v", err)
	}
	// An admin gate admits the director without naming the role.
	if err := svc.Authorize(director, model.RoleAdmin); err != nil {
		t.Fatalf("director rejected from admin gate: %v", err)
	}
	if err := svc.Authorize(student, model.RoleAdmin); !errors.Is(err, apperror.ErrForbidden) {
		t.Fatalf("student: got %v, want ErrForbidden", err)
	}
	if err := svc.Authorize(nil, model.RoleAdmin); !errors.Is(err, apperror.ErrUnauthorized) {
		t.Fatalf("nil account: got %v, want ErrUnauthorized", err)
	}
}
