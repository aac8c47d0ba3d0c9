package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"nexora.lk/campuscore/internal/config"
	"nexora.lk/campuscore/internal/dto"
	"nexora.lk/campuscore/internal/model"
	"nexora.lk/campuscore/internal/repository"
	"nexora.lk/campuscore/pkg/apperror"
)

// Claims carries the account id (subject) plus the session id issued at
// login. A token whose sid no longer matches the account's stored session
// is rejected on its next authenticated call.
type Claims struct {
	SessionID string `json:"sid,omitempty"`
	jwt.RegisteredClaims
}

type AuthService interface {
	Login(ctx context.Context, input dto.LoginInput, originIP string) (*dto.AuthResponse, error)
	Authenticate(ctx context.Context, tokenString string) (*model.Account, error)
	Authorize(account *model.Account, allowed ...model.Role) error
}

type authService struct {
	accounts   repository.AccountRepository
	rdb        *redis.Client
	secret     string
	tokenTTL   time.Duration
	loginLimit time.Duration
}

func NewAuthService(accounts repository.AccountRepository, rdb *redis.Client, cfg *config.Config) AuthService {
	return &authService{
		accounts:   accounts,
		rdb:        rdb,
		secret:     cfg.JWTSecret,
		tokenTTL:   cfg.JWTTTL,
		loginLimit: cfg.LoginRateLimit,
	}
}

func (s *authService) Login(ctx context.Context, input dto.LoginInput, originIP string) (*dto.AuthResponse, error) {
	allowed, err := CheckAndSetRateLimit(ctx, s.rdb, input.Email, "login", s.loginLimit)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apperror.ErrRateLimitExceeded
	}

	// Unknown email, wrong password and inactive account all answer with
	// the same error so callers cannot enumerate accounts.
	account, err := s.accounts.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(input.Password)); err != nil {
		return nil, apperror.ErrInvalidCredentials
	}

	if !account.IsActive {
		return nil, apperror.ErrInvalidCredentials
	}

	sessionID, err := newSessionID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session id: %w", err)
	}

	hadActiveSession := account.CurrentSessionID != nil

	now := time.Now()
	account.CurrentSessionID = &sessionID
	account.LastLoginAt = &now
	if originIP != "" {
		account.LastLoginIP = &originIP
	}

	if err := s.accounts.Save(ctx, account); err != nil {
		return nil, err
	}

	token, err := s.signToken(account, sessionID)
	if err != nil {
		return nil, err
	}

	account.PasswordHash = ""

	return &dto.AuthResponse{
		AccessToken:       token,
		TokenType:         "Bearer",
		ExpiresIn:         int64(s.tokenTTL.Seconds()),
		SessionTerminated: hadActiveSession && account.Role.Elevated(),
		Account:           account,
	}, nil
}

func (s *authService) Authenticate(ctx context.Context, tokenString string) (*model.Account, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return nil, apperror.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, apperror.ErrInvalidToken
	}

	account, err := s.accounts.FindByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrUnauthorized
		}
		return nil, err
	}

	if !account.IsActive {
		return nil, apperror.ErrUnauthorized
	}

	// Lazy single-session enforcement: a token minted before the latest
	// login carries a stale sid and dies here.
	if claims.SessionID != "" && account.CurrentSessionID != nil &&
		claims.SessionID != *account.CurrentSessionID {
		return nil, apperror.ErrSessionSuperseded
	}

	return account, nil
}

func (s *authService) Authorize(account *model.Account, allowed ...model.Role) error {
	if account == nil {
		return apperror.ErrUnauthorized
	}
	if !account.Role.Satisfies(allowed...) {
		return fmt.Errorf("%w: role '%s' is not authorized for this action", apperror.ErrForbidden, account.Role)
	}
	return nil
}

func (s *authService) signToken(account *model.Account, sessionID string) (string, error) {
	now := time.Now()
	claims := Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.secret))
}

func newSessionID() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
