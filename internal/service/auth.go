package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"connectvault/internal/apperr"
	"connectvault/internal/model"
	"connectvault/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrInvalidCredentials is deliberately the same for an unknown username
// and a wrong password.
var ErrInvalidCredentials = errors.New("invalid username or password")

type RegisterInput struct {
	FullName string
	Username string
	Email    string
	Password string
	Role     string
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) error
	// Login returns a signed bearer token on success.
	Login(ctx context.Context, username, password string) (string, error)
	// ForgotPassword returns a single-use reset token, or "" when no
	// account matches (the handler answers neutrally either way).
	ForgotPassword(ctx context.Context, identifier string) (string, error)
	ResetPassword(ctx context.Context, token, newPassword, confirmPassword string) error
	CurrentUser(ctx context.Context, userID string) (*model.User, error)
}

type authServiceImpl struct {
	userRepo  repository.UserRepository
	resetRepo repository.PasswordResetRepository
	jwtSecret []byte
	tokenTTL  time.Duration
	resetTTL  time.Duration
}

func NewAuthService(
	userRepo repository.UserRepository,
	resetRepo repository.PasswordResetRepository,
	jwtSecret string,
	tokenTTL time.Duration,
	resetTTL time.Duration,
) AuthService {
	return &authServiceImpl{
		userRepo:  userRepo,
		resetRepo: resetRepo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
		resetTTL:  resetTTL,
	}
}

func (s *authServiceImpl) Register(ctx context.Context, in RegisterInput) error {
	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(in.Email)
	if username == "" {
		return apperr.Validation("username", "must not be empty")
	}
	if email == "" {
		return apperr.Validation("email", "must not be empty")
	}
	if in.Password == "" {
		return apperr.Validation("password", "must not be empty")
	}

	exists, err := s.userRepo.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return apperr.Store("check existing user", err)
	}
	if exists {
		return apperr.Conflict("username or email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	role := strings.ToLower(strings.TrimSpace(in.Role))
	if role == "" {
		role = "user"
	}

	user := &model.User{
		ID:           uuid.NewString(),
		FullName:     strings.TrimSpace(in.FullName),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.userRepo.Insert(ctx, user); err != nil {
		return apperr.Store("insert user", err)
	}

	return nil
}

func (s *authServiceImpl) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.userRepo.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", apperr.Store("find user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   user.ID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *authServiceImpl) ForgotPassword(ctx context.Context, identifier string) (string, error) {
	user, err := s.userRepo.FindByUsernameOrEmail(ctx, strings.TrimSpace(identifier))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// don't reveal whether the account exists
			return "", nil
		}
		return "", apperr.Store("find user", err)
	}

	token, err := newResetToken()
	if err != nil {
		return "", err
	}

	reset := &model.PasswordReset{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: time.Now().UTC().Add(s.resetTTL),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.resetRepo.Insert(ctx, reset); err != nil {
		return "", apperr.Store("insert password reset", err)
	}

	return token, nil
}

func (s *authServiceImpl) ResetPassword(ctx context.Context, token, newPassword, confirmPassword string) error {
	if newPassword == "" {
		return apperr.Validation("new_password", "must not be empty")
	}
	if newPassword != confirmPassword {
		return apperr.Validation("confirm_password", "passwords do not match")
	}

	reset, err := s.resetRepo.FindValid(ctx, token, time.Now().UTC())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.Validation("token", "is invalid or expired")
		}
		return apperr.Store("find password reset", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.userRepo.UpdatePasswordHash(ctx, reset.UserID, string(hash)); err != nil {
		return storeErr("update password", "user", err)
	}
	if err := s.resetRepo.MarkUsed(ctx, reset.ID); err != nil {
		return apperr.Store("mark reset used", err)
	}

	return nil
}

func (s *authServiceImpl) CurrentUser(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, storeErr("find user", "user", err)
	}

	return user, nil
}

func newResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
