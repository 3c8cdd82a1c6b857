package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/manojsharma511/govindam-food-court-builder-sub001/internal/auth"
	"github.com/manojsharma511/govindam-food-court-builder-sub001/internal/model"
	"github.com/manojsharma511/govindam-food-court-builder-sub001/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DTOs for Request validation
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse returns a User without exposing sensitive data
type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Phone string    `json:"phone"`
	Role  string    `json:"role"`
}

// AuthService handles registration, login and profile lookup. Every
// successful path ends in an issued credential; passwords only ever exist
// here as bcrypt hashes.
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*TokenResponse, error)
	Login(ctx context.Context, req LoginRequest) (*TokenResponse, error)
	Me(ctx context.Context, authCtx *auth.Context) (*UserResponse, error)
}

type authService struct {
	userRepo  repository.UserRepository
	auditRepo repository.AuditRepository
	txManager repository.TransactionManager
}

func NewAuthService(
	userRepo repository.UserRepository,
	auditRepo repository.AuditRepository,
	txManager repository.TransactionManager,
) AuthService {
	return &authService{userRepo: userRepo, auditRepo: auditRepo, txManager: txManager}
}

func mapUser(user *model.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Phone: user.Phone,
		Role:  user.Role,
	}
}

func (s *authService) Register(ctx context.Context, req RegisterRequest) (*TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	count, err := s.userRepo.CountByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if count > 0 {
		return nil, ErrConflict
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		Phone:    strings.TrimSpace(req.Phone),
		Password: hashed,
		Role:     model.RoleUser,
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.userRepo.Create(txCtx, user); err != nil {
			// The count above is only a fast path; the unique index is the
			// authority. A concurrent registration of the same email lands here.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrConflict
			}
			return fmt.Errorf("failed to create user: %w", err)
		}

		details, _ := json.Marshal(map[string]string{"email": email})
		return s.auditRepo.Log(txCtx, &model.IntakeAudit{
			UserID:     &user.ID,
			Action:     model.ActionRegisterUser,
			EntityID:   user.ID.String(),
			EntityName: user.Name,
			Details:    string(details),
		})
	})
	if err != nil {
		return nil, err
	}

	token, err := auth.IssueToken(user.ID.String(), user.Role, user.Permissions)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &TokenResponse{Token: token, User: mapUser(user)}, nil
}

func (s *authService) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		// Same error for unknown email and bad password: no account probing.
		return nil, auth.ErrInvalidCredentials
	}

	if err := auth.CheckPassword(user.Password, req.Password); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	token, err := auth.IssueToken(user.ID.String(), user.Role, user.Permissions)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &TokenResponse{Token: token, User: mapUser(user)}, nil
}

func (s *authService) Me(ctx context.Context, authCtx *auth.Context) (*UserResponse, error) {
	if authCtx == nil {
		return nil, auth.ErrUnauthorized
	}
	user, err := s.userRepo.GetByID(ctx, authCtx.SubjectID)
	if err != nil {
		return nil, ErrNotFound
	}
	res := mapUser(user)
	return &res, nil
}
