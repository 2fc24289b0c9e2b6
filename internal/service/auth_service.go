package service

import (
	"context"
	"fmt"
	"time"

	"restaurant_api/internal/model"
	"restaurant_api/internal/repository"
	"restaurant_api/internal/utils"
)

// AuthService provides registration, login and account management
type AuthService interface {
	Register(ctx context.Context, name, phone, password string) (*model.User, error)
	Login(ctx context.Context, phone, password string) (*model.User, string, error)
	CurrentUser(ctx context.Context, userID int) (*model.User, error)
	ChangePassword(ctx context.Context, userID int, oldPassword, newPassword string) error
	UpdatePhone(ctx context.Context, userID int, newPhone, password string) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	jwtUtil  *utils.JWTUtil
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, jwtUtil *utils.JWTUtil) AuthService {
	return &authService{
		userRepo: userRepo,
		jwtUtil:  jwtUtil,
	}
}

// Register creates a new user account. A duplicate phone number fails before
// anything is written.
func (s *authService) Register(ctx context.Context, name, phone, password string) (*model.User, error) {
	existingUser, err := s.userRepo.FindByPhone(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existingUser != nil {
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Name:         name,
		Phone:        phone,
		PasswordHash: hashedPassword,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user in repository: %w", err)
	}

	return user, nil
}

// Login authenticates a user and returns a JWT token. A missing user and a
// wrong password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, phone, password string) (*model.User, string, error) {
	user, err := s.userRepo.FindByPhone(ctx, phone)
	if err != nil {
		return nil, "", fmt.Errorf("error finding user by phone: %w", err)
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials // User not found
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials // Password mismatch
	}

	token, err := s.jwtUtil.GenerateToken(user.ID, user.Name, user.Phone)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

// CurrentUser loads the authenticated user's record
func (s *authService) CurrentUser(ctx context.Context, userID int) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// ChangePassword verifies the old password and stores a hash of the new one
func (s *authService) ChangePassword(ctx context.Context, userID int, oldPassword, newPassword string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to find user by ID: %w", err)
	}
	if user == nil {
		return ErrUserNotFound
	}

	if !utils.CheckPasswordHash(oldPassword, user.PasswordHash) {
		return ErrWrongPassword
	}

	hashedPassword, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, hashedPassword); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// UpdatePhone verifies the password and moves the account to a new phone
// number, refusing numbers already held by another user.
func (s *authService) UpdatePhone(ctx context.Context, userID int, newPhone, password string) (*model.User, error) {
	existing, err := s.userRepo.FindByPhone(ctx, newPhone)
	if err != nil {
		return nil, fmt.Errorf("failed to check phone in use: %w", err)
	}
	if existing != nil && existing.ID != userID {
		return nil, ErrPhoneInUse
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, ErrWrongPassword
	}

	if err := s.userRepo.UpdatePhone(ctx, userID, newPhone); err != nil {
		return nil, fmt.Errorf("failed to update phone: %w", err)
	}
	user.Phone = newPhone
	return user, nil
}
