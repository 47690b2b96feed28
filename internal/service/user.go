package service

import (
	"context"
	"fmt"

	"github.com/MaxKtzv/TodoAppPetProject/internal/models"
	"github.com/MaxKtzv/TodoAppPetProject/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// UpdateUserRequest carries a profile update. Changing the password is
// mandatory and requires the current one; the remaining profile fields
// are applied in the same write.
type UpdateUserRequest struct {
	Username    string
	OldPassword string
	NewPassword string
	Email       string
	FirstName   string
	LastName    string
	PhoneNumber string
}

// UserService handles profile reads and updates for the current user.
type UserService interface {
	Get(ctx context.Context, userID int64) (*models.User, error)
	Update(ctx context.Context, userID int64, req *UpdateUserRequest) error
}

type userService struct {
	userRepo      repository.UserRepository
	breachChecker BreachChecker
}

// NewUserService creates a new UserService instance.
func NewUserService(userRepo repository.UserRepository, breachChecker BreachChecker) UserService {
	return &userService{
		userRepo:      userRepo,
		breachChecker: breachChecker,
	}
}

func (s *userService) Get(ctx context.Context, userID int64) (*models.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

func (s *userService) Update(ctx context.Context, userID int64, req *UpdateUserRequest) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	// Wrong old password reports the same generic error as a bad login.
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
		return ErrInvalidCredentials
	}

	// Abort before touching the record: if the new password is breached
	// or the check is unavailable, the stored hash stays unchanged.
	compromised, err := s.breachChecker.IsCompromised(ctx, req.NewPassword)
	if err != nil {
		return err
	}
	if compromised {
		return ErrPasswordBreached
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.Username = req.Username
	user.Email = nilIfEmpty(req.Email)
	user.FirstName = nilIfEmpty(req.FirstName)
	user.LastName = nilIfEmpty(req.LastName)
	user.PhoneNumber = nilIfEmpty(req.PhoneNumber)
	user.PasswordHash = string(hash)

	return s.userRepo.Update(ctx, user)
}
