package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MaxKtzv/TodoAppPetProject/internal/models"
	"github.com/MaxKtzv/TodoAppPetProject/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// TokenResponse is the payload returned on a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// RegisterRequest carries the fields of a registration. Optional fields
// arrive as empty strings and are stored as NULL.
type RegisterRequest struct {
	Username    string
	Password    string
	Email       string
	FirstName   string
	LastName    string
	PhoneNumber string
	Admin       bool
}

// AuthService handles registration and credential-based login.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*TokenResponse, error)
	Register(ctx context.Context, req *RegisterRequest) (*models.User, error)
}

type authService struct {
	userRepo      repository.UserRepository
	jwtService    JWTService
	breachChecker BreachChecker
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(userRepo repository.UserRepository, jwtService JWTService, breachChecker BreachChecker) AuthService {
	return &authService{
		userRepo:      userRepo,
		jwtService:    jwtService,
		breachChecker: breachChecker,
	}
}

// authenticate looks up the user and verifies the password. It returns
// a nil user for an unknown username and for a wrong password alike, so
// the caller cannot distinguish the two. Store failures other than a
// missing record are propagated as errors, not folded into the nil
// sentinel.
func (s *authService) authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil
	}
	return user, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (*TokenResponse, error) {
	user, err := s.authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtService.Generate(user.Username, user.ID, user.Admin)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}

func (s *authService) Register(ctx context.Context, req *RegisterRequest) (*models.User, error) {
	// Username collision is reported before email collision when both
	// are taken.
	if _, err := s.userRepo.FindByUsername(ctx, req.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("checking username uniqueness: %w", err)
	}

	if req.Email != "" {
		if _, err := s.userRepo.FindByEmail(ctx, req.Email); err == nil {
			return nil, ErrEmailTaken
		} else if !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("checking email uniqueness: %w", err)
		}
	}

	// The breach check runs before any hashing or persistence; a flagged
	// or uncheckable password aborts the registration entirely.
	compromised, err := s.breachChecker.IsCompromised(ctx, req.Password)
	if err != nil {
		return nil, err
	}
	if compromised {
		return nil, ErrPasswordBreached
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		Email:        nilIfEmpty(req.Email),
		FirstName:    nilIfEmpty(req.FirstName),
		LastName:     nilIfEmpty(req.LastName),
		PhoneNumber:  nilIfEmpty(req.PhoneNumber),
		Admin:        req.Admin,
		IsActive:     true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
