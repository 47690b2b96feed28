package service

import (
	"context"
	"errors"

	"github.com/MaxKtzv/TodoAppPetProject/internal/models"
	"github.com/MaxKtzv/TodoAppPetProject/internal/repository"
)

// AdminService exposes cross-user todo operations to administrators.
// The admin flag is read from the caller's token claims, so a revoked
// admin keeps access until that token expires.
type AdminService interface {
	GetAllTodos(ctx context.Context, claims *Claims) ([]models.Todo, error)
	Delete(ctx context.Context, claims *Claims, todoID int64) error
}

type adminService struct {
	todoRepo repository.TodoRepository
}

// NewAdminService creates a new AdminService instance.
func NewAdminService(todoRepo repository.TodoRepository) AdminService {
	return &adminService{todoRepo: todoRepo}
}

func (s *adminService) GetAllTodos(ctx context.Context, claims *Claims) ([]models.Todo, error) {
	if claims == nil || !claims.Admin {
		return nil, ErrInvalidCredentials
	}
	return s.todoRepo.FindAll(ctx)
}

func (s *adminService) Delete(ctx context.Context, claims *Claims, todoID int64) error {
	if claims == nil || !claims.Admin {
		return ErrInvalidCredentials
	}

	todo, err := s.todoRepo.FindByID(ctx, todoID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTodoNotFound
		}
		return err
	}
	return s.todoRepo.Delete(ctx, todo)
}
