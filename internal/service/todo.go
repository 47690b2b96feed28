package service

import (
	"context"
	"errors"

	"github.com/MaxKtzv/TodoAppPetProject/internal/models"
	"github.com/MaxKtzv/TodoAppPetProject/internal/repository"
)

// TodoRequest carries the fields of a todo create or update.
type TodoRequest struct {
	Title       string
	Description string
	Priority    int
	Complete    bool
}

// TodoService handles per-owner CRUD operations on todos. Every lookup
// is scoped to the owner; a todo belonging to someone else is
// indistinguishable from a missing one.
type TodoService interface {
	GetAll(ctx context.Context, ownerID int64) ([]models.Todo, error)
	GetByID(ctx context.Context, ownerID, todoID int64) (*models.Todo, error)
	Create(ctx context.Context, ownerID int64, req *TodoRequest) error
	Update(ctx context.Context, ownerID, todoID int64, req *TodoRequest) error
	Delete(ctx context.Context, ownerID, todoID int64) error
}

type todoService struct {
	todoRepo repository.TodoRepository
}

// NewTodoService creates a new TodoService instance.
func NewTodoService(todoRepo repository.TodoRepository) TodoService {
	return &todoService{todoRepo: todoRepo}
}

func (s *todoService) GetAll(ctx context.Context, ownerID int64) ([]models.Todo, error) {
	return s.todoRepo.FindAllByOwner(ctx, ownerID)
}

func (s *todoService) GetByID(ctx context.Context, ownerID, todoID int64) (*models.Todo, error) {
	todo, err := s.todoRepo.FindByIDAndOwner(ctx, todoID, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTodoNotFound
		}
		return nil, err
	}
	return todo, nil
}

func (s *todoService) Create(ctx context.Context, ownerID int64, req *TodoRequest) error {
	todo := &models.Todo{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Complete:    req.Complete,
		OwnerID:     ownerID,
	}
	return s.todoRepo.Create(ctx, todo)
}

func (s *todoService) Update(ctx context.Context, ownerID, todoID int64, req *TodoRequest) error {
	todo, err := s.GetByID(ctx, ownerID, todoID)
	if err != nil {
		return err
	}

	todo.Title = req.Title
	todo.Description = req.Description
	todo.Priority = req.Priority
	todo.Complete = req.Complete

	return s.todoRepo.Update(ctx, todo)
}

func (s *todoService) Delete(ctx context.Context, ownerID, todoID int64) error {
	todo, err := s.GetByID(ctx, ownerID, todoID)
	if err != nil {
		return err
	}
	return s.todoRepo.Delete(ctx, todo)
}
