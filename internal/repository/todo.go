package repository

import (
	"context"
	"fmt"

	"github.com/MaxKtzv/TodoAppPetProject/internal/models"
	"gorm.io/gorm"
)

// TodoRepository defines the interface for todo data operations.
type TodoRepository interface {
	FindAllByOwner(ctx context.Context, ownerID int64) ([]models.Todo, error)
	FindByIDAndOwner(ctx context.Context, id, ownerID int64) (*models.Todo, error)
	FindAll(ctx context.Context) ([]models.Todo, error)
	FindByID(ctx context.Context, id int64) (*models.Todo, error)
	Create(ctx context.Context, todo *models.Todo) error
	Update(ctx context.Context, todo *models.Todo) error
	Delete(ctx context.Context, todo *models.Todo) error
}

type todoRepository struct {
	db *gorm.DB
}

// NewTodoRepository creates a new TodoRepository instance.
func NewTodoRepository(db *gorm.DB) TodoRepository {
	return &todoRepository{db: db}
}

func (r *todoRepository) FindAllByOwner(ctx context.Context, ownerID int64) ([]models.Todo, error) {
	var todos []models.Todo
	err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Find(&todos).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find todos for owner %d: %w", ownerID, err)
	}
	return todos, nil
}

func (r *todoRepository) FindByIDAndOwner(ctx context.Context, id, ownerID int64) (*models.Todo, error) {
	var todo models.Todo
	err := r.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).First(&todo).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find todo %d for owner %d: %w", id, ownerID, mapNotFound(err))
	}
	return &todo, nil
}

func (r *todoRepository) FindAll(ctx context.Context) ([]models.Todo, error) {
	var todos []models.Todo
	if err := r.db.WithContext(ctx).Find(&todos).Error; err != nil {
		return nil, fmt.Errorf("failed to find todos: %w", err)
	}
	return todos, nil
}

func (r *todoRepository) FindByID(ctx context.Context, id int64) (*models.Todo, error) {
	var todo models.Todo
	if err := r.db.WithContext(ctx).First(&todo, id).Error; err != nil {
		return nil, fmt.Errorf("failed to find todo by id %d: %w", id, mapNotFound(err))
	}
	return &todo, nil
}

func (r *todoRepository) Create(ctx context.Context, todo *models.Todo) error {
	if err := r.db.WithContext(ctx).Create(todo).Error; err != nil {
		return fmt.Errorf("failed to create todo: %w", err)
	}
	return nil
}

func (r *todoRepository) Update(ctx context.Context, todo *models.Todo) error {
	if err := r.db.WithContext(ctx).Save(todo).Error; err != nil {
		return fmt.Errorf("failed to update todo id %d: %w", todo.ID, err)
	}
	return nil
}

func (r *todoRepository) Delete(ctx context.Context, todo *models.Todo) error {
	if err := r.db.WithContext(ctx).Delete(todo).Error; err != nil {
		return fmt.Errorf("failed to delete todo id %d: %w", todo.ID, err)
	}
	return nil
}
