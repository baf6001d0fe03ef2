package db

import (
	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

// TodoGateway is the persistence boundary of the todo resource. Find methods
// return a nil record when nothing matches; the caller decides whether that
// is an error.
type TodoGateway interface {
	FindAll(query model.TodoListQuery) ([]entity.Todo, error)
	FindByID(id uint) (*entity.Todo, error)
	Search(term string, limit int) ([]entity.Todo, error)

	CountAll() (int64, error)
	CountCompleted() (int64, error)

	Create(todo entity.Todo) (*entity.Todo, error)
	Update(id uint, fields map[string]any) (*entity.Todo, error)

	DeleteByID(id uint) error
	DeleteCompleted() (int64, error)
}
