package todo

import (
	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

type UseCase interface {
	FindAll(query model.TodoListQuery) ([]entity.Todo, error)
	FindByID(id uint) (*entity.Todo, error)
	Stats() (*model.TodoStats, error)
	Search(query string, limit int) ([]entity.Todo, error)
	Create(dto model.CreateTodoDTO) (*entity.Todo, error)
	Update(id uint, dto model.UpdateTodoDTO) (*entity.Todo, error)
	DeleteByID(id uint) error
	DeleteCompleted() (int64, error)
}
