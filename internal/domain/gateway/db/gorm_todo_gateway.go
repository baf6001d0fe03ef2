package db

import (
	"errors"

	"gorm.io/gorm"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

type GormTodoGateway struct {
	DB *gorm.DB
}

var _ TodoGateway = (*GormTodoGateway)(nil)

func NewGormTodoGateway(db *gorm.DB) *GormTodoGateway {
	return &GormTodoGateway{DB: db}
}

func (gateway *GormTodoGateway) FindAll(query model.TodoListQuery) ([]entity.Todo, error) {
	tx := gateway.DB.Model(&entity.Todo{})

	if query.Completed != nil {
		tx = tx.Where("completed = ?", *query.Completed)
	}

	if query.Sort == "title" {
		tx = tx.Order("title ASC")
	} else {
		tx = tx.Order("created_at DESC")
	}

	todos := make([]entity.Todo, 0)
	if err := tx.Offset(query.Skip).Limit(query.Limit).Find(&todos).Error; err != nil {
		return nil, err
	}
	return todos, nil
}

func (gateway *GormTodoGateway) FindByID(id uint) (*entity.Todo, error) {
	var todo entity.Todo
	err := gateway.DB.First(&todo, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &todo, nil
}

// Search matches the normalized term as a case-insensitive substring of the
// title or the description.
func (gateway *GormTodoGateway) Search(term string, limit int) ([]entity.Todo, error) {
	pattern := "%" + term + "%"

	todos := make([]entity.Todo, 0)
	err := gateway.DB.
		Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern).
		Limit(limit).
		Find(&todos).Error
	if err != nil {
		return nil, err
	}
	return todos, nil
}

func (gateway *GormTodoGateway) CountAll() (int64, error) {
	var count int64
	err := gateway.DB.Model(&entity.Todo{}).Count(&count).Error
	return count, err
}

func (gateway *GormTodoGateway) CountCompleted() (int64, error) {
	var count int64
	err := gateway.DB.Model(&entity.Todo{}).Where("completed = ?", true).Count(&count).Error
	return count, err
}

func (gateway *GormTodoGateway) Create(todo entity.Todo) (*entity.Todo, error) {
	if err := gateway.DB.Create(&todo).Error; err != nil {
		return nil, err
	}
	return &todo, nil
}

// Update applies the given column values to one todo and reloads it.
// It returns a nil record when the id does not exist.
func (gateway *GormTodoGateway) Update(id uint, fields map[string]any) (*entity.Todo, error) {
	tx := gateway.DB.Model(&entity.Todo{}).Where("id = ?", id).Updates(fields)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, nil
	}
	return gateway.FindByID(id)
}

func (gateway *GormTodoGateway) DeleteByID(id uint) error {
	tx := gateway.DB.Delete(&entity.Todo{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return model.ErrTodoNotFound
	}
	return nil
}

// DeleteCompleted removes every completed todo in a single statement and
// returns how many rows went away.
func (gateway *GormTodoGateway) DeleteCompleted() (int64, error) {
	tx := gateway.DB.Where("completed = ?", true).Delete(&entity.Todo{})
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}
