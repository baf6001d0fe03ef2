package db

import "todo-api/internal/domain/entity"

// UserGateway is the persistence boundary of the user resource.
type UserGateway interface {
	FindByUsername(username string) (*entity.User, error)
	Create(user entity.User) (*entity.User, error)
}
