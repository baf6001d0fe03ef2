package auth

import (
	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

type UseCase interface {
	Register(dto model.RegisterDTO) (*entity.User, error)
	Login(dto model.LoginDTO) (*model.TokenResponse, error)
}
