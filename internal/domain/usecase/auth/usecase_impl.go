package auth

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/model"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
)

type authUseCase struct {
	users      db.UserGateway
	jwtSecret  string
	tokenTTL   time.Duration
	bcryptCost int
}

func NewAuthUseCase(users db.UserGateway, jwtSecret string, tokenTTL time.Duration, bcryptCost int) UseCase {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &authUseCase{
		users:      users,
		jwtSecret:  jwtSecret,
		tokenTTL:   tokenTTL,
		bcryptCost: bcryptCost,
	}
}

func (uc *authUseCase) Register(dto model.RegisterDTO) (*entity.User, error) {
	username := strings.TrimSpace(dto.Username)
	if username == "" || dto.Password == "" {
		return nil, model.NewValidationError(msg.GetMessage("auth.error.missing-credentials"))
	}

	existing, err := uc.users.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, model.ErrUserAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(dto.Password), uc.bcryptCost)
	if err != nil {
		return nil, err
	}

	created, err := uc.users.Create(entity.User{
		Username:       username,
		HashedPassword: string(hashed),
	})
	if err != nil {
		return nil, err
	}

	log.Infow(msg.GetMessage("auth.registered", created.Username), "user_id", created.ID)
	return created, nil
}

func (uc *authUseCase) Login(dto model.LoginDTO) (*model.TokenResponse, error) {
	username := strings.TrimSpace(dto.Username)

	user, err := uc.users.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, model.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(dto.Password)) != nil {
		return nil, model.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":     user.Username,
		"user_id": user.ID,
		"exp":     now.Add(uc.tokenTTL).Unix(),
		"iat":     now.Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(uc.jwtSecret))
	if err != nil {
		return nil, err
	}

	return &model.TokenResponse{
		AccessToken: signed,
		TokenType:   "bearer",
	}, nil
}
