package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

type fakeUserGateway struct {
	users  map[string]entity.User
	nextID uint
	err    error
}

func newFakeUserGateway() *fakeUserGateway {
	return &fakeUserGateway{users: make(map[string]entity.User)}
}

func (f *fakeUserGateway) FindByUsername(username string) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	user, ok := f.users[username]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (f *fakeUserGateway) Create(user entity.User) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.nextID++
	user.ID = f.nextID
	f.users[user.Username] = user
	return &user, nil
}

const testSecret = "test-secret"

func newUseCase(gateway *fakeUserGateway) UseCase {
	return NewAuthUseCase(gateway, testSecret, time.Hour, bcrypt.MinCost)
}

func TestRegister(t *testing.T) {
	gateway := newFakeUserGateway()
	uc := newUseCase(gateway)

	created, err := uc.Register(model.RegisterDTO{Username: "  alice  ", Password: "secret"})
	if err != nil {
		t.Fatalf("Register: unexpected error %v", err)
	}
	if created.Username != "alice" {
		t.Errorf("username not trimmed: got %q", created.Username)
	}
	if created.ID == 0 {
		t.Errorf("expected assigned id")
	}
	if created.HashedPassword == "secret" || created.HashedPassword == "" {
		t.Errorf("password must be stored hashed")
	}
}

func TestRegisterValidation(t *testing.T) {
	uc := newUseCase(newFakeUserGateway())

	tests := []struct {
		name string
		dto  model.RegisterDTO
	}{
		{"empty username", model.RegisterDTO{Username: "", Password: "secret"}},
		{"whitespace username", model.RegisterDTO{Username: "   ", Password: "secret"}},
		{"empty password", model.RegisterDTO{Username: "alice", Password: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Register(tt.dto)
			var validationErr *model.ValidationError
			if !errors.As(err, &validationErr) {
				t.Errorf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestRegisterDuplicate(t *testing.T) {
	uc := newUseCase(newFakeUserGateway())

	if _, err := uc.Register(model.RegisterDTO{Username: "alice", Password: "secret"}); err != nil {
		t.Fatalf("first Register: unexpected error %v", err)
	}
	if _, err := uc.Register(model.RegisterDTO{Username: "alice", Password: "other"}); !errors.Is(err, model.ErrUserAlreadyExists) {
		t.Errorf("expected ErrUserAlreadyExists, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	uc := newUseCase(newFakeUserGateway())

	if _, err := uc.Register(model.RegisterDTO{Username: "alice", Password: "secret"}); err != nil {
		t.Fatalf("Register: unexpected error %v", err)
	}

	token, err := uc.Login(model.LoginDTO{Username: "alice", Password: "secret"})
	if err != nil {
		t.Fatalf("Login: unexpected error %v", err)
	}
	if token.TokenType != "bearer" {
		t.Errorf("token_type: got %q, want %q", token.TokenType, "bearer")
	}

	parsed, err := jwt.Parse(token.AccessToken, func(t *jwt.Token) (any, error) {
		return []byte(testSecret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("issued token must verify against the signing secret: %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)
	if claims["sub"] != "alice" {
		t.Errorf("sub claim: got %v, want alice", claims["sub"])
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	uc := newUseCase(newFakeUserGateway())

	if _, err := uc.Register(model.RegisterDTO{Username: "alice", Password: "secret"}); err != nil {
		t.Fatalf("Register: unexpected error %v", err)
	}

	tests := []struct {
		name string
		dto  model.LoginDTO
	}{
		{"unknown user", model.LoginDTO{Username: "bob", Password: "secret"}},
		{"wrong password", model.LoginDTO{Username: "alice", Password: "nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := uc.Login(tt.dto); !errors.Is(err, model.ErrInvalidCredentials) {
				t.Errorf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}
