package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"todo-api/internal/domain/model"
	"todo-api/internal/domain/usecase/auth"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
)

type AuthController struct {
	api     *echo.Group
	useCase auth.UseCase
}

func NewAuthController(api *echo.Group, useCase auth.UseCase) *AuthController {
	return &AuthController{api: api, useCase: useCase}
}

// InitAuthRoutes initializes auth routes
func (controller *AuthController) InitAuthRoutes() {
	controller.api.POST("/auth/register", controller.Register)
	controller.api.POST("/auth/login", controller.Login)
}

// Register godoc
// @Summary Register a user
// @Description Create an account from username and password
// @Tags auth
// @Accept json
// @Produce json
// @Param user body model.RegisterDTO true "Registration data"
// @Success 201 {object} entity.User "Created user"
// @Failure 400 {object} map[string]string "Invalid data or username taken"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/register [post]
func (controller *AuthController) Register(c echo.Context) error {
	var dto model.RegisterDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("app.error.invalid-body")})
	}

	user, err := controller.useCase.Register(dto)
	if err != nil {
		return controller.handleError(c, err)
	}
	return c.JSON(http.StatusCreated, user)
}

// Login godoc
// @Summary Log in
// @Description Verify credentials and issue a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body model.LoginDTO true "Login credentials"
// @Success 200 {object} model.TokenResponse "Bearer token"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/login [post]
func (controller *AuthController) Login(c echo.Context) error {
	var dto model.LoginDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("app.error.invalid-body")})
	}

	token, err := controller.useCase.Login(dto)
	if err != nil {
		return controller.handleError(c, err)
	}
	return c.JSON(http.StatusOK, token)
}

func (controller *AuthController) handleError(c echo.Context, err error) error {
	var validationErr *model.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": validationErr.Message})
	case errors.Is(err, model.ErrUserAlreadyExists):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("auth.error.username-taken")})
	case errors.Is(err, model.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": msg.GetMessage("auth.error.invalid-credentials")})
	default:
		log.Errorw(msg.GetMessage("auth.error.persistence"), "error", err, "path", c.Path())
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": msg.GetMessage("app.error.internal")})
	}
}
