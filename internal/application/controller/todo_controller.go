package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"todo-api/internal/domain/model"
	"todo-api/internal/domain/usecase/todo"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
	"todo-api/pkg/util/numberutils"
)

type TodoController struct {
	api     *echo.Group
	useCase todo.UseCase
}

func NewTodoController(api *echo.Group, useCase todo.UseCase) *TodoController {
	return &TodoController{api: api, useCase: useCase}
}

// InitTodoRoutes initializes todo routes
func (controller *TodoController) InitTodoRoutes() {
	controller.api.GET("/todos", controller.FindAll)
	controller.api.GET("/todos/stats", controller.Stats)
	controller.api.GET("/todos/search/:query", controller.Search)
	controller.api.GET("/todos/:id", controller.FindByID)
	controller.api.POST("/todos", controller.Create)
	controller.api.PUT("/todos/:id", controller.Update)
	controller.api.DELETE("/todos/completed", controller.DeleteCompleted)
	controller.api.DELETE("/todos/:id", controller.DeleteByID)
}

// FindAll godoc
// @Summary List todos
// @Description Retrieve todos with pagination, completion filtering and sorting
// @Tags todos
// @Accept json
// @Produce json
// @Param skip query int false "Number of todos to skip" default(0)
// @Param limit query int false "Maximum todos to return (1-100)" default(10)
// @Param completed query bool false "Filter by completion status"
// @Param sort query string false "Sort by 'date' (default) or 'title'"
// @Success 200 {array} entity.Todo "List of todos"
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /todos [get]
func (controller *TodoController) FindAll(c echo.Context) error {
	query := model.TodoListQuery{
		Skip:  numberutils.ToIntWithDefault(c.QueryParam("skip"), 0),
		Limit: numberutils.ToIntWithDefault(c.QueryParam("limit"), 10),
		Sort:  c.QueryParam("sort"),
	}

	if param := c.QueryParam("completed"); param != "" {
		completed, err := numberutils.ToBoolWithError(param)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("todo.error.invalid-completed")})
		}
		query.Completed = &completed
	}

	todos, err := controller.useCase.FindAll(query)
	if err != nil {
		return controller.handleError(c, err)
	}
	return c.JSON(http.StatusOK, todos)
}

// Stats godoc
// @Summary Todo statistics
// @Description Retrieve total, completed, pending counts and the completion rate
// @Tags todos
// @Produce json
// @Success 200 {object} model.TodoStats "Todo statistics"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /todos/stats [get]
func (controller *TodoController) Stats(c echo.Context) error {
	stats, err := controller.useCase.Stats()
	if err != nil {
		return controller.handleError(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}

// Search godoc
// @Summary Search todos
// @Description Case-insensitive substring search over title and description
// @Tags todos
// @Produce json
// @Param query path string true "Search term"
// @Param limit query int false "Maximum todos to return (1-100)" default(10)
// @Success 200 {array} entity.Todo "Matching todos"
// @Failure 400 {object} map[string]string "Empty search query"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /todos/search/{query} [get]
func (controller *TodoController) Search(c echo.Context) error {
	limit := numberutils.ToIntWithDefault(c.QueryParam("limit"), 10)

	todos, err := controller.useCase.Search(c.Param("query"), limit)
	if err != nil {
		return controller.handleError(c, err)
	}
	return c.JSON(http.StatusOK, todos)
}

// FindByID godoc
// @Summary Get todo by id
// @Description Retrieve a single todo
// @Tags todos
// @Produce json
// @Param id path int true "Todo id"
// @Success 200 {object} entity.Todo "The todo"
// @Failure 400 {object} map[string]string "Invalid id"
// @Failure 404 {object} map[string]string "Todo not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /todos/{id} [get]
func (controller *TodoController) FindByID(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("todo.error.invalid-id")})
	}

	found, err := controller.useCase.FindByID(id)
	if err != nil {
		return controller.handleError(c, err)
	}
	return c.JSON(http.StatusOK, found)
}

// Create godoc
// @Summary Create a todo
// @Description Create a new todo from title, optional description and completion flag
// @Tags todos
// @Accept json
// @Produce json
// @Param todo body model.CreateTodoDTO true "Todo creation data"
// @Success 201 {object} entity.Todo "Created todo"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /todos [post]
func (controller *TodoController) Create(c echo.Context) error {
	var dto model.CreateTodoDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("app.error.invalid-body")})
	}

	created, err := controller.useCase.Create(dto)
	if err != nil {
		return controller.handleError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary Update a todo
// @Description Partially update a todo; only supplied fields are changed
// @Tags todos
// @Accept json
// @Produce json
// @Param id path int true "Todo id"
// @Param todo body model.UpdateTodoDTO true "Todo update data"
// @Success 200 {object} entity.Todo "Updated todo"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "Todo not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /todos/{id} [put]
func (controller *TodoController) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("todo.error.invalid-id")})
	}

	var dto model.UpdateTodoDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("app.error.invalid-body")})
	}

	updated, err := controller.useCase.Update(id, dto)
	if err != nil {
		return controller.handleError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteByID godoc
// @Summary Delete a todo
// @Description Delete a single todo by id
// @Tags todos
// @Param id path int true "Todo id"
// @Success 204 "Todo deleted"
// @Failure 400 {object} map[string]string "Invalid id"
// @Failure 404 {object} map[string]string "Todo not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /todos/{id} [delete]
func (controller *TodoController) DeleteByID(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("todo.error.invalid-id")})
	}

	if err := controller.useCase.DeleteByID(id); err != nil {
		return controller.handleError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteCompleted godoc
// @Summary Clear completed todos
// @Description Delete every completed todo in one operation
// @Tags todos
// @Success 204 "Completed todos deleted"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /todos/completed [delete]
func (controller *TodoController) DeleteCompleted(c echo.Context) error {
	if _, err := controller.useCase.DeleteCompleted(); err != nil {
		return controller.handleError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// handleError maps domain failures onto the HTTP error taxonomy: invalid
// input is a 400, a missing record is a 404, anything else is logged and
// surfaced as a generic 500.
func (controller *TodoController) handleError(c echo.Context, err error) error {
	var validationErr *model.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": validationErr.Message})
	case errors.Is(err, model.ErrTodoNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": msg.GetMessage("todo.error.not-found")})
	default:
		log.Errorw(msg.GetMessage("todo.error.persistence"), "error", err, "path", c.Path())
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": msg.GetMessage("app.error.internal")})
	}
}

func parseID(c echo.Context) (uint, error) {
	id, err := numberutils.ToIntWithError(c.Param("id"))
	if err != nil {
		return 0, err
	}
	if !numberutils.IsIntPositive(id) {
		return 0, errors.New("id must be positive")
	}
	return uint(id), nil
}
