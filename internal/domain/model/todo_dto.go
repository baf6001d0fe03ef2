package model

import "time"

// CreateTodoDTO is the request body for creating a todo.
type CreateTodoDTO struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Completed   bool    `json:"completed"`
}

// UpdateTodoDTO is the request body for a partial todo update. Every field is
// a pointer: nil means the caller did not supply the field and it must not be
// touched.
type UpdateTodoDTO struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

// TodoListQuery carries the window and filters of a list request.
type TodoListQuery struct {
	Skip      int
	Limit     int
	Completed *bool
	Sort      string
}

// TodoStats summarizes the todo table.
type TodoStats struct {
	Total          int64   `json:"total"`
	Completed      int64   `json:"completed"`
	Pending        int64   `json:"pending"`
	CompletionRate float64 `json:"completion_rate"`
}

// TodoEvent is published to the events queue after a successful mutation.
type TodoEvent struct {
	Action     string    `json:"action"`
	TodoID     uint      `json:"todoId,omitempty"`
	Count      int64     `json:"count,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

const (
	TodoEventCreated = "created"
	TodoEventUpdated = "updated"
	TodoEventDeleted = "deleted"
	TodoEventCleared = "completed-cleared"
)
