package todo

import (
	"context"
	"math"
	"time"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/gateway/cache"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/gateway/queue"
	"todo-api/internal/domain/model"
	"todo-api/internal/domain/validation"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
)

const (
	statsCacheKey = "todos::stats"

	minLimit = 1
	maxLimit = 100

	publishTimeout = 5 * time.Second
)

type todoUseCase struct {
	gateway   db.TodoGateway
	cache     cache.CacheGateway
	events    queue.Sender
	queueName string
	statsTTL  time.Duration
}

// NewTodoUseCase wires the todo operations. Cache and events may be nil; the
// operations then run straight against the store.
func NewTodoUseCase(gateway db.TodoGateway, cacheGateway cache.CacheGateway, events queue.Sender, queueName string, statsTTL time.Duration) UseCase {
	return &todoUseCase{
		gateway:   gateway,
		cache:     cacheGateway,
		events:    events,
		queueName: queueName,
		statsTTL:  statsTTL,
	}
}

func (uc *todoUseCase) FindAll(query model.TodoListQuery) ([]entity.Todo, error) {
	if query.Skip < 0 {
		return nil, model.NewValidationError(msg.GetMessage("todo.error.invalid-skip"))
	}
	if query.Limit < minLimit || query.Limit > maxLimit {
		return nil, model.NewValidationError(msg.GetMessage("todo.error.invalid-limit", minLimit, maxLimit))
	}
	if query.Sort != "" && query.Sort != "date" && query.Sort != "title" {
		return nil, model.NewValidationError(msg.GetMessage("todo.error.invalid-sort"))
	}

	return uc.gateway.FindAll(query)
}

func (uc *todoUseCase) FindByID(id uint) (*entity.Todo, error) {
	todo, err := uc.gateway.FindByID(id)
	if err != nil {
		return nil, err
	}
	if todo == nil {
		return nil, model.ErrTodoNotFound
	}
	return todo, nil
}

func (uc *todoUseCase) Stats() (*model.TodoStats, error) {
	ctx := context.Background()

	if uc.cache != nil {
		var cached model.TodoStats
		hit, err := uc.cache.GetJSON(ctx, statsCacheKey, &cached)
		if err != nil {
			log.Debugw("stats cache read failed", "error", err)
		} else if hit {
			return &cached, nil
		}
	}

	total, err := uc.gateway.CountAll()
	if err != nil {
		return nil, err
	}
	completed, err := uc.gateway.CountCompleted()
	if err != nil {
		return nil, err
	}

	rate := 0.0
	if total > 0 {
		rate = math.Round(float64(completed)/float64(total)*100*100) / 100
	}

	stats := &model.TodoStats{
		Total:          total,
		Completed:      completed,
		Pending:        total - completed,
		CompletionRate: rate,
	}

	if uc.cache != nil {
		if err := uc.cache.SetJSON(ctx, statsCacheKey, stats, uc.statsTTL); err != nil {
			log.Debugw("stats cache write failed", "error", err)
		}
	}

	return stats, nil
}

func (uc *todoUseCase) Search(query string, limit int) ([]entity.Todo, error) {
	term := validation.NormalizeQuery(query)
	if term == "" {
		return nil, model.NewValidationError(msg.GetMessage("todo.error.empty-query"))
	}
	if limit < minLimit || limit > maxLimit {
		return nil, model.NewValidationError(msg.GetMessage("todo.error.invalid-limit", minLimit, maxLimit))
	}

	return uc.gateway.Search(term, limit)
}

func (uc *todoUseCase) Create(dto model.CreateTodoDTO) (*entity.Todo, error) {
	if !validation.ValidateTitle(dto.Title) {
		return nil, model.NewValidationError(msg.GetMessage("todo.error.invalid-title"))
	}
	if !validation.ValidateDescription(dto.Description) {
		return nil, model.NewValidationError(msg.GetMessage("todo.error.invalid-description"))
	}

	now := time.Now().UTC()
	todo := entity.Todo{
		Title:       validation.SanitizeTitle(dto.Title),
		Description: validation.SanitizeDescription(dto.Description),
		Completed:   dto.Completed,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := uc.gateway.Create(todo)
	if err != nil {
		return nil, err
	}

	log.Infow(msg.GetMessage("todo.created", created.ID), "todo_id", created.ID)
	uc.invalidateStats()
	uc.publishEvent(model.TodoEvent{Action: model.TodoEventCreated, TodoID: created.ID, OccurredAt: created.CreatedAt})

	return created, nil
}

// Update applies a partial merge: only supplied fields are validated and
// written, everything else stays untouched. The updated_at column is
// refreshed on every successful call.
func (uc *todoUseCase) Update(id uint, dto model.UpdateTodoDTO) (*entity.Todo, error) {
	fields := make(map[string]any)

	if dto.Title != nil {
		if !validation.ValidateTitle(*dto.Title) {
			return nil, model.NewValidationError(msg.GetMessage("todo.error.invalid-title"))
		}
		fields["title"] = validation.SanitizeTitle(*dto.Title)
	}
	if dto.Description != nil {
		if !validation.ValidateDescription(dto.Description) {
			return nil, model.NewValidationError(msg.GetMessage("todo.error.invalid-description"))
		}
		fields["description"] = *validation.SanitizeDescription(dto.Description)
	}
	if dto.Completed != nil {
		fields["completed"] = *dto.Completed
	}
	fields["updated_at"] = time.Now().UTC()

	updated, err := uc.gateway.Update(id, fields)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, model.ErrTodoNotFound
	}

	log.Infow(msg.GetMessage("todo.updated", id), "todo_id", id)
	uc.invalidateStats()
	uc.publishEvent(model.TodoEvent{Action: model.TodoEventUpdated, TodoID: id, OccurredAt: updated.UpdatedAt})

	return updated, nil
}

func (uc *todoUseCase) DeleteByID(id uint) error {
	if err := uc.gateway.DeleteByID(id); err != nil {
		return err
	}

	log.Infow(msg.GetMessage("todo.deleted", id), "todo_id", id)
	uc.invalidateStats()
	uc.publishEvent(model.TodoEvent{Action: model.TodoEventDeleted, TodoID: id, OccurredAt: time.Now().UTC()})

	return nil
}

func (uc *todoUseCase) DeleteCompleted() (int64, error) {
	count, err := uc.gateway.DeleteCompleted()
	if err != nil {
		return 0, err
	}

	log.Infow(msg.GetMessage("todo.completed-cleared", count), "count", count)
	uc.invalidateStats()
	uc.publishEvent(model.TodoEvent{Action: model.TodoEventCleared, Count: count, OccurredAt: time.Now().UTC()})

	return count, nil
}

func (uc *todoUseCase) invalidateStats() {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Delete(context.Background(), statsCacheKey); err != nil {
		log.Debugw("stats cache invalidation failed", "error", err)
	}
}

// publishEvent notifies the events queue best-effort: a broken queue never
// fails the request that triggered the event.
func (uc *todoUseCase) publishEvent(event model.TodoEvent) {
	if uc.events == nil || uc.queueName == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	if err := uc.events.SendMessage(ctx, uc.queueName, event); err != nil {
		log.Errorw(msg.GetMessage("todo.event.publish-failed", event.Action), "error", err)
	}
}
