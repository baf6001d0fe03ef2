package schedule

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"todo-api/internal/domain/usecase/todo"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
	"todo-api/pkg/redis"
	"todo-api/pkg/resource"
)

type TodoScheduler struct {
	cron        *cron.Cron
	useCase     todo.UseCase
	redisClient *redis.Client
}

func NewTodoScheduler(useCase todo.UseCase, redisClient *redis.Client) *TodoScheduler {
	return &TodoScheduler{cron: cron.New(), useCase: useCase, redisClient: redisClient}
}

// InitTodoScheduleTasks initializes todo schedule tasks. Without a configured
// cron expression the retention purge stays off.
func (scheduler *TodoScheduler) InitTodoScheduleTasks() {
	cronExpression := resource.GetString("app.todo.retention.cron")
	if cronExpression == "" {
		log.Info(msg.GetMessage("todo.cron.disabled"))
		return
	}

	_, err := scheduler.cron.AddFunc(cronExpression, scheduler.PurgeCompleted)
	if err != nil {
		panic(err)
	}

	scheduler.cron.Start()
}

// PurgeCompleted removes every completed todo. A redis lock keeps multiple
// instances from running the purge on the same tick.
func (scheduler *TodoScheduler) PurgeCompleted() {
	ctx := context.Background()

	lock := redis.NewTaskLock(scheduler.redisClient, "todo-retention-purge", time.Minute)
	acquired, err := lock.TryAcquire(ctx)
	if err != nil {
		log.Errorw(msg.GetMessage("todo.cron.lock-failed"), "error", err)
		return
	}
	if !acquired {
		log.Info(msg.GetMessage("todo.cron.lock-held"))
		return
	}
	defer func() {
		if err := lock.Release(ctx); err != nil {
			log.Errorw(msg.GetMessage("todo.cron.unlock-failed"), "error", err)
		}
	}()

	log.Info(msg.GetMessage("todo.cron.start"))

	count, err := scheduler.useCase.DeleteCompleted()
	if err != nil {
		log.Errorw(msg.GetMessage("todo.cron.purge-failed"), "error", err)
		return
	}

	log.Info(msg.GetMessage("todo.cron.end", count))
}
