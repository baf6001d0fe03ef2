package main

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "todo-api/configs"
	_ "todo-api/docs"
	"todo-api/internal/application/controller"
	"todo-api/internal/application/middleware"
	"todo-api/internal/application/schedule"
	"todo-api/internal/domain/gateway/cache"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/gateway/queue"
	"todo-api/internal/domain/usecase/auth"
	"todo-api/internal/domain/usecase/health"
	"todo-api/internal/domain/usecase/todo"
	"todo-api/internal/infra/aws"
	"todo-api/internal/infra/database/gorm"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
	"todo-api/pkg/redis"
	"todo-api/pkg/resource"
)

// @title Todo API
// @version 1.0
// @description CRUD REST API for todos with stats, search and a user auth add-on.
// @BasePath /api/v1
func main() {
	log.Info(msg.GetMessage("app.start"))

	// Init infra
	e := echo.New()
	e.HideBanner = true
	middleware.SetupRequestID(e)
	middleware.SetupRequestLogger(e)
	middleware.SetupCORS(e)
	api := e.Group(resource.GetString("app.server.context-path"))

	redisConfig := redis.DefaultConfig()
	redisConfig.Host = resource.GetString("app.redis.host")
	redisConfig.Port = resource.GetString("app.redis.port")
	redisConfig.Password = resource.GetString("app.redis.password")
	redisConfig.DB = resource.GetInt("app.redis.db")
	redisClient := redis.NewClient(redisConfig)

	// Init Gateways
	todoGateway := db.NewGormTodoGateway(gorm.Db)
	userGateway := db.NewGormUserGateway(gorm.Db)
	healthDBGateway := db.NewGormHealthDBGateway(gorm.Db)
	cacheGateway := cache.NewRedisCacheGateway(redisClient)

	queueName := resource.GetString("app.queue.todo-events")
	var eventSender queue.Sender
	if queueName != "" {
		eventSender = aws.NewSQSSenderAdapter(aws.NewSqsClient())
	}

	// Init UseCases
	todoUseCase := todo.NewTodoUseCase(todoGateway, cacheGateway, eventSender, queueName,
		resource.GetDuration("app.redis.stats-ttl"))
	authUseCase := auth.NewAuthUseCase(userGateway,
		resource.GetString("app.auth.jwt-secret"),
		resource.GetDuration("app.auth.token-ttl"),
		resource.GetInt("app.auth.bcrypt-cost"))
	healthUseCase := health.NewHealthUseCase(healthDBGateway, cacheGateway)

	// Init Controllers
	todoController := controller.NewTodoController(api, todoUseCase)
	authController := controller.NewAuthController(api, authUseCase)
	healthController := controller.NewHealthController(api, healthUseCase)

	// Init Routes
	todoController.InitTodoRoutes()
	authController.InitAuthRoutes()
	healthController.InitHealthRoutes()
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Init Schedule
	todoScheduler := schedule.NewTodoScheduler(todoUseCase, redisClient)
	todoScheduler.InitTodoScheduleTasks()

	// Start Routes
	e.Logger.Fatal(e.Start(":" + resource.GetString("app.server.port")))
}
