package health

import (
	"time"

	"todo-api/internal/domain/gateway/cache"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/model"
)

type healthUseCase struct {
	dbGateway    db.HealthDBGateway
	cacheGateway cache.CacheGateway
}

func NewHealthUseCase(dbGateway db.HealthDBGateway, cacheGateway cache.CacheGateway) UseCase {
	return &healthUseCase{
		dbGateway:    dbGateway,
		cacheGateway: cacheGateway,
	}
}

// CheckHealth probes every component. Only the database decides the overall
// status: the cache is an accelerator and its loss degrades, not breaks, the
// service.
func (useCase *healthUseCase) CheckHealth() model.HealthResponse {
	dbHealth := useCase.dbGateway.Health()

	cacheHealth := model.ComponentHealthStatus{
		Status:  model.StatusUnknown,
		Details: map[string]string{"message": "cache not configured"},
	}
	if useCase.cacheGateway != nil {
		cacheHealth = useCase.cacheGateway.Health()
	}

	overallStatus := model.StatusUp
	if dbHealth.Status != model.StatusUp {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:    overallStatus,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Database:  dbHealth,
		Cache:     cacheHealth,
	}
}
