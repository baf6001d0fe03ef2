package controller

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"todo-api/internal/domain/model"
)

type stubHealthUseCase struct {
	response model.HealthResponse
}

func (s *stubHealthUseCase) CheckHealth() model.HealthResponse {
	return s.response
}

func newHealthServer(stub *stubHealthUseCase) *echo.Echo {
	e := echo.New()
	NewHealthController(e.Group(""), stub).InitHealthRoutes()
	return e
}

func TestHealthRoute(t *testing.T) {
	tests := []struct {
		name   string
		status model.HealthStatus
		want   int
	}{
		{"healthy", model.StatusUp, http.StatusOK},
		{"database down", model.StatusDown, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubHealthUseCase{response: model.HealthResponse{
				Status:   tt.status,
				Database: model.ComponentHealthStatus{Status: tt.status},
				Cache:    model.ComponentHealthStatus{Status: model.StatusUp},
			}}
			e := newHealthServer(stub)

			rec := request(e, http.MethodGet, "/health", "")
			if rec.Code != tt.want {
				t.Errorf("status: got %d, want %d", rec.Code, tt.want)
			}

			var body model.HealthResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("response body: %v", err)
			}
			if body.Status != tt.status {
				t.Errorf("body status: got %q, want %q", body.Status, tt.status)
			}
		})
	}
}
