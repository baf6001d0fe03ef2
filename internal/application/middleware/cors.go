package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"todo-api/pkg/resource"
)

// SetupCORS registers the CORS middleware with the configured origins.
func SetupCORS(e *echo.Echo) {
	origins := resource.GetStringSlice("app.cors.allow-origins")
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: origins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
	}))
}
