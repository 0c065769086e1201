package router

import (
	"github.com/deppfellow/portal-api/internal/handler"
	"github.com/deppfellow/portal-api/internal/server"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes mounts the endpoints that sit outside the API group:
// health, docs and, locally, the email previews.
func registerSystemRoutes(r *echo.Echo, s *server.Server, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	r.Static("/static", handler.StaticDir)
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)

	if s.Config.IsLocal() {
		r.GET("/emails/:template", h.EmailPreview.Preview)
	}
}
