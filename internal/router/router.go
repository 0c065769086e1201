// Package router builds the Echo instance: global middleware, system routes
// and the versioned API group.
package router

import (
	"github.com/deppfellow/portal-api/internal/handler"
	"github.com/deppfellow/portal-api/internal/middleware"
	"github.com/deppfellow/portal-api/internal/server"
	"github.com/deppfellow/portal-api/internal/service"
	"github.com/labstack/echo/v4"
)

const APIPrefix = "/api/v1"

func NewRouter(s *server.Server, h *handler.Handlers, services *service.Services) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, s, h)

	api := router.Group(APIPrefix, middlewares.RateLimit.Limit(), middlewares.Auth.Optional())
	registerPortalRoutes(api, h)

	if services.Auth.Enabled() {
		s.Logger.Info().Msg("clerk session check enabled on " + APIPrefix)
	}

	return router
}
