package http

import (
	"log/slog"
	"net/http"

	"courierhub/api"
	"courierhub/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewRouter assembles the echo instance: health, metrics, the Swagger UI,
// the live tracking socket and every contract route behind request
// validation. adminSecret signs the JWTs accepted on admin routes.
func NewRouter(server *Server, adminSecret string, logger *slog.Logger) (*echo.Echo, error) {
	if logger == nil {
		logger = slog.Default()
	}

	doc, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	validator, err := OpenAPIValidator(doc, AdminAuthenticator([]byte(adminSecret)))
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.RequestID(), middleware.Recover(), RequestLogger(logger), Metrics())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/openapi.yml", func(c echo.Context) error {
		return c.Blob(http.StatusOK, "application/yaml", api.OpenAPI)
	})
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.URL("/openapi.yml")))
	e.GET("/tracking/:orderId/live", server.TrackLive)

	servers.RegisterHandlers(e.Group("", validator), server)

	return e, nil
}
