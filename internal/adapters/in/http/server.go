// Package http is the REST adapter. It translates JSON requests into commands and
// queries and maps their outcomes to status codes.
package http

import (
	"log/slog"
	"net/http"

	"frosty/internal/core/application/usecases/commands"
	"frosty/internal/core/application/usecases/queries"
	"frosty/internal/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateCheckinOrder commands.CreateCheckinOrderCommandHandler
	UpdateCheckinOrder commands.UpdateCheckinOrderCommandHandler
	CancelCheckinOrder commands.CancelCheckinOrderCommandHandler
	DeleteCheckinOrder commands.DeleteCheckinOrderCommandHandler
	GetCheckinOrder    queries.GetCheckinOrderQueryHandler
	ListCheckinOrders  queries.ListCheckinOrdersQueryHandler

	CreateCheckoutOrder commands.CreateCheckoutOrderCommandHandler
	UpdateCheckoutOrder commands.UpdateCheckoutOrderCommandHandler
	CloseCheckoutOrder  commands.CloseCheckoutOrderCommandHandler
	OpenCheckoutOrder   commands.OpenCheckoutOrderCommandHandler
	DeleteCheckoutOrder commands.DeleteCheckoutOrderCommandHandler
	GetCheckoutOrder    queries.GetCheckoutOrderQueryHandler
	ListCheckoutOrders  queries.ListCheckoutOrdersQueryHandler

	CreateProduct commands.CreateProductCommandHandler
	UpdateProduct commands.UpdateProductCommandHandler
	DeleteProduct commands.DeleteProductCommandHandler
	GetProduct    queries.GetProductQueryHandler
	ListProducts  queries.ListProductsQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	h       Handlers
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func NewServer(handlers Handlers, m *metrics.Metrics, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	return &Server{
		h:       handlers,
		metrics: m,
		logger:  logger.With(slog.String("component", "http")),
	}
}

// Register mounts the API under /api/v1 together with /health, /metrics and /swagger/*.
// Requests to /api/v1 are checked against the embedded OpenAPI description first.
func (s *Server) Register(e *echo.Echo, gatherer prometheus.Gatherer) error {
	doc, err := LoadOpenAPI()
	if err != nil {
		return err
	}

	if err = registerSwagger(doc); err != nil {
		return err
	}

	validator, err := requestValidator(doc)
	if err != nil {
		return err
	}

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Error != nil || v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			s.logger.LogAttrs(c.Request().Context(), level, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			)
			return nil
		},
	}))
	e.Use(observeRequests(s.metrics))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler(gatherer)))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1", validator)

	api.GET("/products", s.ListProducts)
	api.POST("/products", s.CreateProduct)
	api.GET("/products/:id", s.GetProduct)
	api.PUT("/products/:id", s.UpdateProduct)
	api.DELETE("/products/:id", s.DeleteProduct)

	api.GET("/checkin-orders", s.ListCheckinOrders)
	api.POST("/checkin-orders", s.CreateCheckinOrder)
	api.GET("/checkin-orders/:id", s.GetCheckinOrder)
	api.PUT("/checkin-orders/:id", s.UpdateCheckinOrder)
	api.DELETE("/checkin-orders/:id", s.DeleteCheckinOrder)
	api.POST("/checkin-orders/:id/cancel", s.CancelCheckinOrder)

	api.GET("/checkout-orders", s.ListCheckoutOrders)
	api.POST("/checkout-orders", s.CreateCheckoutOrder)
	api.GET("/checkout-orders/:id", s.GetCheckoutOrder)
	api.PUT("/checkout-orders/:id", s.UpdateCheckoutOrder)
	api.DELETE("/checkout-orders/:id", s.DeleteCheckoutOrder)
	api.POST("/checkout-orders/:id/close", s.CloseCheckoutOrder)
	api.POST("/checkout-orders/:id/open", s.OpenCheckoutOrder)

	return nil
}

// NewEcho returns an echo instance with the server registered.
func (s *Server) NewEcho(gatherer prometheus.Gatherer) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	if err := s.Register(e, gatherer); err != nil {
		return nil, err
	}
	return e, nil
}
