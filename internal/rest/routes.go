package rest

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggo/swag"
	"golang.org/x/time/rate"

	"github.com/agrovia/portal/internal/metrics"
)

const (
	apiPrefix = "/api"

	healthPath  = "/health"
	metricsPath = "/metrics"
	swaggerPath = "/swagger/doc.json"
)

type ServerOptions struct {
	// RateLimit is requests per second per client IP, 0 disables the limiter.
	RateLimit float64
}

// NewEcho creates the echo instance with the common middleware and service routes.
func NewEcho(logger *slog.Logger, opts ServerOptions) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = jsonSerializer{}

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(logger))
	e.Use(metricsMiddleware)
	if opts.RateLimit > 0 {
		e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(opts.RateLimit))))
	}

	e.GET(healthPath, handleHealth)
	e.GET(metricsPath, echo.WrapHandler(promhttp.Handler()))
	e.GET(swaggerPath, handleSwagger)

	return e
}

// RegisterRoutes registers the content API routes on e.
func (h *ContentHandler) RegisterRoutes(e *echo.Echo) {
	api := e.Group(apiPrefix)

	api.GET("/videos", h.MockVideos)
	api.GET("/videos-v2", h.Videos)
	api.GET("/videos/:id", h.VideoByID)
	api.GET("/posts", h.Posts)
	api.GET("/posts/:id", h.PostByID)
	api.GET("/categorias/site", h.SiteCategories)
	api.GET("/test-db", h.TestDB)

	api.GET("/auth/*", h.Disabled)
	api.POST("/auth/*", h.Disabled)
	api.Any("/signup", h.Disabled)
	api.Any("/reset-password", h.Disabled)
}

func handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func handleSwagger(c echo.Context) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "swagger doc not registered").SetInternal(err)
	}
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, []byte(doc))
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}

			logger.LogAttrs(c.Request().Context(), level, "HTTP request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Int64("duration_ms", v.Latency.Milliseconds()),
				slog.String("remote_addr", v.RemoteIP),
				slog.String("request_id", v.RequestID),
			)
			return nil
		},
	})
}

func metricsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request().Method

		metrics.APIRequestsTotal.WithLabelValues(method, route, strconv.Itoa(c.Response().Status)).Inc()
		metrics.APIRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())

		return nil
	}
}

// jsonSerializer encodes echo responses with goccy/go-json.
type jsonSerializer struct{}

func (jsonSerializer) Serialize(c echo.Context, i interface{}, indent string) error {
	enc := json.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

func (jsonSerializer) Deserialize(c echo.Context, i interface{}) error {
	err := json.NewDecoder(c.Request().Body).Decode(i)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON body").SetInternal(err)
	}
	return nil
}
