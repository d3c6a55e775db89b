package middleware

import (
	"log/slog"
	"time"

	"pressroom/config"
	deliverycontext "pressroom/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware tags every request with an ID and a request-scoped logger,
// and optionally logs request details in debug mode.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle resolves the request ID, stores a request-scoped logger in the
// request context so downstream layers log with it, and echoes the ID back
// in the response header.
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if requestID == "" {
			requestID = deliverycontext.GetRequestID(c)
		}
		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		requestLogger := m.logger.With(slog.String("request_id", requestID))
		ctx := deliverycontext.WithRequestID(c.Request().Context(), requestID)
		ctx = deliverycontext.WithLogger(ctx, requestLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		var err error
		if m.debug {
			start := time.Now()
			defer func() {
				m.logRequest(c, requestLogger, start, err)
			}()
		}

		err = next(c)

		return err
	}
}

// logRequest logs request details
func (m *LoggerMiddleware) logRequest(c echo.Context, logger *slog.Logger, start time.Time, err error) {
	req := c.Request()
	res := c.Response()
	latency := time.Since(start)

	fields := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", res.Status),
		slog.Duration("latency", latency),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}

	if len(req.URL.RawQuery) > 0 {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}
	if err != nil {
		fields = append(fields, slog.String("error", err.Error()))
	}

	logLevel := slog.LevelInfo
	if res.Status >= 400 {
		logLevel = slog.LevelWarn
	}
	if res.Status >= 500 {
		logLevel = slog.LevelError
	}

	logger.LogAttrs(req.Context(), logLevel, "HTTP Request", fields...)
}
