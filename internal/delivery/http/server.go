package http

import (
	"context"
	"log/slog"
	"net"
	"strconv"

	"pressroom/config"
	"pressroom/internal/delivery"
	custommiddleware "pressroom/internal/delivery/http/middleware"
	"pressroom/internal/delivery/http/router"
	"pressroom/internal/delivery/http/validator"
	"pressroom/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
)

type HTTPParams struct {
	fx.In
	fx.Lifecycle

	Config           *config.Config
	Logger           *slog.Logger
	LoggerMiddleware *custommiddleware.LoggerMiddleware
	ErrorMiddleware  *custommiddleware.ErrorMiddleware
	RouterParams     router.RouterParams
}

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

func NewServer(params HTTPParams) (delivery.Delivery, error) {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.Validator = validator.New()
	echoServer.HTTPErrorHandler = params.ErrorMiddleware.HandleHTTPError
	echoServer.Use(params.LoggerMiddleware.Handle)
	echoServer.Use(slogecho.New(params.Logger))
	echoServer.Use(middleware.Recover())
	echoServer.Use(middleware.CORS())
	echoServer.Use(middleware.BodyLimit(params.Config.HTTP.MaxRequestBodySize))

	echoServer.Server.ReadTimeout = params.Config.HTTP.Timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = params.Config.HTTP.Timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = params.Config.HTTP.Timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = params.Config.HTTP.Timeouts.IdleTimeout

	router := router.NewRouter(params.RouterParams)
	router.RegisterRoutes(echoServer)

	delivery := &httpServer{
		cfg:    params.Config,
		logger: params.Logger,
		server: echoServer,
	}

	params.Append(fx.Hook{
		OnStop: delivery.stop,
	})

	return delivery, nil
}

func (s *httpServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting HTTP server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil {
		return errors.Wrap(err, "failed to serve http")
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
