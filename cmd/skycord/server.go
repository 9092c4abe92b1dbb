package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/carlmjohnson/versioninfo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	slogecho "github.com/samber/slog-echo"
)

// HTTP server for health checks and Prometheus metrics. The bot itself does not serve HTTP.
type AdminServer struct {
	echo   *echo.Echo
	httpd  *http.Server
	logger *slog.Logger
}

type GenericStatus struct {
	Daemon  string `json:"daemon"`
	Status  string `json:"status"`
	Version string `json:"version"`
}

func NewAdminServer(listen string, logger *slog.Logger) *AdminServer {
	if logger == nil {
		logger = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(slogecho.New(logger))
	e.Use(middleware.Recover())

	srv := &AdminServer{
		echo:   e,
		logger: logger,
	}
	srv.httpd = &http.Server{
		Handler:           e,
		Addr:              listen,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	e.GET("/_health", srv.HandleHealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	return srv
}

func (srv *AdminServer) HandleHealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, GenericStatus{Status: "ok", Daemon: "skycord", Version: versioninfo.Short()})
}

// Serves until ctx is done, then shuts down.
func (srv *AdminServer) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		srv.logger.Info("starting admin server", "bind", srv.httpd.Addr)
		if err := srv.httpd.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.httpd.Shutdown(shutdownCtx)
}
