// Package server публикует оркестратор как небольшой JSON API для страницы-витрины.
package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/maine/historical_times/internal/app"
	"github.com/maine/historical_times/internal/config"
)

const gracefulShutdownTimeout = 10 * time.Second

// Server оборачивает echo и зависимости обработчиков.
type Server struct {
	Echo *echo.Echo

	cfg  config.Server
	orch *app.Orchestrator
}

// New создаёт сервер, настраивает middleware и маршруты.
func New(cfg config.Server, orch *app.Orchestrator) *Server {
	e := echo.New()
	e.HideBanner = true

	s := &Server{
		Echo: e,
		cfg:  cfg,
		orch: orch,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.Echo.Use(middleware.Logger())
	s.Echo.Use(middleware.Recover())
	s.Echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: s.cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
	}))
}

func (s *Server) setupRoutes() {
	s.Echo.GET("/health", s.handleHealth)
	s.Echo.GET("/api/edition", s.handleEdition)
	s.Echo.POST("/api/context", s.handleContext)
	s.Echo.POST("/api/footage", s.handleFootage)
}

// Start запускает сервер и останавливает его корректно по сигналу прерывания.
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		if err := s.Echo.Start(s.cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server stopped: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer cancel()

	return s.Echo.Shutdown(shutdownCtx)
}
