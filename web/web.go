// Package web provides the HTTP server of the census API: router assembly,
// lifecycle management and background job scheduling.
package web

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"census-api/config"
	"census-api/logger"
	"census-api/web/controller"
	"census-api/web/entity"
	"census-api/web/job"
	"census-api/web/middleware"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
)

// Server is the census API web server: a Gin engine behind a plain listener,
// plus the cron scheduler for the database ping job.
type Server struct {
	httpServer *http.Server
	listener   net.Listener

	index       *controller.IndexController
	admin       *controller.AdminController
	participant *controller.ParticipantController

	cron *cron.Cron

	ctx    context.Context
	cancel context.CancelFunc
}

func NewServer() *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{ctx: ctx, cancel: cancel}
}

// initRouter initializes Gin, registers middleware and controllers and
// returns the configured engine.
func (s *Server) initRouter() (*gin.Engine, error) {
	if config.IsDebug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.DefaultWriter = io.Discard
		gin.DefaultErrorWriter = io.Discard
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.Default()
	engine.Use(middleware.RequestID())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	s.index = controller.NewIndexController(engine.Group("/"))

	protected := engine.Group("/", middleware.BasicAuth())
	s.admin = controller.NewAdminController(protected)
	s.participant = controller.NewParticipantController(protected)

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, entity.ErrorResponse{
			Error:   entity.ErrorNotFound,
			Message: "Route not found.",
		})
	})

	return engine, nil
}

// startTask schedules the recurring database connectivity check.
func (s *Server) startTask() {
	s.cron.AddJob("@every 30s", job.NewCheckDBJob())
	s.cron.Start()
}

func (s *Server) Start() (err error) {
	defer func() {
		if err != nil {
			s.Stop()
		}
	}()

	engine, err := s.initRouter()
	if err != nil {
		return err
	}

	addr := fmt.Sprintf(":%d", config.GetPort())
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.listener = listener

	s.cron = cron.New()
	s.startTask()

	s.httpServer = &http.Server{
		Handler: engine,
	}
	go func() {
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			logger.Error("serve failed:", err)
		}
	}()

	logger.Infof("%s %s listening on %s", config.GetName(), config.GetVersion(), addr)
	return nil
}

func (s *Server) Stop() error {
	s.cancel()

	if s.cron != nil {
		s.cron.Stop()
	}

	if s.httpServer != nil {
		// Shutdown also closes the listener.
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(ctx)
	}
	if s.listener != nil {
		return s.listener.Close()
	}
	return nil
}

func (s *Server) GetCtx() context.Context {
	return s.ctx
}
