// Package server exposes the editing session, the renderer, the export
// pipeline and the analyzer endpoints over HTTP.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/dhrupad777/paperbrain/internal/analysis"
	"github.com/dhrupad777/paperbrain/internal/config"
	"github.com/dhrupad777/paperbrain/internal/invoice/render"
	"github.com/dhrupad777/paperbrain/internal/observability/metrics"
	"github.com/dhrupad777/paperbrain/internal/providers/pdf"
	"github.com/dhrupad777/paperbrain/internal/session"
)

var Module = fx.Module("http.server",
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(func(s *Server) { s.RegisterRoutes() }),
	fx.Invoke(run),
)

func NewEngine(logger *zap.Logger, m *metrics.Metrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(logger))
	r.Use(metrics.GinMiddleware(m))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(m.Handler()))

	return r
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config, logger *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Fatal("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine      *gin.Engine
	cfg         config.Config
	session     *session.Session
	renderer    render.Renderer
	pdf         pdf.Provider
	analysisSvc *analysis.Service
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

type ServerParams struct {
	fx.In

	Gin         *gin.Engine
	Cfg         config.Config
	Session     *session.Session
	Renderer    render.Renderer
	PDF         pdf.Provider
	AnalysisSvc *analysis.Service
	Metrics     *metrics.Metrics
	Logger      *zap.Logger
}

func NewServer(p ServerParams) *Server {
	return &Server{
		engine:      p.Gin,
		cfg:         p.Cfg,
		session:     p.Session,
		renderer:    p.Renderer,
		pdf:         p.PDF,
		analysisSvc: p.AnalysisSvc,
		metrics:     p.Metrics,
		logger:      p.Logger,
	}
}

func (s *Server) RegisterRoutes() {
	api := s.engine.Group("/api/v1")

	inv := api.Group("/invoice")
	inv.GET("", s.GetInvoice)
	inv.PATCH("/field", s.UpdateField)
	inv.POST("/number", s.MintInvoiceNumber)
	inv.POST("/reset", s.ResetInvoice)
	inv.POST("/items", s.AddItem)
	inv.DELETE("/items/:index", s.RemoveItem)
	inv.POST("/tax-rows", s.AddTaxRow)
	inv.DELETE("/tax-rows/:index", s.RemoveTaxRow)
	inv.GET("/preview", s.PreviewInvoice)
	inv.GET("/export", s.ExportInvoice)

	api.POST("/upload", s.UploadFile)
	api.POST("/analyze", s.AnalyzeFile)
	api.GET("/history", s.UploadHistory)
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Debug("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}
