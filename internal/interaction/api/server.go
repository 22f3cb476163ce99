package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/atomic"

	"goldtracker/internal/model"
	"goldtracker/internal/series"
)

const shutdownTimeout = 10 * time.Second

type DashboardBuilder interface {
	BuildDashboard() (*model.Dashboard, error)
}

type SeriesGenerator interface {
	Generate(basePrice float64, days int, class model.VolatilityClass, today time.Time) (model.PriceSeries, error)
}

type Interaction struct {
	logger    *slog.Logger
	engine    *gin.Engine
	dashboard DashboardBuilder
	generator SeriesGenerator
	clock     func() time.Time

	builds atomic.Int64
}

// NewInteraction creates the HTTP API over the dashboard builder.
func NewInteraction(logger *slog.Logger, dashboard DashboardBuilder, generator SeriesGenerator, clock func() time.Time) *Interaction {
	that := &Interaction{
		logger:    logger.With("component", "api"),
		engine:    gin.New(),
		dashboard: dashboard,
		generator: generator,
		clock:     clock,
	}

	that.engine.Use(gin.Recovery(), that.requestLogger())
	that.engine.GET("/healthz", that.handlerHealth)

	group := that.engine.Group("/api")
	group.GET("/dashboard", that.handlerDashboard)
	group.GET("/series", that.handlerSeries)

	return that
}

func (that *Interaction) Handler() http.Handler {
	return that.engine
}

// Builds returns the number of dashboards served so far.
func (that *Interaction) Builds() int64 {
	return that.builds.Load()
}

// Start serves on address until ctx is done.
func (that *Interaction) Start(ctx context.Context, address string) error {
	log := that.logger.With("method", "Start", "address", address)

	srv := &http.Server{Addr: address, Handler: that.engine, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("failed to shutdown server", "error", err)
		}
	}()

	log.Info("starting http server")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen and serve: %w", err)
	}

	return nil
}

func (that *Interaction) handlerHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Builds: that.Builds()})
}

func (that *Interaction) handlerDashboard(c *gin.Context) {
	log := that.logger.With("method", "handlerDashboard")

	dashboard, err := that.dashboard.BuildDashboard()
	if err != nil {
		log.Error("failed to build dashboard", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to build dashboard"})
		return
	}

	that.builds.Inc()
	c.JSON(http.StatusOK, NewDashboardResponse(dashboard))
}

func (that *Interaction) handlerSeries(c *gin.Context) {
	basePrice, err := strconv.ParseFloat(c.Query("base"), 64)
	if err != nil || math.IsNaN(basePrice) || math.IsInf(basePrice, 0) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "base must be a finite number"})
		return
	}

	days, err := strconv.Atoi(c.DefaultQuery("days", "30"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "days must be an integer"})
		return
	}

	class, err := model.ParseVolatilityClass(c.DefaultQuery("class", string(model.Domestic)))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	points, err := that.generator.Generate(basePrice, days, class, that.clock())
	switch {
	case errors.Is(err, series.ErrTooFewDays), errors.Is(err, series.ErrTooManyDays),
		errors.Is(err, series.ErrInvalidBasePrice), errors.Is(err, series.ErrUnknownVolatilityClass):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	case err != nil:
		that.logger.Error("failed to generate series", "method", "handlerSeries", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to generate series"})
		return
	}

	c.JSON(http.StatusOK, SeriesResponse{Series: newSeriesResponse(points)})
}

func (that *Interaction) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		that.logger.Info("handled request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
