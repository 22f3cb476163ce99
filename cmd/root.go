package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"goldtracker/internal/config"
	"goldtracker/internal/series"
	"goldtracker/internal/usecases"
)

var (
	rootCmd = &cobra.Command{
		Use:   "goldtracker",
		Short: "Gold price dashboard over mock price series",
	}

	cnf    *config.Config
	logger *slog.Logger
)

func Execute() {
	initConfig()
	initLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd, generateCmd)
}

func initConfig() {
	cnf = config.MustLoad("./config.yml")
}

func initLogger() {
	opts := &slog.HandlerOptions{Level: cnf.Logger.ParsedSlogLevel}
	logger = slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

// newDashboardUsecase wires the generator and the clock in the configured timezone.
func newDashboardUsecase(random series.RandomSource, clock func() time.Time, days int) (*series.Generator, *usecases.BuildDashboardUsecase) {
	generator := series.NewGenerator(random)
	return generator, usecases.NewBuildDashboardUsecase(logger, generator, clock, days)
}
