package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/araddon/dateparse"
	"github.com/spf13/cobra"

	"goldtracker/internal/interaction/api"
	"goldtracker/internal/series"
)

var (
	generateDate string
	generateSeed uint64
	generateDays int
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print one dashboard build as JSON",
	RunE: func(cmd *cobra.Command, _ []string) error {
		loc := cnf.Dashboard.Location()

		now := time.Now().In(loc)
		if generateDate != "" {
			parsed, err := dateparse.ParseIn(generateDate, loc)
			if err != nil {
				return fmt.Errorf("parse --date: %w", err)
			}
			now = parsed
		}

		random := series.NewRandomSource()
		if cmd.Flags().Changed("seed") {
			random = series.NewSeededRandomSource(generateSeed)
		}

		days := cnf.Dashboard.Days
		if cmd.Flags().Changed("days") {
			days = generateDays
		}

		_, buildDashboardUC := newDashboardUsecase(random, func() time.Time { return now }, days)

		dashboard, err := buildDashboardUC.BuildDashboard()
		if err != nil {
			return fmt.Errorf("build dashboard: %w", err)
		}

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		encoder.SetEscapeHTML(false)

		return encoder.Encode(api.NewDashboardResponse(dashboard))
	},
}

func init() {
	generateCmd.Flags().StringVar(&generateDate, "date", "", "day the series end on, any common format (default today)")
	generateCmd.Flags().Uint64Var(&generateSeed, "seed", 0, "seed for reproducible output")
	generateCmd.Flags().IntVar(&generateDays, "days", 0, "series length, overrides dashboard.days")
}
