package cmd

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"goldtracker/internal/interaction/api"
	"goldtracker/internal/interaction/telegram"
	"goldtracker/internal/series"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard over HTTP and, when configured, Telegram",
	Run: func(cmd *cobra.Command, _ []string) {
		log := logger.With("package", "cmd")
		ctx := cmd.Context()

		gin.SetMode(gin.ReleaseMode)

		loc := cnf.Dashboard.Location()
		clock := func() time.Time { return time.Now().In(loc) }

		generator, buildDashboardUC := newDashboardUsecase(series.NewRandomSource(), clock, cnf.Dashboard.Days)

		// Initialize interactions
		apiInteractor := api.NewInteraction(logger, buildDashboardUC, generator, clock)

		group, groupCtx := errgroup.WithContext(ctx)
		group.Go(func() error {
			return apiInteractor.Start(groupCtx, cnf.Server.Address)
		})

		if cnf.Telegram.Enabled() {
			telegramClient := &http.Client{Timeout: time.Minute}
			telegramInteractor, err := telegram.NewInteraction(logger, cnf.Telegram.Token, telegramClient, loc, buildDashboardUC)
			cobra.CheckErr(err)

			group.Go(func() error {
				log.Info("starting telegram bot")
				telegramInteractor.Start(groupCtx)
				return nil
			})
		} else {
			log.Info("telegram token is not set, bot disabled")
		}

		cobra.CheckErr(group.Wait())
		log.Info("stopped")
	},
}
