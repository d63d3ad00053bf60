package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	budgetCmd "github.com/madhuraks/ecobazaar/budget/cmd"
	cartCmd "github.com/madhuraks/ecobazaar/cart/cmd"
	catalogCmd "github.com/madhuraks/ecobazaar/catalog/cmd"
	"github.com/madhuraks/ecobazaar/internal/config"
	"github.com/madhuraks/ecobazaar/internal/constants"
	"github.com/madhuraks/ecobazaar/internal/log"
	offerCmd "github.com/madhuraks/ecobazaar/offer/cmd"
)

func Start() {
	logger := log.Get("/var/log/ecobazaar.log", config.Application{}).
		With().
		Str(constants.KEY_APP_NAME, constants.APP_MAIN_ECOBAZAAR).
		Str(constants.KEY_TAG, "main Start").
		Logger()

	logger.Info().Msg("adding listener for SIGINT and SIGTERM")
	c, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger.Info().Msg("added listener for SIGINT and SIGTERM")

	c = logger.WithContext(c)

	rootCmd := &cobra.Command{Use: "ecobazaar"}
	commands := []*cobra.Command{
		{
			Use:   "catalog",
			Short: "Run catalog service",
			Run: func(cmd *cobra.Command, args []string) {
				catalogCmd.RunCatalogService(cmd.Context())
			},
		},
		{
			Use:   "cart",
			Short: "Run cart service",
			Run: func(cmd *cobra.Command, args []string) {
				cartCmd.RunCartService(cmd.Context())
			},
		},
		{
			Use:   "budget",
			Short: "Run budget service",
			Run: func(cmd *cobra.Command, args []string) {
				budgetCmd.RunBudgetService(cmd.Context())
			},
		},
		{
			Use:   "offer",
			Short: "Run offer service",
			Run: func(cmd *cobra.Command, args []string) {
				offerCmd.RunOfferService(cmd.Context())
			},
		},
	}
	rootCmd.AddCommand(commands...)
	if err := rootCmd.ExecuteContext(c); err != nil {
		logger.Fatal().Err(err).Msgf("error when executing command=%s", err.Error())
	}
}
