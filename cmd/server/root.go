package main

import (
	"os"

	"github.com/actuallystonmai/nutrisathi-service/internal/config"
	"github.com/actuallystonmai/nutrisathi-service/internal/logging"
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "nutrisathi",
	Short: "Indian meal recommendation and calorie tracking API",
	Long: `nutrisathi serves thali and mood based meal recommendations, daily
calorie targets and a meal log with streaks. Without a subcommand it
migrates the database, seeds it when empty and starts the HTTP server.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(false)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	serveCmd.Flags().Bool("no-seed", false, "Skip seeding an empty database")
	seedCmd.Flags().Int("users", 20, "Number of demo users")
	seedCmd.Flags().Int("days", 21, "Days of meal history per user")
	seedCmd.Flags().Int64("seed", 42, "Random seed for generated data")

	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd)
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
}

// loadConfig applies --config and configures the global logger.
func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		if err := os.Setenv(config.ConfigPathEnvVar, cfgFile); err != nil {
			return nil, err
		}
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
	return cfg, nil
}
