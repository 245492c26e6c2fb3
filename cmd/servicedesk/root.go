package main

import (
	"github.com/spf13/cobra"

	"github.com/servicedesk/service-desk/internal/pkg/config"
	"github.com/servicedesk/service-desk/pkg/logger"
)

// cfg is loaded once before any subcommand runs.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:          "servicedesk",
	Short:        "Internal service desk: intake form, ITSM panel and direct messages",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(cmd.Context())
		if err != nil {
			return err
		}
		cfg = loaded
		logger.Init(logger.Options{
			Level:   cfg.LogLevel,
			Pretty:  cfg.IsDevelopment(),
			Service: "servicedesk",
		})
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, seedCmd, userCmd)
}
