package main

import (
	"os"

	"github.com/loggateway/api/gateway/app"
	"github.com/loggateway/api/pkg/logger"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "loggateway",
		Short:         "REST gateway for the hosted logs table",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(newServeCmd())
	return rootCmd
}

func newServeCmd() *cobra.Command {
	var configName, configDir string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the log gateway HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.InitLogger("info", true)
			restApp, err := app.NewRestApp(configName, configDir)
			if err != nil {
				log.Error().Err(err).Msg("failed to build log gateway")
				return err
			}
			restApp.Run()
			return restApp.Err()
		},
	}
	cmd.Flags().StringVar(&configName, "config-name", "gateway_config", "config file name without extension")
	cmd.Flags().StringVar(&configDir, "config-dir", "config", "directory holding the config file")
	return cmd
}
