package app

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// Execute runs the CLI. With no subcommand it serves.
func Execute() error {
	return buildRootCmd().ExecuteContext(context.Background())
}

func buildRootCmd() *cobra.Command {
	var configPath string
	serve := buildServeCmd(&configPath)
	cmd := &cobra.Command{
		Use:          "whiteboard",
		Short:        "Realtime collaborative whiteboard backend",
		SilenceUsage: true,
		RunE:         serve.RunE,
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to YAML configuration file")
	cmd.AddCommand(serve, buildMigrateCmd(&configPath))
	return cmd
}

func buildServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP and websocket server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return GetApp().LetsGo(ctx, *configPath)
		},
	}
}

func buildMigrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			return GetApp().Migrate(cmd.Context(), *configPath)
		},
	}
}
