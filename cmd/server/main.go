package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/diarykeeper/internal/buildinfo"
	"github.com/dmitrijs2005/diarykeeper/internal/server"
	"github.com/dmitrijs2005/diarykeeper/internal/server/config"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "diarykeeper-server",
		Short:   "diarykeeper backend: identity, diary entries and AI advice over gRPC",
		Version: buildinfo.Version,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Server settings are read by config.LoadConfig from os.Args, so cobra
// must leave those flags alone.
var passThroughFlags = cobra.FParseErrWhitelist{UnknownFlags: true}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "serve",
		Short:              "Run the gRPC server",
		Args:               cobra.NoArgs,
		FParseErrWhitelist: passThroughFlags,
		RunE: func(cmd *cobra.Command, args []string) error {
			buildinfo.PrintBuildData(os.Stdout)

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
			defer stop()

			app, err := server.NewApp(ctx, config.LoadConfig())
			if err != nil {
				return err
			}
			return app.Run(ctx)
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate [up|down|status]",
		Short: "Apply or inspect database migrations",
		Long: `Run embedded goose migrations against the database given by -d.

Examples:
  diarykeeper-server migrate up -d postgres://localhost/diary
  diarykeeper-server migrate status -c server.yaml`,
		Args:               cobra.MaximumNArgs(1),
		ValidArgs:          []string{"up", "down", "status"},
		FParseErrWhitelist: passThroughFlags,
		RunE: func(cmd *cobra.Command, args []string) error {
			command := "up"
			if len(args) == 1 {
				command = args[0]
			}
			switch command {
			case "up", "down", "status":
			default:
				return fmt.Errorf("unknown migrate command %q", command)
			}

			if err := server.Migrate(cmd.Context(), config.LoadConfig(), command); err != nil {
				return err
			}
			fmt.Printf("migrate %s: done\n", command)
			return nil
		},
	}
}
