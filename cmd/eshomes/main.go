package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/stpnv0/EsHomes/internal/app"
	"github.com/stpnv0/EsHomes/internal/config"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "eshomes",
		Short:        "EsHomes apartment booking service",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(true)
		},
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(reverifyCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	var skipMigrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Apply migrations and start the HTTP server and scheduler",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(!skipMigrate)
		},
	}
	cmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "do not apply pending migrations on start")

	return cmd
}

func serve(migrate bool) error {
	application, err := newApp()
	if err != nil {
		return err
	}

	if migrate {
		if err = application.Migrate("up"); err != nil {
			_ = application.Close()
			return err
		}
	}

	return application.Run()
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|status]",
		Short:     "Run database migrations",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down", "status"},
		RunE: func(cmd *cobra.Command, args []string) error {
			command := "up"
			if len(args) == 1 {
				command = args[0]
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			migrator, err := app.NewMigrator(cfg)
			if err != nil {
				return fmt.Errorf("migrator init: %w", err)
			}
			defer migrator.Close()

			return migrator.Migrate(command)
		},
	}
}

func reverifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reverify <tx_ref> <gateway_transaction_id>",
		Short: "Re-check a transaction with the payment gateway and settle it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApp()
			if err != nil {
				return err
			}
			defer application.Close()

			out, err := application.Reverify(context.Background(), args[0], args[1])
			if err != nil {
				return err
			}

			status := out.Transaction.Status
			switch {
			case out.Replayed:
				fmt.Fprintf(cmd.OutOrStdout(), "%s already %s\n", args[0], status)
			case out.Reason != "":
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s\n", args[0], status, out.Reason)
			default:
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", args[0], status)
			}
			return nil
		},
	}
}

func newApp() (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	application, err := app.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("app init: %w", err)
	}
	return application, nil
}
