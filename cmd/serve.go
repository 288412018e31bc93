package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/petreg/internal/dashboard"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the interactive dashboard over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := ensureConfig(); err != nil {
			return err
		}
		dsOpt, err := datasetOptions(cfg)
		if err != nil {
			return err
		}
		addr := cfg.ListenAddr
		if serveAddr != "" {
			addr = serveAddr
		}

		srv := dashboard.New(dashboard.Options{
			DataPath:       cfg.DataPath,
			Dataset:        dsOpt,
			Columns:        columnsFrom(cfg),
			PreviewRows:    cfg.PreviewRows,
			Chart:          chartOptions(cfg),
			FontPath:       cfg.FontPath,
			AllowedOrigins: cfg.AllowedOrigins,
		}, logger)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return srv.Run(ctx, addr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config, 127.0.0.1:8501)")
}
