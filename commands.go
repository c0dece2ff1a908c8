package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"gestaobikes/schemas"
	"gestaobikes/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const SHUTDOWN_TIMEOUT = 15 * time.Second

var rootCmd = &cobra.Command{
	Use:           "gestaobikes",
	Short:         "Painel de gestão da loja de bikes elétricas",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE:  runServe,
}

var (
	reportMode string
	reportDate string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the dashboard of a period as JSON",
	Long: `Compute the dashboard straight from the store and print it.

  gestaobikes report --mode month --date 2025-11-19`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportMode, "mode", schemas.REPORT_PERIOD_MONTH, "Period mode: day, month or year")
	reportCmd.Flags().StringVar(&reportDate, "date", "", "Reference date, YYYY-MM-DD (default: today)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(reportCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := setup(ctx)
	if err != nil {
		return err
	}
	defer a.close(context.Background())

	server := &http.Server{
		Addr:              ":" + a.cfg.Port,
		Handler:           a.router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("Servidor iniciado", zap.String("port", a.cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	a.logger.Info("Encerrando servidor")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), SHUTDOWN_TIMEOUT)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func runReport(cmd *cobra.Command, args []string) error {
	if !schemas.ValidPeriodMode(reportMode) {
		return fmt.Errorf("modo de período inválido %q, use day, month ou year", reportMode)
	}

	ctx := cmd.Context()
	a, err := setup(ctx)
	if err != nil {
		return err
	}
	defer a.close(ctx)

	ref, ok, err := utils.ParseQueryDate(reportDate, a.cfg.Location)
	if err != nil {
		return err
	}
	if !ok {
		ref = a.now()
	}

	dashboard, err := a.reportHandler().Dashboard(ctx, reportMode, ref)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(dashboard)
}
