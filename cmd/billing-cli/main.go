package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	_ "time/tzdata"

	"voice_billing/internal/bootstrap"
	"voice_billing/internal/config"
	"voice_billing/pkg/logger"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "billing-cli",
		Short: "Run billing jobs once, outside the HTTP server",
	}
	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Generate invoices for every company and tenant",
		RunE:  cmdGenerate,
	}
	sweepCmd = &cobra.Command{
		Use:   "sweep-overdue",
		Short: "Mark overdue pending invoices as due",
		RunE:  cmdSweep,
	}
	remindCmd = &cobra.Command{
		Use:   "send-reminders",
		Short: "Send the payment reminders due today",
		RunE:  cmdRemind,
	}

	generateCfg struct {
		Month int
		Year  int
		Send  bool
	}
)

func init() {
	generateCmd.Flags().IntVar(&generateCfg.Month, "month", 0, "billing month 1-12 (default: last completed month)")
	generateCmd.Flags().IntVar(&generateCfg.Year, "year", 0, "billing year (default: year of the last completed month)")
	generateCmd.Flags().BoolVar(&generateCfg.Send, "send", false, "email each new invoice")

	rootCmd.AddCommand(generateCmd, sweepCmd, remindCmd)
}

func container(cmd *cobra.Command) (*bootstrap.Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
	return bootstrap.New(cmd.Context(), cfg)
}

func cmdGenerate(cmd *cobra.Command, _ []string) error {
	c, err := container(cmd)
	if err != nil {
		return err
	}
	defer c.Close()

	var month, year *int
	if cmd.Flags().Changed("month") {
		month = &generateCfg.Month
	}
	if cmd.Flags().Changed("year") {
		year = &generateCfg.Year
	}
	res, err := c.InvoiceUseCase.GenerateForAll(cmd.Context(), month, year, generateCfg.Send)
	if err != nil {
		return err
	}
	return printJSON(res)
}

func cmdSweep(cmd *cobra.Command, _ []string) error {
	c, err := container(cmd)
	if err != nil {
		return err
	}
	defer c.Close()

	res, err := c.SweepUseCase.SweepOverdue(cmd.Context(), nil)
	if err != nil {
		return err
	}
	return printJSON(res)
}

func cmdRemind(cmd *cobra.Command, _ []string) error {
	c, err := container(cmd)
	if err != nil {
		return err
	}
	defer c.Close()

	res, err := c.SweepUseCase.SendReminders(cmd.Context())
	if err != nil {
		return err
	}
	return printJSON(res)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("billing-cli failed")
		stop()
		os.Exit(1)
	}
}
