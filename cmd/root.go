package cmd

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

func Start() {
	cfg := newCfg("env")
	slog.SetLogLoggerLevel(slog.Level(cfg.GetInt("log.level")))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := &cobra.Command{}
	cmd := []*cobra.Command{
		{
			Use:   "serve-http",
			Short: "Run HTTP server",
			Run: func(cmd *cobra.Command, args []string) {
				runHttpServerCmd(ctx)
			},
		},
		{
			Use:   "serve-queue:live",
			Short: "Run queue live server",
			Run: func(cmd *cobra.Command, args []string) {
				runQueueLiveCmd(ctx)
			},
		},
		{
			Use:   "serve-queue:expo",
			Short: "Run queue expo server",
			Run: func(cmd *cobra.Command, args []string) {
				runQueueExpoCmd(ctx)
			},
		},
		{
			Use:   "serve-queue:email",
			Short: "Run queue email server",
			Run: func(cmd *cobra.Command, args []string) {
				runQueueEmailCmd(ctx)
			},
		},
		{
			Use:   "client",
			Short: "Run expiry sweep client",
			Run: func(cmd *cobra.Command, args []string) {
				runClientCmd(ctx)
			},
		},
		{
			Use:   "dev",
			Short: "Run dev server, for testing purpose",
			Run: func(cmd *cobra.Command, args []string) {
				runHttpServerCmd(ctx)
			},
			PreRun: func(cmd *cobra.Command, args []string) {
				go func() {
					runQueueLiveCmd(ctx)
				}()
				go func() {
					runQueueExpoCmd(ctx)
				}()
				go func() {
					runQueueEmailCmd(ctx)
				}()
				go func() {
					runClientCmd(ctx)
				}()
			},
		},
	}

	rootCmd.AddCommand(cmd...)
	if err := rootCmd.Execute(); err != nil {
		log.Fatalln(err)
	}
}
