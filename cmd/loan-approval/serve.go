package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	httpLayer "loan-approval/http"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		a, err := newApp(ctx, conf)
		if err != nil {
			return err
		}
		defer a.close()

		rateLimiter := httpLayer.NewRateLimiter(conf.RateLimit.Capacity, conf.RateLimit.Refill)
		defer rateLimiter.Stop()

		router := httpLayer.NewRouter(httpLayer.NewApprovalHandler(a.service), rateLimiter)

		opts := httpLayer.ServerOptions{
			Address:         conf.Server.Address,
			ReadTimeout:     conf.Server.ReadTimeout,
			WriteTimeout:    conf.Server.WriteTimeout,
			IdleTimeout:     conf.Server.IdleTimeout,
			ShutdownTimeout: conf.Server.ShutdownTimeout,
		}
		return errors.Wrap(httpLayer.Serve(ctx, opts, router), "server failed")
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
