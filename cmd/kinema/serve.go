package main

import (
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ja7ad/kinema/pkg/server"
)

func NewServeCommand() *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator as an HTTP JSON API",
		Long: `Serve the calculator as an HTTP JSON API.

Endpoints:
  GET  /drives      drive types and efficiencies
  GET  /formulas    reference formulas
  GET  /notation    usage guide and symbol glossary
  POST /calculate   {"power":"1.5","speed":"1500","ratio":"3.5","drive":"gear"}
  GET  /version`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("listen") {
				conf.Listen = listen
			}
			logrus.WithFields(conf.LogrusFields()).Info("config loaded")

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			server.Version = version
			return server.New(conf.DriveType(), logrus.StandardLogger()).Run(ctx, conf.Listen)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "127.0.0.1:8549", "address to listen on")

	return cmd
}
