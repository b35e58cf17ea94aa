package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ja7ad/kinema/pkg/config"
)

var version = "dev"

var (
	logLevel   = ""
	configPath = ""
)

func setupLogger(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %v", err)
	}
	logrus.SetLevel(lvl)
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{})
	if term.IsTerminal(int(os.Stderr.Fd())) {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.Kitchen,
		})
	}
	return nil
}

// loadConfig reads --config and applies --log-level over it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	conf, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("log-level") {
		conf.LogLevel = logLevel
	}
	if err := setupLogger(conf.LogLevel); err != nil {
		return nil, err
	}
	logrus.WithFields(conf.LogrusFields()).Debug("config loaded")
	return conf, nil
}

func main() {
	if err := NewCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kinema",
		Short: "Kinematic calculator for mechanical drives",
		Long: `kinema computes the kinematics of a single mechanical drive stage.

From input power (kW), input speed (rpm) and transmission ratio it derives:
  M_in  = 9549 × P / n     input torque, N·m
  n_out = n / i            output speed, rpm
  M_out = M_in × i         output torque, N·m

Usage:
  1. Optionally pick a drive type with --drive (belt, chain, gear, worm).
  2. Give power (-p, kW), input speed (-n, rpm) and ratio (-i).
  3. Read input torque, output speed and output torque.
Run "kinema notation" for the symbol glossary.

Examples:
  kinema calc -p 1.5 -n 1500 -i 3.5
  kinema calc -p 10 -n 1000 -i 2 --drive gear --json out.json
  kinema drives
  kinema serve --listen 127.0.0.1:8549`,
		SilenceUsage: true,
	}

	globalFlags := cmd.PersistentFlags()
	globalFlags.StringVarP(&logLevel, "log-level", "l", "info", "log level (trace, debug, info, warn, error, fatal, panic)")
	globalFlags.StringVar(&configPath, "config", defaultConfigPath(), "config file path")

	cmd.AddCommand(
		NewCalcCommand(),
		NewDrivesCommand(),
		NewFormulasCommand(),
		NewNotationCommand(),
		NewServeCommand(),
		NewVersionCommand(),
	)

	return cmd
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "kinema", "config.json")
}

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("kinema %s\n", version)
		},
	}
}
