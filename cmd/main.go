package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"unitdesk/internal/cli"
	"unitdesk/internal/logger"
	"unitdesk/internal/repository"
	"unitdesk/internal/repository/db"
	"unitdesk/internal/service"
)

// version is stamped at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
		noColor    bool
	)

	cmd := &cobra.Command{
		Use:           "unitdesk",
		Short:         "Interactive unit conversions and calculations",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(configPath, logLevel, noColor)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to config file (default configs/config.yml when present)")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	return cmd
}

func runSession(configPath, logLevel string, noColor bool) error {
	if err := loadConfig(configPath); err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	if logLevel == "" {
		logLevel = viper.GetString("log.level")
	}
	log := logger.Get(logLevel)

	applyColorMode(noColor)

	database, err := db.InitDB()
	if err != nil {
		return fmt.Errorf("init in-memory store: %w", err)
	}
	defer func() {
		if cerr := database.Close(); cerr != nil {
			log.Errorw("close store", "err", cerr)
		}
	}()

	repos := repository.NewRepository(database)
	services := service.NewService(repos)

	// end the session loop on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	session := cli.NewSession(services, log, os.Stdin, os.Stdout)
	return session.Run(ctx)
}

// loadConfig applies defaults and merges the optional config file. A missing
// file is only an error when a path was given explicitly.
func loadConfig(path string) error {
	viper.SetDefault("log.level", logger.ErrorLevel)
	viper.SetDefault("display.color", "auto")

	if path != "" {
		viper.SetConfigFile(path)
		return viper.ReadInConfig()
	}

	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	return nil
}

// applyColorMode resolves the color setting. fatih/color already disables
// itself when stdout is not a terminal, so "auto" needs no handling here.
func applyColorMode(noColorFlag bool) {
	if noColorFlag || viper.GetString("display.color") == "never" {
		color.NoColor = true
	}
}
