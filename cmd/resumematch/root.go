package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"alfredoptarigan/resume-matcher/internal/config"
	"alfredoptarigan/resume-matcher/internal/logger"
)

const app = "resumematch"

var rootCmd = &cobra.Command{
	Use:           app,
	Short:         "resumematch scores a folder of candidate resumes against a reference resume",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

// setup loads the environment configuration and builds the logger. Flags
// override LOG_JSON and LOG_DEBUG.
func setup() (*config.Config, *zap.Logger, error) {
	cfg := config.Load()

	jsonLogs := cfg.Log.JSON || viper.GetBool("json")
	debug := cfg.Log.Debug || viper.GetBool("debug")

	log, err := logger.New(jsonLogs, debug)
	if err != nil {
		return nil, nil, fmt.Errorf("creating a logger: %w", err)
	}

	return cfg, log, nil
}
