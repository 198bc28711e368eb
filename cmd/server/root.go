package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/yukikurage/skillswap-api/internal/config"
	"github.com/yukikurage/skillswap-api/internal/logger"
)

var rootFlags struct {
	ConfigFile string
	LogLevel   string
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootFlags.ConfigFile, "config", "c", "", "Path to config file (default: config.yaml in . or ./config)")
	rootCmd.PersistentFlags().StringVar(&rootFlags.LogLevel, "log-level", "", "Log level (debug, info, warn, error), overrides the config file")
}

var rootCmd = &cobra.Command{
	Use:   "skillswap",
	Short: "SkillSwap API server",
	Long:  `SkillSwap lets users trade skills with each other through swap requests, feedback and an admin moderation queue.`,
	Example: `skillswap --config config.yaml
  skillswap migrate
  skillswap protect --email owner@example.com`,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage: true,
	RunE:         runServe,
}

// bootstrap loads configuration and builds the process logger.
func bootstrap() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(rootFlags.ConfigFile)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	if rootFlags.LogLevel != "" {
		cfg.LogLevel = rootFlags.LogLevel
	}

	log := logger.New(cfg.LogLevel, !cfg.IsProduction())
	return cfg, log, nil
}
