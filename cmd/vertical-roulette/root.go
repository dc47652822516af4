package main

import (
	"fmt"

	fyneapp "fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"vertical-roulette/internal/app"
	"vertical-roulette/internal/config"
	"vertical-roulette/internal/logger"
)

type globalFlags struct {
	configPath string
	logLevel   string
	seed       uint64
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "vertical-roulette",
		Short: "Slot-machine style roulette that always lands on the winner.",
		Long: `Opens a window with a vertical roulette. Pressing the spin button ` +
			`scrolls the labels upward until the winning label settles in the ` +
			`center slot.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := flags.load(cmd)
			if err != nil {
				return err
			}

			application, err := app.NewApplication(fyneapp.NewWithID(app.AppID), cfg, log)
			if err != nil {
				log.Error("Main", err, nil)
				log.Shutdown()
				return err
			}
			return application.Run()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "",
		"YAML configuration file (defaults to $"+config.EnvConfig+")")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "",
		"log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Uint64Var(&flags.seed, "seed", 0,
		"fix the random sequence; 0 seeds from the clock")

	rootCmd.AddCommand(newSimulateCmd(flags))

	return rootCmd
}

// load resolves configuration, applies command line overrides and builds the
// logger.
func (f *globalFlags) load(cmd *cobra.Command) (*config.Config, *logger.ZerologAdapter, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load configuration: %w", err)
	}

	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
	if cmd.Flags().Changed("seed") {
		cfg.Roulette.Seed = f.seed
	}

	log, err := logger.New(logger.Options{
		Level: cfg.Log.Level,
		File:  cfg.Log.File,
	})
	if err != nil {
		return nil, nil, err
	}

	return cfg, log, nil
}
