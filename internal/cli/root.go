// Package cli provides the command-line interface for bayesnet.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cdrcknt/Bayesian-MedicalDiagnosis/diagnosis"
	"github.com/cdrcknt/Bayesian-MedicalDiagnosis/internal/config"
	"github.com/cdrcknt/Bayesian-MedicalDiagnosis/model"
	"github.com/cdrcknt/Bayesian-MedicalDiagnosis/modelfile"
)

// Version information (set at build time).
var Version = "0.1.0"

// configKey is used to store config in context.
type configKey struct{}

var errNoConfig = errors.New("cli: configuration not loaded")

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "bayesnet",
		Short: "Discrete Bayesian network sampler",
		Long: `bayesnet validates discrete Bayesian networks and draws synthetic
observations from them by forward sampling.

Without --model the built-in Smoking → LungCancer → ShortnessOfBreath
network is used; its probabilities can be adjusted with --smoking-rate,
--cancer-given-smoker and related flags.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			logger, err := config.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel)
			if err != nil {
				return err
			}
			if cfg.File != "" {
				logger.Debug("using config file", "path", cfg.File)
			}

			ctx := context.WithValue(cmd.Context(), configKey{}, cfg)
			cmd.SetContext(config.WithLogger(ctx, logger))

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./bayesnet.yaml)")
	config.RegisterFlags(rootCmd.PersistentFlags())

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return config.Outputs, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(NewSampleCommand())
	rootCmd.AddCommand(NewSummaryCommand())
	rootCmd.AddCommand(NewCheckCommand())
	rootCmd.AddCommand(NewOrderCommand())
	rootCmd.AddCommand(NewExportCommand())

	return rootCmd
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	rootCmd := NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// getConfig retrieves the loaded config from the command context.
func getConfig(cmd *cobra.Command) (*config.Config, error) {
	if cfg, ok := cmd.Context().Value(configKey{}).(*config.Config); ok {
		return cfg, nil
	}
	return nil, errNoConfig
}

// loadModel reads cfg.Model, or builds the diagnosis network when it is empty.
func loadModel(cmd *cobra.Command, cfg *config.Config) (*model.Model, error) {
	logger := config.GetLogger(cmd.Context())
	if cfg.Model == "" {
		logger.Debug("using built-in diagnosis network", "params", cfg.Diagnosis)
		return diagnosis.NewModel(cfg.Diagnosis)
	}

	logger.Debug("loading model", "path", cfg.Model)
	m, err := modelfile.Load(cfg.Model)
	if err != nil {
		return nil, err
	}
	logger.Debug("model loaded", "variables", len(m.Order()), "edges", len(m.Edges()))

	return m, nil
}
