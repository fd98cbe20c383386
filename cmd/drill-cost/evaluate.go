package main

import (
	"errors"
	"fmt"

	"github.com/iwvelando/drill-cost/internal/analysis"
	"github.com/iwvelando/drill-cost/internal/config"
	"github.com/iwvelando/drill-cost/internal/logging"
	"github.com/iwvelando/drill-cost/pkg/aggregate"
	"github.com/iwvelando/drill-cost/pkg/constants"
	"github.com/iwvelando/drill-cost/pkg/output"
	"github.com/iwvelando/drill-cost/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// errNoValidTrials is returned to main so the process exits non-zero; the
// warning itself has already been printed.
var errNoValidTrials = errors.New("no valid trials to evaluate")

func newEvaluateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate the configured trials and print the report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			logLevel, _ := cmd.Flags().GetString("log-level")
			formatFlag, _ := cmd.Flags().GetString("output-format")

			conf, err := config.LoadConfiguration(cfgPath)
			if err != nil {
				return fmt.Errorf("failed to load configuration at %s: %w", cfgPath, err)
			}

			logger, err := logging.New(conf.Logging, logLevel)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer func() {
				_ = logger.Sync()
			}()

			outputFormat := conf.Output.Format
			if formatFlag != "" {
				outputFormat = formatFlag
			}
			if outputFormat == "" {
				outputFormat = constants.OutputFormatPretty
			}
			if err := validation.ValidateOutputFormat(outputFormat); err != nil {
				return err
			}

			if err := conf.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			for _, warning := range conf.ValidateConfiguration() {
				logger.Warn("Configuration warning: "+warning,
					zap.String("op", "evaluate"),
				)
			}

			report, err := analysis.Run(logger, *conf)
			if errors.Is(err, aggregate.ErrEmptyInput) {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: none of the %d configured trials has a positive pressure and target depth, nothing to report.\n", len(conf.Trials))
				return errNoValidTrials
			}
			if err != nil {
				return fmt.Errorf("failed to run analysis: %w", err)
			}

			logger.Info(fmt.Sprintf("evaluated %d trials, skipped %d", len(report.Trials), report.SkippedTrials),
				zap.String("op", "evaluate"),
				zap.String("run_id", report.ID),
			)

			return output.Write(cmd.OutOrStdout(), outputFormat, report)
		},
	}

	cmd.Flags().String("output-format", "", "output format override: pretty, csv, json")
	return cmd
}
