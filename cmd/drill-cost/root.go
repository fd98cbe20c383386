package main

import (
	"github.com/iwvelando/drill-cost/pkg/constants"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the drill-cost command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "drill-cost",
		Short:         "Estimate drilling cost, fuel, CO2 and performance",
		Long:          "drill-cost evaluates drilling trials (pressure and target depth) and summarises cost, fuel use, CO2 emission, difficulty and a machine recommendation.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("config", constants.DefaultConfigFile, "path to run configuration file")
	root.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	root.AddCommand(newEvaluateCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newVersionCmd())

	return root
}
