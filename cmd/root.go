// Package cmd wires the gridsim command-line interface: the step-by-step
// fault simulation scenario and the snapshot exporter.
package cmd

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Execute runs the root command with the given context and build version.
func Execute(ctx context.Context, version string) {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:     "gridsim",
		Short:   "Transmission-network fault simulation with sqrt(n) sensor localization",
		Version: version,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(newSimulateCmd(ctx))
	rootCmd.AddCommand(newExportCmd(ctx))

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
