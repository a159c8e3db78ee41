// Package cmd provides the command-line interface for pagesim.
package cmd

import (
	"os"

	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
	"github.com/spf13/cobra"
)

// cli holds what the persistent flags and config resolve to for one
// invocation.
type cli struct {
	cfgFile  string
	envFile  string
	logLevel string
	logFile  string

	opts     util.Options
	closeLog func() error
}

// NewRootCmd builds the command tree. Every call returns independent state.
func NewRootCmd() *cobra.Command {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:   "pagesim",
		Short: "Simulate FIFO, LRU, Optimal and Clock page replacement.",
		Long: `pagesim replays a page reference string against a fixed number of ` +
			`frames under one or more replacement policies and reports faults, ` +
			`hits and hit ratio. It can also check FIFO for Belady's Anomaly.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts, err := util.LoadOptions(c.cfgFile, c.envFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				opts.LogLevel = c.logLevel
			}
			if cmd.Flags().Changed("log-file") {
				opts.LogFile = c.logFile
			}
			closer, err := util.InitLogger(cmd.ErrOrStderr(), opts.LogFile, opts.LogLevel)
			if err != nil {
				return err
			}
			c.opts = opts
			c.closeLog = closer
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if c.closeLog == nil {
				return nil
			}
			return c.closeLog()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&c.cfgFile, "config", "", "YAML config file")
	flags.StringVar(&c.envFile, "env-file", ".env", "dotenv file with PAGESIM_* variables")
	flags.StringVar(&c.logLevel, "log-level", "INFO", "DEBUG, INFO, WARN or ERROR")
	flags.StringVar(&c.logFile, "log-file", "", "also append logs to this file")

	rootCmd.AddCommand(
		newRunCmd(c),
		newAnomalyCmd(c),
		newCurveCmd(c),
		newGenCmd(c),
	)
	return rootCmd
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
