package cmd

import (
	"errors"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/seeksim/seeksim/sim"
)

var (
	// CLI flags for the interactive scheduling session
	logLevel    string   // Log verbosity level
	maxRequests int      // Capacity limit for one request set
	policies    []string // Scheduling policies to run, in order
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "seeksim",
	Short: "Disk-head scheduling simulator",
}

// configureLogging applies the --log flag to the global logger.
func configureLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// runCmd executes one interactive scheduling session on the console
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run an interactive scheduling session",
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging()

		sess := newSession(os.Stdin, os.Stdout)
		if err := sess.Run(maxRequests, policies); err != nil {
			if errors.Is(err, sim.ErrCapacityExceeded) {
				// The session already printed the capacity message.
				os.Exit(1)
			}
			logrus.Fatalf("Session failed: %v", err)
		}
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().IntVar(&maxRequests, "max-requests", sim.DefaultMaxRequests, "Maximum number of requests in one session")
	runCmd.Flags().StringSliceVar(&policies, "policies", []string{"fcfs", "scan"}, "Comma-separated scheduling policies (fcfs, scan)")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
