package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	sim "github.com/seeksim/seeksim/sim"
	"github.com/seeksim/seeksim/sim/trace"
	"github.com/seeksim/seeksim/sim/workload"
)

var (
	batchSpecPath string
	batchPolicies []string
)

// batchCmd runs every scenario in a YAML spec file through the
// selected policies and prints traces, metrics, and a summary.
var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Run every scenario in a YAML scenario spec",
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging()

		spec, err := workload.LoadScenarioSpec(batchSpecPath)
		if err != nil {
			logrus.Fatalf("Failed to load scenario spec: %v", err)
		}
		if err := spec.Validate(); err != nil {
			logrus.Fatalf("Invalid scenario spec: %v", err)
		}
		if err := runBatch(spec, batchPolicies); err != nil {
			logrus.Fatalf("Batch run failed: %v", err)
		}
	},
}

// --- seeksim batch init ---

var batchInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a template scenario spec to stdout",
	Run: func(cmd *cobra.Command, args []string) {
		writeScenarioSpecToStdout(workload.Template())
	},
}

// runBatch schedules every scenario in configuration order and prints
// each trace, per-scenario metrics, and a cross-scenario summary.
func runBatch(spec *workload.ScenarioSpec, policies []string) error {
	simulator, err := sim.NewSimulator(policies)
	if err != nil {
		return err
	}

	var all []*trace.SeekTrace
	for i := range spec.Scenarios {
		sc := &spec.Scenarios[i]
		reqs, err := sc.BuildRequestSet(spec.MaxRequests)
		if err != nil {
			return err
		}

		logrus.Infof("scenario %s: %d requests, head %d", sc.Name, reqs.Len(), reqs.Head())
		fmt.Printf("=== Scenario: %s ===\n", sc.Name)
		result := simulator.Run(reqs)
		for _, tr := range result.Traces {
			fmt.Println()
			tr.Render(os.Stdout)
		}
		fmt.Println()
		result.Metrics.Print()
		fmt.Println()
		all = append(all, result.Traces...)
	}

	printBatchSummary(trace.Summarize(all), policies)
	return nil
}

// printBatchSummary displays cross-scenario totals in the same layout
// as Metrics.Print.
func printBatchSummary(summary *trace.TraceSummary, policies []string) {
	fmt.Println("=== Batch Summary ===")
	fmt.Printf("Traces               : %d\n", summary.TotalTraces)
	fmt.Printf("Steps                : %d\n", summary.TotalSteps)
	fmt.Printf("Zero-Length Seeks    : %d\n", summary.ZeroLengthSeeks)
	for _, policy := range policies {
		fmt.Printf("%-21s: %d\n", fmt.Sprintf("Movement (%s)", policy), summary.MovementByPolicy[policy])
	}
	fmt.Printf("Best Policy          : %s (%d)\n", summary.BestPolicy, summary.BestMovement)
}

// writeScenarioSpecToStdout marshals a ScenarioSpec to YAML and writes it to stdout.
func writeScenarioSpecToStdout(spec *workload.ScenarioSpec) {
	data, err := yaml.Marshal(spec)
	if err != nil {
		logrus.Fatalf("YAML marshal failed: %v", err)
	}
	fmt.Print(string(data))
}

func init() {
	batchCmd.Flags().StringVar(&batchSpecPath, "spec", "", "Path to scenario spec YAML file")
	batchCmd.Flags().StringSliceVar(&batchPolicies, "policies", []string{"fcfs", "scan"}, "Comma-separated scheduling policies (fcfs, scan)")
	batchCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	_ = batchCmd.MarkFlagRequired("spec")

	batchCmd.AddCommand(batchInitCmd)
	rootCmd.AddCommand(batchCmd)
}
