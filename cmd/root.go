package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/mixology-sim/sim"
	"github.com/inference-sim/mixology-sim/sim/workload"
)

var (
	// CLI flags for the run command
	numOrders     int      // Number of orders to simulate
	seed          int64    // Seed for order generation
	workers       int      // Concurrent shards for generation and evaluation (0 = NumCPU)
	chunkSize     int      // Orders per independently seeded generation chunk (0 = single stream)
	strategyNames []string // Strategies to evaluate (empty = all)
	format        string   // Report format: text or json
	traceLevel    string   // Decision trace level: none or decisions
	configPath    string   // Optional YAML run config
	logLevel      string   // Log verbosity level
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "mixology-sim",
	Short: "Monte Carlo comparison of mixology order completion strategies",
}

// runCmd generates orders and evaluates the strategies using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Simulate orders and report each strategy's output:input ratios",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg := DefaultRunConfig()
		if configPath != "" {
			cfg, err = LoadRunConfig(configPath)
			if err != nil {
				logrus.Fatalf("%v", err)
			}
			logrus.Infof("Loaded run config from %s", configPath)
		}
		applyFlagOverrides(cmd, cfg)

		report, err := Simulate(context.Background(), cfg)
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		if err := report.Write(os.Stdout, cfg.Format); err != nil {
			logrus.Fatalf("Writing report: %v", err)
		}
		logrus.Infof("Simulation complete in %v.", report.Elapsed)
	},
}

// applyFlagOverrides copies explicitly set flags over the config; flags left at their
// defaults never override values from a config file.
func applyFlagOverrides(cmd *cobra.Command, cfg *RunConfig) {
	flags := cmd.Flags()
	if flags.Changed("orders") || configPath == "" {
		cfg.Workload.NumOrders = numOrders
	}
	if flags.Changed("seed") || configPath == "" {
		cfg.Workload.Seed = seed
	}
	if flags.Changed("workers") || configPath == "" {
		cfg.Workload.Workers = workers
	}
	if flags.Changed("chunk-size") || configPath == "" {
		cfg.Workload.ChunkSize = chunkSize
	}
	if flags.Changed("strategies") || configPath == "" {
		cfg.Strategies = strategyNames
	}
	if flags.Changed("format") || configPath == "" {
		cfg.Format = format
	}
	if flags.Changed("trace") || configPath == "" {
		cfg.Trace = traceLevel
	}
}

// catalogCmd prints the potion catalog with sampling probabilities
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the potion catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		sampler, err := workload.NewDefaultSampler()
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "RANK\tKIND\tINPUT\tOUTPUT\tWEIGHT\tPROBABILITY")
		for _, k := range sim.Kinds() {
			info := k.Info()
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%.4f\n", k, k, info.Input, info.Output, info.Weight, sampler.Probability(k))
		}
		return tw.Flush()
	},
}

// strategiesCmd lists the registered strategies in report order
var strategiesCmd = &cobra.Command{
	Use:   "strategies",
	Short: "List the available strategies",
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, s := range sim.AllStrategies() {
			fmt.Fprintf(tw, "%s\t%s\n", s.Name(), s.Description())
		}
		return tw.Flush()
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
	defaults := workload.DefaultWorkloadSpec()

	runCmd.Flags().IntVar(&numOrders, "orders", defaults.NumOrders, "Number of orders to simulate")
	runCmd.Flags().Int64Var(&seed, "seed", defaults.Seed, "Seed for order generation")
	runCmd.Flags().IntVar(&workers, "workers", defaults.Workers, "Concurrent shards for generation and evaluation (0 = one per CPU)")
	runCmd.Flags().IntVar(&chunkSize, "chunk-size", defaults.ChunkSize, "Orders per independently seeded generation chunk (0 = single stream)")
	runCmd.Flags().StringSliceVar(&strategyNames, "strategies", nil, "Comma-separated strategies to evaluate (default all)")
	runCmd.Flags().StringVar(&format, "format", FormatText, "Report format (text, json)")
	runCmd.Flags().StringVar(&traceLevel, "trace", "none", "Decision trace level (none, decisions)")
	runCmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML run config; explicitly set flags override it")
	runCmd.Flags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(strategiesCmd)
}
