package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"

	"yulite/internal/optimizer"
	"yulite/internal/phaser"
)

var (
	flagConfig      string
	flagPopulation  int
	flagGenerations int
	flagSeed        int64
	flagWorkers     int
	flagMean        bool
	flagMaxDuration time.Duration
	flagVerbosity   int

	rootCmd = &cobra.Command{
		Use:   "yulite-phaser [flags] <program>...",
		Short: "Search for good optimizer step sequences with a genetic algorithm",
		Long: `yulite-phaser loads a corpus of IR programs and evolves optimizer step
sequences generation by generation, scoring each candidate by the total
code size it achieves across the corpus.

Corpus programs can be given as arguments or through a TOML config file.`,
		Args: cobra.ArbitraryArgs,
		RunE: run,
	}
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", color.RedString("error"), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "TOML configuration file")
	rootCmd.Flags().IntVarP(&flagPopulation, "population", "p", 0, "population size")
	rootCmd.Flags().IntVarP(&flagGenerations, "generations", "g", 0, "number of generations")
	rootCmd.Flags().Int64VarP(&flagSeed, "seed", "s", 0, "random seed (same seed, same run)")
	rootCmd.Flags().IntVarP(&flagWorkers, "workers", "w", 0, "parallel fitness evaluations")
	rootCmd.Flags().BoolVar(&flagMean, "mean", false, "average code size across the corpus instead of summing")
	rootCmd.Flags().DurationVar(&flagMaxDuration, "max-duration", 0, "wall clock budget, e.g. 30s")
	rootCmd.Flags().IntVarP(&flagVerbosity, "verbose", "v", 0, "log verbosity")
}

func run(cmd *cobra.Command, args []string) error {
	commonlog.Configure(flagVerbosity, nil)

	opts, corpusPaths, err := resolveOptions(args)
	if err != nil {
		return err
	}
	if len(corpusPaths) == 0 {
		return fmt.Errorf("no corpus programs given: pass file arguments or a config with a corpus list")
	}

	corpus, err := phaser.LoadCorpus(corpusPaths)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	algorithm := phaser.NewAlgorithm(corpus, opts, commonlog.GetLogger("phaser"))
	result, err := algorithm.Run(ctx)
	if err != nil {
		return err
	}

	registry := optimizer.DefaultRegistry()
	fmt.Printf("best sequence after %d generations: %s (fitness %.2f)\n",
		result.Generations, result.Best.Sequence(registry), result.BestFitness)
	for _, step := range result.Best.Genes() {
		fmt.Printf("  %s\n", step)
	}
	color.Green("Done")
	return nil
}

// resolveOptions merges the config file, if any, with the command line.
// Flags that were set explicitly win over the file.
func resolveOptions(args []string) (phaser.Options, []string, error) {
	opts := phaser.Options{}
	corpusPaths := args

	if flagConfig != "" {
		config, err := phaser.LoadRunConfig(flagConfig)
		if err != nil {
			return phaser.Options{}, nil, err
		}
		opts, err = config.Options()
		if err != nil {
			return phaser.Options{}, nil, err
		}
		if len(corpusPaths) == 0 {
			corpusPaths = config.Corpus
		}
	}

	if flagPopulation > 0 {
		opts.PopulationSize = flagPopulation
	}
	if flagGenerations > 0 {
		opts.Generations = flagGenerations
	}
	if flagSeed != 0 {
		opts.Seed = flagSeed
	}
	if flagWorkers > 0 {
		opts.Workers = flagWorkers
	}
	if flagMean {
		opts.Aggregation = phaser.AggregateMean
	}
	if flagMaxDuration > 0 {
		opts.MaxDuration = flagMaxDuration
	}

	return opts, corpusPaths, nil
}
