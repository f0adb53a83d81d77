package phaser

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"yulite/internal/optimizer"
)

// RunConfig is the TOML shape of a search configuration file.
//
//	corpus = ["bench/a.yulite", "bench/b.yulite"]
//	population = 40
//	generations = 25
//	seed = 7
//	aggregation = "mean"
//	seeds = ["fsu", "[fs]3 u"]
type RunConfig struct {
	Corpus         []string `toml:"corpus"`
	PopulationSize int      `toml:"population"`
	Generations    int      `toml:"generations"`
	Seed           int64    `toml:"seed"`
	MutationRate   float64  `toml:"mutation_rate"`
	DeletionRate   float64  `toml:"deletion_rate"`
	InsertionRate  float64  `toml:"insertion_rate"`
	CrossoverRate  float64  `toml:"crossover_rate"`
	TournamentSize int      `toml:"tournament_size"`
	EliteCount     int      `toml:"elite_count"`
	MaxGeneLength  int      `toml:"max_gene_length"`
	Workers        int      `toml:"workers"`
	Aggregation    string   `toml:"aggregation"`
	MaxDuration    string   `toml:"max_duration"`
	Seeds          []string `toml:"seeds"`
}

// LoadRunConfig reads and decodes a TOML configuration file.
func LoadRunConfig(path string) (*RunConfig, error) {
	var config RunConfig
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return &config, nil
}

// Options translates the file values into search options. Seed sequences
// are written in the compact form and validated here, so a typo in the
// config fails the run up front instead of poisoning generation zero.
func (c *RunConfig) Options() (Options, error) {
	opts := Options{
		PopulationSize: c.PopulationSize,
		Generations:    c.Generations,
		Seed:           c.Seed,
		MutationRate:   c.MutationRate,
		DeletionRate:   c.DeletionRate,
		InsertionRate:  c.InsertionRate,
		CrossoverRate:  c.CrossoverRate,
		TournamentSize: c.TournamentSize,
		EliteCount:     c.EliteCount,
		MaxGeneLength:  c.MaxGeneLength,
		Workers:        c.Workers,
	}

	switch c.Aggregation {
	case "", "sum":
		opts.Aggregation = AggregateSum
	case "mean":
		opts.Aggregation = AggregateMean
	default:
		return Options{}, fmt.Errorf("unknown aggregation %q: want \"sum\" or \"mean\"", c.Aggregation)
	}

	if c.MaxDuration != "" {
		duration, err := time.ParseDuration(c.MaxDuration)
		if err != nil {
			return Options{}, fmt.Errorf("invalid max_duration %q: %w", c.MaxDuration, err)
		}
		opts.MaxDuration = duration
	}

	for _, sequence := range c.Seeds {
		steps, err := optimizer.ValidateSequence(sequence)
		if err != nil {
			return Options{}, fmt.Errorf("invalid seed sequence %q: %w", sequence, err)
		}
		opts.SeedSequences = append(opts.SeedSequences, steps)
	}

	return opts, nil
}
