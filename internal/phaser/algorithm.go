package phaser

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/tliron/commonlog"
	"golang.org/x/sync/errgroup"

	"yulite/internal/optimizer"
)

// Aggregation selects how per-program code sizes collapse into one fitness
// value.
type Aggregation int

const (
	// AggregateSum totals code size across the corpus, weighting large
	// programs more heavily.
	AggregateSum Aggregation = iota
	// AggregateMean averages code size, giving every program equal say.
	AggregateMean
)

func (a Aggregation) String() string {
	if a == AggregateMean {
		return "mean"
	}
	return "sum"
}

// Options configures a search run. Zero values fall back to the defaults
// applied by withDefaults.
type Options struct {
	PopulationSize int
	Generations    int
	Seed           int64
	MutationRate   float64
	DeletionRate   float64
	InsertionRate  float64
	CrossoverRate  float64
	TournamentSize int
	EliteCount     int
	MaxGeneLength  int
	Workers        int
	Aggregation    Aggregation
	MaxDuration    time.Duration

	// SeedSequences pre-populate the first generation with known good
	// sequences, given as step name lists.
	SeedSequences [][]string
}

func (o Options) withDefaults() Options {
	if o.PopulationSize <= 0 {
		o.PopulationSize = 20
	}
	if o.Generations <= 0 {
		o.Generations = 10
	}
	if o.MutationRate <= 0 {
		o.MutationRate = 0.1
	}
	if o.DeletionRate <= 0 {
		o.DeletionRate = 0.05
	}
	if o.InsertionRate <= 0 {
		o.InsertionRate = 0.1
	}
	if o.CrossoverRate <= 0 {
		o.CrossoverRate = 0.8
	}
	if o.TournamentSize <= 0 {
		o.TournamentSize = 3
	}
	if o.EliteCount <= 0 {
		o.EliteCount = 2
	}
	if o.MaxGeneLength <= 0 {
		o.MaxGeneLength = 30
	}
	if o.Workers <= 0 {
		o.Workers = 4
	}
	return o
}

// Result is the outcome of a search: the best chromosome seen across all
// generations, not just the last one.
type Result struct {
	Best        *Chromosome
	BestFitness float64
	Generations int
}

// Algorithm runs the generational search over a corpus.
type Algorithm struct {
	corpus    *Corpus
	registry  *optimizer.Registry
	opts      Options
	log       commonlog.Logger
	rng       *rand.Rand
	operators *GeneticOperators
	selector  *TournamentSelector
}

// NewAlgorithm wires a search over the corpus. A nil logger falls back to
// the package logger.
func NewAlgorithm(corpus *Corpus, opts Options, log commonlog.Logger) *Algorithm {
	opts = opts.withDefaults()
	if log == nil {
		log = commonlog.GetLogger("phaser")
	}
	registry := optimizer.DefaultRegistry()
	rng := rand.New(rand.NewSource(opts.Seed))
	return &Algorithm{
		corpus:   corpus,
		registry: registry,
		opts:     opts,
		log:      log,
		rng:      rng,
		operators: NewGeneticOperators(rng, registry, opts.MaxGeneLength,
			opts.MutationRate, opts.DeletionRate, opts.InsertionRate),
		selector: &TournamentSelector{Size: opts.TournamentSize},
	}
}

// Run executes the search until the generation budget, the wall-clock
// budget, or the context runs out, whichever comes first. Budgets and
// cancellation are only checked between generations, so a generation in
// flight always finishes and an interrupted run still reports the best
// result found so far. An error is returned only for genuine evaluation
// failures.
func (a *Algorithm) Run(ctx context.Context) (*Result, error) {
	if a.corpus.Len() == 0 {
		return nil, fmt.Errorf("cannot search over an empty corpus")
	}

	deadline := time.Time{}
	if a.opts.MaxDuration > 0 {
		deadline = time.Now().Add(a.opts.MaxDuration)
	}

	population := a.initialPopulation()
	if err := a.evaluate(population); err != nil {
		return nil, err
	}

	best := population.Best().Clone()
	bestFitness, _ := best.Fitness()
	a.logGeneration(0, population, bestFitness)

	generation := 0
	for generation < a.opts.Generations {
		if ctx.Err() != nil {
			a.log.Infof("cancelled after %d generations", generation)
			break
		}
		if !deadline.IsZero() && !time.Now().Before(deadline) {
			a.log.Infof("time budget exhausted after %d generations", generation)
			break
		}

		generation++
		population = a.nextGeneration(population)
		if err := a.evaluate(population); err != nil {
			return nil, err
		}

		if candidate := population.Best(); candidate != nil {
			if fitness, _ := candidate.Fitness(); fitness < bestFitness {
				best = candidate.Clone()
				bestFitness = fitness
			}
		}
		a.logGeneration(generation, population, bestFitness)
	}

	return &Result{Best: best, BestFitness: bestFitness, Generations: generation}, nil
}

func (a *Algorithm) logGeneration(generation int, population Population, bestFitness float64) {
	a.log.Infof("generation %d: best=%.2f mean=%.2f best-sequence=%s",
		generation, bestFitness, population.MeanFitness(), a.bestSequence(population))
}

func (a *Algorithm) bestSequence(population Population) string {
	best := population.Best()
	if best == nil {
		return ""
	}
	return best.Sequence(a.registry)
}

func (a *Algorithm) initialPopulation() Population {
	population := make(Population, 0, a.opts.PopulationSize)
	for _, genes := range a.opts.SeedSequences {
		if len(population) == a.opts.PopulationSize {
			break
		}
		population = append(population, NewChromosome(genes))
	}
	for len(population) < a.opts.PopulationSize {
		population = append(population, RandomChromosome(a.rng, a.registry, a.opts.MaxGeneLength))
	}
	return population
}

// nextGeneration breeds a full replacement population: elites carry over
// unchanged, the rest come from tournament parents recombined and mutated.
// All randomness happens here on the single rng, before any parallel work.
func (a *Algorithm) nextGeneration(population Population) Population {
	population.sortByFitness()

	next := make(Population, 0, a.opts.PopulationSize)
	for i := 0; i < a.opts.EliteCount && i < len(population); i++ {
		next = append(next, population[i].Clone())
	}

	for len(next) < a.opts.PopulationSize {
		parentA := a.selector.Select(population, a.rng)
		parentB := a.selector.Select(population, a.rng)

		var childA, childB *Chromosome
		if a.rng.Float64() < a.opts.CrossoverRate {
			childA, childB = a.operators.Crossover(parentA, parentB)
		} else {
			childA, childB = parentA.Clone(), parentB.Clone()
		}

		next = append(next, a.operators.Mutate(childA))
		if len(next) < a.opts.PopulationSize {
			next = append(next, a.operators.Mutate(childB))
		}
	}
	return next
}

// evaluate fills in the fitness of every chromosome that lacks one. Each
// evaluation clones every corpus program, applies the candidate sequence,
// and aggregates the resulting code sizes. Evaluations are independent, so
// they fan out over the worker pool and rejoin before selection. The group
// is deliberately not tied to the run context: once a generation starts
// evaluating, it runs to completion so cancellation never loses results.
func (a *Algorithm) evaluate(population Population) error {
	var group errgroup.Group
	group.SetLimit(a.opts.Workers)

	for _, chromosome := range population {
		if _, ok := chromosome.Fitness(); ok {
			continue
		}
		chromosome := chromosome
		group.Go(func() error {
			fitness, err := a.fitness(chromosome)
			if err != nil {
				return err
			}
			chromosome.SetFitness(fitness)
			return nil
		})
	}
	return group.Wait()
}

func (a *Algorithm) fitness(chromosome *Chromosome) (float64, error) {
	genes := chromosome.Genes()
	total := 0
	for _, program := range a.corpus.Programs() {
		clone := program.Clone()
		if err := clone.Optimise(genes); err != nil {
			return 0, fmt.Errorf("evaluating %s on %s: %w",
				chromosome.Sequence(a.registry), program.Name(), err)
		}
		total += clone.CodeSize(false)
	}
	if a.opts.Aggregation == AggregateMean {
		return float64(total) / float64(a.corpus.Len()), nil
	}
	return float64(total), nil
}
