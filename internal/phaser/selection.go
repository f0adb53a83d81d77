package phaser

import (
	"math/rand"
	"sort"
)

// Population is one generation's worth of candidate sequences.
type Population []*Chromosome

// Best returns the fittest evaluated chromosome, or nil for an empty or
// unevaluated population. Lower fitness is better.
func (p Population) Best() *Chromosome {
	var best *Chromosome
	bestFitness := 0.0
	for _, c := range p {
		fitness, ok := c.Fitness()
		if !ok {
			continue
		}
		if best == nil || fitness < bestFitness {
			best = c
			bestFitness = fitness
		}
	}
	return best
}

// MeanFitness averages the evaluated fitnesses, for progress reporting.
func (p Population) MeanFitness() float64 {
	sum := 0.0
	count := 0
	for _, c := range p {
		if fitness, ok := c.Fitness(); ok {
			sum += fitness
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// sortByFitness orders the population best first. The sort is stable so
// equally fit chromosomes keep their relative order and runs stay
// reproducible.
func (p Population) sortByFitness() {
	sort.SliceStable(p, func(i, j int) bool {
		fi, _ := p[i].Fitness()
		fj, _ := p[j].Fitness()
		return fi < fj
	})
}

// TournamentSelector picks parents by drawing Size chromosomes uniformly at
// random and keeping the fittest. Larger tournaments raise selection
// pressure.
type TournamentSelector struct {
	Size int
}

// Select runs one tournament over the population.
func (s *TournamentSelector) Select(population Population, rng *rand.Rand) *Chromosome {
	size := s.Size
	if size < 1 {
		size = 1
	}
	winner := population[rng.Intn(len(population))]
	winnerFitness, _ := winner.Fitness()
	for i := 1; i < size; i++ {
		challenger := population[rng.Intn(len(population))]
		fitness, _ := challenger.Fitness()
		if fitness < winnerFitness {
			winner = challenger
			winnerFitness = fitness
		}
	}
	return winner
}
