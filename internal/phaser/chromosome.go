package phaser

import (
	"math/rand"
	"strings"

	"yulite/internal/optimizer"
)

// Chromosome is a candidate optimizer sequence: an ordered list of step
// names plus a cached fitness. Genes are never mutated in place; the genetic
// operators build fresh chromosomes with an empty cache, so a cached fitness
// always belongs to the genes it was computed for.
type Chromosome struct {
	genes     []string
	fitness   float64
	evaluated bool
}

// NewChromosome builds a chromosome over the given step names. The slice is
// copied, callers keep ownership of theirs.
func NewChromosome(genes []string) *Chromosome {
	return &Chromosome{genes: append([]string(nil), genes...)}
}

// RandomChromosome draws a uniformly random gene list of length 1..maxLen
// from the registry's step names.
func RandomChromosome(rng *rand.Rand, registry *optimizer.Registry, maxLen int) *Chromosome {
	names := registry.Names()
	if maxLen < 1 {
		maxLen = 1
	}
	length := 1 + rng.Intn(maxLen)
	genes := make([]string, length)
	for i := range genes {
		genes[i] = names[rng.Intn(len(names))]
	}
	return &Chromosome{genes: genes}
}

// Genes returns a copy of the step names.
func (c *Chromosome) Genes() []string {
	return append([]string(nil), c.genes...)
}

// Len is the number of genes.
func (c *Chromosome) Len() int {
	return len(c.genes)
}

// Fitness returns the cached fitness and whether it is valid.
func (c *Chromosome) Fitness() (float64, bool) {
	return c.fitness, c.evaluated
}

// SetFitness records an evaluation result.
func (c *Chromosome) SetFitness(fitness float64) {
	c.fitness = fitness
	c.evaluated = true
}

// Clone deep-copies the chromosome, cached fitness included.
func (c *Chromosome) Clone() *Chromosome {
	clone := &Chromosome{
		genes:     append([]string(nil), c.genes...),
		fitness:   c.fitness,
		evaluated: c.evaluated,
	}
	return clone
}

// Sequence renders the genes in the compact one-letter form, so any
// chromosome can be fed back through sequence parsing.
func (c *Chromosome) Sequence(registry *optimizer.Registry) string {
	var sb strings.Builder
	for _, gene := range c.genes {
		pass, err := registry.ByName(gene)
		if err != nil {
			sb.WriteByte('?')
			continue
		}
		sb.WriteByte(pass.Abbreviation())
	}
	return sb.String()
}
