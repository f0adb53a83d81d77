package phaser

import (
	"math/rand"

	"yulite/internal/optimizer"
)

// GeneticOperators holds the mutation and recombination machinery. All
// randomness flows through the single injected source, so a fixed seed
// reproduces a run exactly.
type GeneticOperators struct {
	rng      *rand.Rand
	names    []string
	maxGenes int

	MutationRate  float64
	DeletionRate  float64
	InsertionRate float64
}

// NewGeneticOperators builds operators over the registry's step names.
func NewGeneticOperators(rng *rand.Rand, registry *optimizer.Registry, maxGenes int, mutation, deletion, insertion float64) *GeneticOperators {
	if maxGenes < 1 {
		maxGenes = 1
	}
	return &GeneticOperators{
		rng:           rng,
		names:         registry.Names(),
		maxGenes:      maxGenes,
		MutationRate:  mutation,
		DeletionRate:  deletion,
		InsertionRate: insertion,
	}
}

func (g *GeneticOperators) randomGene() string {
	return g.names[g.rng.Intn(len(g.names))]
}

// Mutate produces a mutated copy of the parent, which stays untouched.
// Each boundary independently risks gaining an inserted gene, and each gene
// position independently risks deletion, then replacement. The result is
// clamped to the configured maximum length and never left empty.
func (g *GeneticOperators) Mutate(parent *Chromosome) *Chromosome {
	genes := make([]string, 0, parent.Len()*2+1)
	for _, gene := range parent.Genes() {
		if g.rng.Float64() < g.InsertionRate {
			genes = append(genes, g.randomGene())
		}
		if g.rng.Float64() < g.DeletionRate {
			continue
		}
		if g.rng.Float64() < g.MutationRate {
			gene = g.randomGene()
		}
		genes = append(genes, gene)
	}
	if g.rng.Float64() < g.InsertionRate {
		genes = append(genes, g.randomGene())
	}

	if len(genes) > g.maxGenes {
		genes = genes[:g.maxGenes]
	}
	if len(genes) == 0 {
		genes = append(genes, g.randomGene())
	}
	return &Chromosome{genes: genes}
}

// Crossover recombines two parents with a single cut point chosen
// independently in each, so offspring lengths can differ from both parents.
// Parents stay untouched.
func (g *GeneticOperators) Crossover(a, b *Chromosome) (*Chromosome, *Chromosome) {
	cutA := g.rng.Intn(a.Len() + 1)
	cutB := g.rng.Intn(b.Len() + 1)

	left := a.Genes()
	right := b.Genes()

	first := append(append([]string(nil), left[:cutA]...), right[cutB:]...)
	second := append(append([]string(nil), right[:cutB]...), left[cutA:]...)

	if len(first) > g.maxGenes {
		first = first[:g.maxGenes]
	}
	if len(second) > g.maxGenes {
		second = second[:g.maxGenes]
	}
	if len(first) == 0 {
		first = append(first, g.randomGene())
	}
	if len(second) == 0 {
		second = append(second, g.randomGene())
	}
	return &Chromosome{genes: first}, &Chromosome{genes: second}
}
