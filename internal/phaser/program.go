// Package phaser wraps IR programs in a load/optimise/measure facade and
// searches the space of optimizer step sequences with a generational genetic
// algorithm, scoring candidate sequences by code size over a benchmark
// corpus.
package phaser

import (
	"yulite/internal/ast"
	"yulite/internal/errors"
	"yulite/internal/optimizer"
	"yulite/internal/parser"
	"yulite/internal/semantic"
)

// Program is a parsed, analyzed, and normalized IR program. After Load the
// tree satisfies the normal form every rewrite pass assumes: globally unique
// names, functions grouped at the end of their blocks, loop initializers
// hoisted.
type Program struct {
	name     string
	root     *ast.Block
	registry *optimizer.Registry
}

// Load parses and analyzes source, then applies the mandatory normalization
// passes. Parse and analysis failures surface as InvalidProgram; nothing is
// ever silently recovered.
func Load(name, source string) (*Program, error) {
	root, parseErrors, scanErrors := parser.ParseSource(name, source)
	if len(scanErrors) > 0 {
		return nil, &errors.InvalidProgram{Message: scanErrors[0].Message, Position: scanErrors[0].Position}
	}
	if len(parseErrors) > 0 {
		return nil, &errors.InvalidProgram{Message: parseErrors[0].Message, Position: parseErrors[0].Position}
	}

	if semanticErrors := semantic.NewAnalyzer().Analyze(root); len(semanticErrors) > 0 {
		return nil, &errors.InvalidProgram{Message: semanticErrors[0].Message, Position: semanticErrors[0].Position}
	}

	program := &Program{name: name, root: root, registry: optimizer.DefaultRegistry()}
	program.normalize()
	return program, nil
}

func (p *Program) normalize() {
	(&optimizer.Disambiguator{}).Run(p.root)
	(&optimizer.FunctionGrouper{}).Run(p.root)
	(&optimizer.ForLoopInitRewriter{}).Run(p.root)
}

// Optimise applies the named steps left to right, each consuming the
// previous step's output. Every name is resolved against the registry before
// the first step runs: an unknown step fails with InvalidOptimizerStep and
// leaves the program untouched.
func (p *Program) Optimise(steps []string) error {
	passes := make([]optimizer.Pass, len(steps))
	for i, step := range steps {
		pass, err := p.registry.ByName(step)
		if err != nil {
			return err
		}
		passes[i] = pass
	}
	for _, pass := range passes {
		pass.Run(p.root)
	}
	return nil
}

// OptimiseSequence validates a compact sequence string and applies it.
func (p *Program) OptimiseSequence(text string) error {
	steps, err := p.registry.ParseSequence(text)
	if err != nil {
		return err
	}
	return p.Optimise(steps)
}

// CodeSize is the program's structural cost, the search's fitness signal.
func (p *Program) CodeSize(includeFunctions bool) int {
	if includeFunctions {
		return optimizer.CodeSizeIncludingFunctions(p.root)
	}
	return optimizer.CodeSize(p.root)
}

// Render produces the program's deterministic textual form, which re-parses
// to an equivalent tree.
func (p *Program) Render() string {
	return p.root.String()
}

// ToJSON dumps the tree for external reporting.
func (p *Program) ToJSON() ([]byte, error) {
	return ast.ToJSON(p.root)
}

// Clone deep-copies the program. Optimise mutates in place, so every
// concurrent evaluation works on its own clone.
func (p *Program) Clone() *Program {
	return &Program{name: p.name, root: p.root.Clone(), registry: p.registry}
}

// Name returns the symbolic name the program was loaded under.
func (p *Program) Name() string {
	return p.name
}

// AST exposes the underlying tree for structural inspection.
func (p *Program) AST() *ast.Block {
	return p.root
}
