// Package optimizer holds the catalog of semantics-preserving rewrite passes
// over the IR tree, the mandatory normalization passes applied at load time,
// the compact step-sequence grammar, and the code-size metric.
package optimizer

import (
	"sort"

	"yulite/internal/ast"
	"yulite/internal/errors"
)

// Pass is a named rewrite of a program tree. Run mutates the block in place
// and must preserve the program's observable semantics. A pass whose
// precondition holds nowhere is a no-op, never an error.
type Pass interface {
	Name() string
	Abbreviation() byte
	Run(block *ast.Block)
}

// Registry maps step names and one-character abbreviations to passes.
// Built once at process start; immutable afterwards.
type Registry struct {
	byName map[string]Pass
	byAbbr map[byte]Pass
	order  []string
}

func NewRegistry(passes ...Pass) *Registry {
	r := &Registry{
		byName: make(map[string]Pass, len(passes)),
		byAbbr: make(map[byte]Pass, len(passes)),
	}
	for _, pass := range passes {
		if _, dup := r.byName[pass.Name()]; dup {
			panic("optimizer: duplicate pass name " + pass.Name())
		}
		if _, dup := r.byAbbr[pass.Abbreviation()]; dup {
			panic("optimizer: duplicate pass abbreviation " + string(pass.Abbreviation()))
		}
		r.byName[pass.Name()] = pass
		r.byAbbr[pass.Abbreviation()] = pass
		r.order = append(r.order, pass.Name())
	}
	return r
}

var defaultRegistry = NewRegistry(
	&BlockFlattener{},
	&StructuralSimplifier{},
	&UnusedPruner{},
	&ExpressionFolder{},
	&Disambiguator{},
	&FunctionGrouper{},
	&ForLoopInitRewriter{},
)

// DefaultRegistry returns the process-wide step catalog.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// ByName looks up a pass by its full name.
func (r *Registry) ByName(name string) (Pass, error) {
	pass, ok := r.byName[name]
	if !ok {
		return nil, &errors.InvalidOptimizerStep{Token: name, Position: -1}
	}
	return pass, nil
}

// ByAbbreviation looks up a pass by its one-character abbreviation.
func (r *Registry) ByAbbreviation(abbr byte) (Pass, bool) {
	pass, ok := r.byAbbr[abbr]
	return pass, ok
}

// Names returns all registered step names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Abbreviations returns all registered abbreviations, sorted.
func (r *Registry) Abbreviations() []byte {
	abbrs := make([]byte, 0, len(r.byAbbr))
	for abbr := range r.byAbbr {
		abbrs = append(abbrs, abbr)
	}
	sort.Slice(abbrs, func(i, j int) bool { return abbrs[i] < abbrs[j] })
	return abbrs
}
