// Package errors defines the typed failures surfaced by the IR toolchain.
package errors

import (
	"errors"
	"fmt"

	"yulite/internal/ast"
)

// InvalidProgram reports that source text could not be parsed or failed
// semantic analysis. It is fatal to the load call that produced it.
type InvalidProgram struct {
	Message  string
	Position ast.Position
}

func (e *InvalidProgram) Error() string {
	if e.Position.Filename == "" {
		return fmt.Sprintf("invalid program: %s", e.Message)
	}
	return fmt.Sprintf("invalid program: %s:%d:%d: %s",
		e.Position.Filename, e.Position.Line, e.Position.Column, e.Message)
}

// InvalidOptimizerStep reports a step-sequence token that does not name a
// registered rewrite step, or malformed sequence syntax. It is always raised
// before any step runs.
type InvalidOptimizerStep struct {
	Token    string
	Position int // zero-based offset into the sequence text; -1 if unknown
}

func (e *InvalidOptimizerStep) Error() string {
	if e.Position < 0 {
		return fmt.Sprintf("invalid optimizer step %q", e.Token)
	}
	return fmt.Sprintf("invalid optimizer step %q at position %d", e.Token, e.Position)
}

// IsInvalidProgram reports whether err is (or wraps) an InvalidProgram.
func IsInvalidProgram(err error) bool {
	var target *InvalidProgram
	return errors.As(err, &target)
}

// IsInvalidOptimizerStep reports whether err is (or wraps) an InvalidOptimizerStep.
func IsInvalidOptimizerStep(err error) bool {
	var target *InvalidOptimizerStep
	return errors.As(err, &target)
}
