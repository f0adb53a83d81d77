package phaser

import (
	"fmt"
	"os"
	"path/filepath"
)

// Corpus is the fixed set of benchmark programs every candidate sequence is
// scored against. Programs are normalized once at load; evaluations clone
// them rather than re-parsing.
type Corpus struct {
	programs []*Program
}

// NewCorpus builds a corpus from already loaded programs.
func NewCorpus(programs ...*Program) *Corpus {
	return &Corpus{programs: programs}
}

// LoadCorpus reads and loads every path. A file that fails to read or parse
// aborts the whole load; a corpus with broken members would silently skew
// every fitness comparison.
func LoadCorpus(paths []string) (*Corpus, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("corpus is empty: at least one program file is required")
	}
	programs := make([]*Program, 0, len(paths))
	for _, path := range paths {
		source, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading corpus file %s: %w", path, err)
		}
		program, err := Load(filepath.Base(path), string(source))
		if err != nil {
			return nil, fmt.Errorf("loading corpus file %s: %w", path, err)
		}
		programs = append(programs, program)
	}
	return &Corpus{programs: programs}, nil
}

// Programs returns the member programs.
func (c *Corpus) Programs() []*Program {
	return c.programs
}

// Len is the number of programs.
func (c *Corpus) Len() int {
	return len(c.programs)
}
