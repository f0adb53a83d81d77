package optimizer

import (
	"fmt"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"yulite/internal/errors"
)

// Compact step-sequence grammar: one lowercase letter per step, optional
// grouping with brackets, and an optional decimal repeat count after a step
// or group. Whitespace is insignificant.
//
//	fsu        BlockFlattener, StructuralSimplifier, UnusedPruner
//	f2         BlockFlattener twice
//	[fs]3 u    the pair flatten+simplify three times, then UnusedPruner

var sequenceLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{Name: "Step", Pattern: `[a-z]`},
		{Name: "Int", Pattern: `[0-9]+`},
		{Name: "LBracket", Pattern: `\[`},
		{Name: "RBracket", Pattern: `\]`},
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	},
})

type stepSequence struct {
	Items []*stepItem `parser:"@@*"`
}

type stepItem struct {
	Pos    lexer.Position
	Step   string     `parser:"( @Step"`
	Group  *stepGroup `parser:"| @@ )"`
	Repeat string     `parser:"@Int?"`
}

type stepGroup struct {
	Items []*stepItem `parser:"'[' @@* ']'"`
}

var sequenceParser = buildSequenceParser()

func buildSequenceParser() *participle.Parser[stepSequence] {
	p, err := participle.Build[stepSequence](
		participle.Lexer(sequenceLexer),
		participle.Elide("Whitespace"),
	)
	if err != nil {
		panic(fmt.Errorf("failed to build sequence parser: %w", err))
	}
	return p
}

// Repeat counts are capped per token, and the fully expanded step list is
// capped in total. The total cap is what actually bounds memory: nested
// groups multiply, so per-token limits alone allow a short string like
// [[f]1000]1000 to denote a million steps.
const (
	maxRepeat = 1000
	maxSteps  = 1000
)

// ParseSequence validates a compact sequence string against the registry and
// expands it into the ordered list of step names it denotes. Any unknown
// letter or malformed syntax fails with InvalidOptimizerStep before anything
// is returned, so callers can rely on all-or-nothing validation.
func (r *Registry) ParseSequence(text string) ([]string, error) {
	seq, err := sequenceParser.ParseString("", text)
	if err != nil {
		return nil, sequenceSyntaxError(text, err)
	}
	steps := []string{}
	if err := r.expandItems(seq.Items, &steps); err != nil {
		return nil, err
	}
	return steps, nil
}

// ValidateSequence is ParseSequence against the default registry.
func ValidateSequence(text string) ([]string, error) {
	return DefaultRegistry().ParseSequence(text)
}

func (r *Registry) expandItems(items []*stepItem, out *[]string) error {
	for _, item := range items {
		repeat := 1
		if item.Repeat != "" {
			n, err := strconv.Atoi(item.Repeat)
			if err != nil || n > maxRepeat {
				return &errors.InvalidOptimizerStep{Token: item.Repeat, Position: item.Pos.Offset}
			}
			repeat = n
		}

		var expansion []string
		if item.Group != nil {
			if err := r.expandItems(item.Group.Items, &expansion); err != nil {
				return err
			}
		} else {
			pass, ok := r.ByAbbreviation(item.Step[0])
			if !ok {
				return &errors.InvalidOptimizerStep{Token: item.Step, Position: item.Pos.Offset}
			}
			expansion = []string{pass.Name()}
		}

		for i := 0; i < repeat; i++ {
			if len(*out)+len(expansion) > maxSteps {
				return &errors.InvalidOptimizerStep{Token: itemToken(item), Position: item.Pos.Offset}
			}
			*out = append(*out, expansion...)
		}
	}
	return nil
}

func itemToken(item *stepItem) string {
	if item.Repeat != "" {
		return item.Repeat
	}
	if item.Step != "" {
		return item.Step
	}
	return "["
}

func sequenceSyntaxError(text string, err error) error {
	if perr, ok := err.(participle.Error); ok {
		offset := perr.Position().Offset
		token := ""
		if offset >= 0 && offset < len(text) {
			token = string(text[offset])
		}
		return &errors.InvalidOptimizerStep{Token: token, Position: offset}
	}
	return &errors.InvalidOptimizerStep{Token: text, Position: -1}
}
