package optimizer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"yulite/internal/errors"
)

func TestParseSequenceSimpleSteps(t *testing.T) {
	steps, err := ValidateSequence("fsu")
	assert.NoError(t, err)
	assert.Equal(t, []string{"BlockFlattener", "StructuralSimplifier", "UnusedPruner"}, steps)
}

func TestParseSequenceEmpty(t *testing.T) {
	steps, err := ValidateSequence("")
	assert.NoError(t, err)
	assert.Empty(t, steps)
}

func TestParseSequenceIgnoresWhitespace(t *testing.T) {
	steps, err := ValidateSequence("  f \t s\nu ")
	assert.NoError(t, err)
	assert.Len(t, steps, 3)
}

func TestParseSequenceRepeatSuffix(t *testing.T) {
	steps, err := ValidateSequence("f2 s")
	assert.NoError(t, err)
	assert.Equal(t, []string{"BlockFlattener", "BlockFlattener", "StructuralSimplifier"}, steps)
}

func TestParseSequenceGroupRepeat(t *testing.T) {
	steps, err := ValidateSequence("[fs]3 u")
	assert.NoError(t, err)
	assert.Equal(t, []string{
		"BlockFlattener", "StructuralSimplifier",
		"BlockFlattener", "StructuralSimplifier",
		"BlockFlattener", "StructuralSimplifier",
		"UnusedPruner",
	}, steps)
}

func TestParseSequenceNestedGroups(t *testing.T) {
	steps, err := ValidateSequence("[f[su]2]2")
	assert.NoError(t, err)
	assert.Len(t, steps, 10)
	assert.Equal(t, "BlockFlattener", steps[0])
	assert.Equal(t, "StructuralSimplifier", steps[1])
	assert.Equal(t, "UnusedPruner", steps[2])
}

func TestParseSequenceZeroRepeat(t *testing.T) {
	steps, err := ValidateSequence("f0 s")
	assert.NoError(t, err)
	assert.Equal(t, []string{"StructuralSimplifier"}, steps)
}

func TestParseSequenceUnknownStep(t *testing.T) {
	_, err := ValidateSequence("fqu")
	assert.Error(t, err)

	var invalid *errors.InvalidOptimizerStep
	assert.ErrorAs(t, err, &invalid)
	assert.Equal(t, "q", invalid.Token)
	assert.Equal(t, 1, invalid.Position, "Position points at the offending letter")
}

func TestParseSequenceRepeatTooLarge(t *testing.T) {
	_, err := ValidateSequence("f1001")
	assert.Error(t, err)
	assert.True(t, errors.IsInvalidOptimizerStep(err))
}

func TestParseSequenceRepeatAtLimit(t *testing.T) {
	steps, err := ValidateSequence("f1000")
	assert.NoError(t, err)
	assert.Len(t, steps, 1000)
}

func TestParseSequenceTotalExpansionIsBounded(t *testing.T) {
	// Each repeat count is within the per-token limit, but nesting multiplies
	// them; the total cap must reject the product.
	_, err := ValidateSequence("[[f]1000]1000")
	assert.Error(t, err)
	assert.True(t, errors.IsInvalidOptimizerStep(err))

	_, err = ValidateSequence("[[[f]1000]1000]1000")
	assert.Error(t, err)
	assert.True(t, errors.IsInvalidOptimizerStep(err))

	_, err = ValidateSequence("f999 ss")
	assert.Error(t, err, "The cap applies to the whole sequence, not per group")

	steps, err := ValidateSequence("[[f]10]10")
	assert.NoError(t, err)
	assert.Len(t, steps, 100)
}

func TestParseSequenceUnbalancedBracket(t *testing.T) {
	_, err := ValidateSequence("[fs")
	assert.Error(t, err)
	assert.True(t, errors.IsInvalidOptimizerStep(err))
}

func TestParseSequenceIllegalCharacter(t *testing.T) {
	_, err := ValidateSequence("f!s")
	assert.Error(t, err)
	assert.True(t, errors.IsInvalidOptimizerStep(err))
}

func TestRegistryLookups(t *testing.T) {
	registry := DefaultRegistry()

	pass, err := registry.ByName("BlockFlattener")
	assert.NoError(t, err)
	assert.Equal(t, byte('f'), pass.Abbreviation())

	_, err = registry.ByName("NoSuchPass")
	assert.Error(t, err)
	assert.True(t, errors.IsInvalidOptimizerStep(err))

	pass, ok := registry.ByAbbreviation('u')
	assert.True(t, ok)
	assert.Equal(t, "UnusedPruner", pass.Name())

	_, ok = registry.ByAbbreviation('z')
	assert.False(t, ok)
}

func TestRegistryCatalogIsComplete(t *testing.T) {
	registry := DefaultRegistry()
	assert.ElementsMatch(t, []string{
		"BlockFlattener", "StructuralSimplifier", "UnusedPruner", "ExpressionFolder",
		"Disambiguator", "FunctionGrouper", "ForLoopInitRewriter",
	}, registry.Names())
	assert.Equal(t, []byte("defglsu"), registry.Abbreviations())
}
