package phaser

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"yulite/internal/ast"
	"yulite/internal/errors"
)

func mustLoad(t *testing.T, source string) *Program {
	t.Helper()
	program, err := Load("test.yulite", source)
	assert.NoError(t, err)
	assert.NotNil(t, program)
	return program
}

// skipRedundantBlocks walks past blocks whose only statement is another
// block, so structural assertions do not depend on incidental nesting.
func skipRedundantBlocks(b *ast.Block) *ast.Block {
	for len(b.Statements) == 1 {
		inner, ok := b.Statements[0].(*ast.Block)
		if !ok {
			return b
		}
		b = inner
	}
	return b
}

func TestLoadRejectsSyntaxErrors(t *testing.T) {
	program, err := Load("test.yulite", "{ let x := }")
	assert.Nil(t, program)
	assert.True(t, errors.IsInvalidProgram(err))
}

func TestLoadRejectsMissingTopLevelBlock(t *testing.T) {
	_, err := Load("test.yulite", "let x := 1")
	assert.True(t, errors.IsInvalidProgram(err))
}

func TestLoadRejectsSemanticErrors(t *testing.T) {
	_, err := Load("test.yulite", "{ x := 1 }")
	assert.True(t, errors.IsInvalidProgram(err))

	var invalid *errors.InvalidProgram
	assert.ErrorAs(t, err, &invalid)
	assert.NotEmpty(t, invalid.Message)
}

func TestLoadDisambiguatesNames(t *testing.T) {
	program := mustLoad(t, "{ let x := 1 { let x := 2 } }")
	block := program.AST()

	outer := block.Statements[0].(*ast.VariableDeclaration)
	inner := block.Statements[1].(*ast.Block).Statements[0].(*ast.VariableDeclaration)
	assert.NotEqual(t, outer.Names[0].Name, inner.Names[0].Name,
		"Loading makes every declared name unique")
}

func TestLoadGroupsFunctions(t *testing.T) {
	program := mustLoad(t, "{ function f() { } let x := 1 function g() { } let y := 2 }")
	block := skipRedundantBlocks(program.AST())

	assert.Len(t, block.Statements, 4)
	_, ok := block.Statements[0].(*ast.VariableDeclaration)
	assert.True(t, ok)
	_, ok = block.Statements[2].(*ast.FunctionDefinition)
	assert.True(t, ok, "Functions move to the end of their block at load time")
	_, ok = block.Statements[3].(*ast.FunctionDefinition)
	assert.True(t, ok)
}

func TestLoadHoistsLoopInitializers(t *testing.T) {
	program := mustLoad(t, "{ for { let i := 0 } lt(i, 3) { i := add(i, 1) } { pop(i) } }")
	block := skipRedundantBlocks(program.AST())

	assert.Len(t, block.Statements, 2)
	decl, ok := block.Statements[0].(*ast.VariableDeclaration)
	assert.True(t, ok, "Loop initializer hoists in front of the loop at load time")
	assert.Equal(t, "i", decl.Names[0].Name)

	loop := block.Statements[1].(*ast.ForLoop)
	assert.Empty(t, loop.Init.Statements)
}

func TestLoadDoesNotFlatten(t *testing.T) {
	program := mustLoad(t, "{ { let x := 1 } }")
	block := program.AST()
	_, ok := block.Statements[0].(*ast.Block)
	assert.True(t, ok, "Loading preserves block structure; flattening is an explicit step")
}

func TestOptimiseSimplifyAndFlatten(t *testing.T) {
	program := mustLoad(t, "{ { if 1 { let x := 1 } if 0 { let y := 2 } } }")
	err := program.Optimise([]string{"StructuralSimplifier", "BlockFlattener"})
	assert.NoError(t, err)

	block := program.AST()
	assert.Len(t, block.Statements, 1)
	decl, ok := block.Statements[0].(*ast.VariableDeclaration)
	assert.True(t, ok, "Only the reachable declaration survives")
	assert.Equal(t, "1", decl.Value.(*ast.Literal).Value)
}

func TestOptimiseEmptySequenceIsIdentity(t *testing.T) {
	program := mustLoad(t, "{ let x := 1 pop(x) }")
	before := program.Render()
	assert.NoError(t, program.Optimise(nil))
	assert.Equal(t, before, program.Render())
}

func TestOptimiseUnknownStepLeavesProgramUntouched(t *testing.T) {
	program := mustLoad(t, "{ if 1 { let x := 1 } }")
	before := program.Render()

	err := program.Optimise([]string{"StructuralSimplifier", "NoSuchPass"})
	assert.True(t, errors.IsInvalidOptimizerStep(err))
	assert.Equal(t, before, program.Render(),
		"Validation happens before any step runs")
}

func TestOptimiseSequenceCompactForm(t *testing.T) {
	program := mustLoad(t, "{ { if 1 { let x := 1 } } }")
	assert.NoError(t, program.OptimiseSequence("[sf]2"))

	block := program.AST()
	assert.Len(t, block.Statements, 1)
	_, ok := block.Statements[0].(*ast.VariableDeclaration)
	assert.True(t, ok)
}

func TestOptimiseSequenceRejectsBadSyntax(t *testing.T) {
	program := mustLoad(t, "{ }")
	err := program.OptimiseSequence("s!")
	assert.True(t, errors.IsInvalidOptimizerStep(err))
}

func TestCodeSizeMetric(t *testing.T) {
	program := mustLoad(t, "{ let x := 1 let y := 2 }")
	assert.Equal(t, 2, program.CodeSize(false))

	program = mustLoad(t, "{ pop(f()) function f() -> r { r := 1 } }")
	assert.Equal(t, 3, program.CodeSize(false), "pop + two calls; the function body is excluded")
	assert.Equal(t, 5, program.CodeSize(true))
}

func TestCodeSizeIgnoresCommentsAndFormatting(t *testing.T) {
	plain := mustLoad(t, "{ let x := 1 pop(x) }")
	commented := mustLoad(t, "{\n\t// setup\n\tlet x := /* init */ 1\n\tpop(x)\n}")
	assert.Equal(t, plain.CodeSize(false), commented.CodeSize(false))
	assert.Equal(t, plain.CodeSize(true), commented.CodeSize(true))
}

func TestFlatteningNeverIncreasesCodeSize(t *testing.T) {
	program := mustLoad(t, "{ { { let x := 1 pop(x) } } }")
	before := program.CodeSize(false)
	assert.NoError(t, program.Optimise([]string{"BlockFlattener"}))
	assert.LessOrEqual(t, program.CodeSize(false), before)
}

func TestLoadDisambiguatesSiblingScopes(t *testing.T) {
	program := mustLoad(t, "{ { let x := 1 } { let x := 2 } }")
	block := program.AST()

	first := block.Statements[0].(*ast.Block).Statements[0].(*ast.VariableDeclaration)
	second := block.Statements[1].(*ast.Block).Statements[0].(*ast.VariableDeclaration)
	assert.NotEqual(t, first.Names[0].Name, second.Names[0].Name,
		"Same-named declarations in sibling scopes get distinct names")
}

func TestOptimiseReducesCodeSize(t *testing.T) {
	program := mustLoad(t, "{ let a := add(1, 2) let b := a pop(b) }")
	before := program.CodeSize(false)

	assert.NoError(t, program.OptimiseSequence("eu"))
	assert.Less(t, program.CodeSize(false), before)
}

func TestCloneIsolation(t *testing.T) {
	program := mustLoad(t, "{ if 1 { let x := 1 } }")
	clone := program.Clone()

	assert.NoError(t, clone.Optimise([]string{"StructuralSimplifier"}))
	assert.NotEqual(t, program.Render(), clone.Render(),
		"Optimising a clone must not touch the original")
}

func TestRenderRoundTrips(t *testing.T) {
	program := mustLoad(t, "{ let x := 1 if x { x := add(x, 1) } function f(a) -> r { r := a } }")
	reloaded, err := Load("test.yulite", program.Render())
	assert.NoError(t, err)
	assert.Equal(t, program.Render(), reloaded.Render())
}

func TestToJSONIsValid(t *testing.T) {
	program := mustLoad(t, "{ let x := add(1, 2) }")
	data, err := program.ToJSON()
	assert.NoError(t, err)

	var decoded map[string]any
	assert.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "Block", decoded["nodeType"])
}
