package optimizer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"yulite/internal/ast"
)

func TestBlockFlattenerInlinesNestedBlocks(t *testing.T) {
	block := parseBlock(t, "{ { let x := 1 } { { let y := 2 } } }")
	(&BlockFlattener{}).Run(block)

	assert.Len(t, block.Statements, 2)
	x := block.Statements[0].(*ast.VariableDeclaration)
	y := block.Statements[1].(*ast.VariableDeclaration)
	assert.Equal(t, "x", x.Names[0].Name)
	assert.Equal(t, "y", y.Names[0].Name)
}

func TestBlockFlattenerReachesControlFlowBodies(t *testing.T) {
	block := parseBlock(t, "{ if 1 { { let x := 1 } } function f() { { let y := 2 } } }")
	(&BlockFlattener{}).Run(block)

	ifStmt := block.Statements[0].(*ast.If)
	assert.Len(t, ifStmt.Body.Statements, 1)
	_, ok := ifStmt.Body.Statements[0].(*ast.VariableDeclaration)
	assert.True(t, ok, "If body should be flattened")

	fn := block.Statements[1].(*ast.FunctionDefinition)
	_, ok = fn.Body.Statements[0].(*ast.VariableDeclaration)
	assert.True(t, ok, "Function body should be flattened")
}

func TestStructuralSimplifierInlinesTruthyIf(t *testing.T) {
	block := parseBlock(t, "{ if 1 { let x := 1 } }")
	(&StructuralSimplifier{}).Run(block)

	assert.Len(t, block.Statements, 1)
	_, ok := block.Statements[0].(*ast.VariableDeclaration)
	assert.True(t, ok, "Truthy if is replaced by its body")
}

func TestStructuralSimplifierDropsFalsyIf(t *testing.T) {
	block := parseBlock(t, "{ if 0 { let x := 1 } if false { let y := 2 } }")
	(&StructuralSimplifier{}).Run(block)
	assert.Empty(t, block.Statements)
}

func TestStructuralSimplifierHandlesHexAndBooleanConditions(t *testing.T) {
	block := parseBlock(t, "{ if 0x0 { let x := 1 } if true { let y := 2 } }")
	(&StructuralSimplifier{}).Run(block)

	assert.Len(t, block.Statements, 1)
	decl := block.Statements[0].(*ast.VariableDeclaration)
	assert.Equal(t, "y", decl.Names[0].Name)
}

func TestStructuralSimplifierLeavesDynamicConditions(t *testing.T) {
	block := parseBlock(t, "{ let c := 1 if c { let x := 1 } }")
	before := block.String()
	(&StructuralSimplifier{}).Run(block)
	assert.Equal(t, before, block.String())
}

func TestStructuralSimplifierReducesDeadLoop(t *testing.T) {
	block := parseBlock(t, "{ for { let i := 0 } 0 { i := 1 } { pop(i) } }")
	(&StructuralSimplifier{}).Run(block)

	assert.Len(t, block.Statements, 1, "Only the init survives a statically dead loop")
	decl := block.Statements[0].(*ast.VariableDeclaration)
	assert.Equal(t, "i", decl.Names[0].Name)
}

func TestUnusedPrunerRemovesUnusedDeclaration(t *testing.T) {
	block := parseBlock(t, "{ let x := 1 let y := 2 pop(y) }")
	(&UnusedPruner{}).Run(block)

	assert.Len(t, block.Statements, 2)
	decl := block.Statements[0].(*ast.VariableDeclaration)
	assert.Equal(t, "y", decl.Names[0].Name)
}

func TestUnusedPrunerRunsToFixpoint(t *testing.T) {
	block := parseBlock(t, "{ let a := 1 let b := a let c := b }")
	(&UnusedPruner{}).Run(block)
	assert.Empty(t, block.Statements, "Chains of dead declarations collapse entirely")
}

func TestUnusedPrunerKeepsEffectfulInitializer(t *testing.T) {
	block := parseBlock(t, "{ let x := mload(0) }")
	(&UnusedPruner{}).Run(block)
	assert.Len(t, block.Statements, 1, "An impure initializer pins its declaration")
}

func TestUnusedPrunerDropsPureCallInitializer(t *testing.T) {
	block := parseBlock(t, "{ let x := add(mul(2, 3), 1) }")
	(&UnusedPruner{}).Run(block)
	assert.Empty(t, block.Statements)
}

func TestUnusedPrunerRemovesUncalledFunction(t *testing.T) {
	block := parseBlock(t, `{
		pop(f())
		function f() -> r { r := g() }
		function h() -> r { r := 1 }
		function g() -> r { r := 2 }
	}`)
	(&UnusedPruner{}).Run(block)

	assert.Len(t, block.Statements, 3, "Only the uncalled function disappears")
	for _, stmt := range block.Statements {
		if fn, ok := stmt.(*ast.FunctionDefinition); ok {
			assert.NotEqual(t, "h", fn.Name.Name)
		}
	}
}

func TestUnusedPrunerKeepsAssignedVariables(t *testing.T) {
	block := parseBlock(t, "{ let x := 1 x := 2 }")
	(&UnusedPruner{}).Run(block)
	assert.Len(t, block.Statements, 2, "An assignment counts as a reference")
}

func TestExpressionFolderFoldsConstantCall(t *testing.T) {
	block := parseBlock(t, "{ let x := add(1, 2) }")
	(&ExpressionFolder{}).Run(block)

	decl := block.Statements[0].(*ast.VariableDeclaration)
	lit, ok := decl.Value.(*ast.Literal)
	assert.True(t, ok, "Constant call should fold to a literal")
	assert.Equal(t, "3", lit.Value)
}

func TestExpressionFolderFoldsNestedCalls(t *testing.T) {
	block := parseBlock(t, "{ let x := mul(add(1, 2), sub(10, 4)) }")
	(&ExpressionFolder{}).Run(block)

	decl := block.Statements[0].(*ast.VariableDeclaration)
	assert.Equal(t, "18", decl.Value.(*ast.Literal).Value)
}

func TestExpressionFolderWrapsAt256Bits(t *testing.T) {
	block := parseBlock(t, "{ let x := sub(0, 1) }")
	(&ExpressionFolder{}).Run(block)

	decl := block.Statements[0].(*ast.VariableDeclaration)
	lit := decl.Value.(*ast.Literal)
	assert.Equal(t,
		"115792089237316195423570985008687907853269984665640564039457584007913129639935",
		lit.Value, "sub(0, 1) wraps to the word maximum")
}

func TestExpressionFolderDivisionByZeroIsZero(t *testing.T) {
	block := parseBlock(t, "{ let x := div(5, 0) let y := mod(5, 0) }")
	(&ExpressionFolder{}).Run(block)

	x := block.Statements[0].(*ast.VariableDeclaration)
	y := block.Statements[1].(*ast.VariableDeclaration)
	assert.Equal(t, "0", x.Value.(*ast.Literal).Value)
	assert.Equal(t, "0", y.Value.(*ast.Literal).Value)
}

func TestExpressionFolderHandlesHexAndBooleans(t *testing.T) {
	block := parseBlock(t, "{ let x := add(0x10, true) }")
	(&ExpressionFolder{}).Run(block)

	decl := block.Statements[0].(*ast.VariableDeclaration)
	assert.Equal(t, "17", decl.Value.(*ast.Literal).Value)
}

func TestExpressionFolderComparisons(t *testing.T) {
	block := parseBlock(t, "{ let a := lt(1, 2) let b := gt(1, 2) let c := eq(3, 3) let d := iszero(0) }")
	(&ExpressionFolder{}).Run(block)

	values := []string{}
	for _, stmt := range block.Statements {
		values = append(values, stmt.(*ast.VariableDeclaration).Value.(*ast.Literal).Value)
	}
	assert.Equal(t, []string{"1", "0", "1", "1"}, values)
}

func TestExpressionFolderLeavesNonConstantCalls(t *testing.T) {
	block := parseBlock(t, "{ let a := 1 let x := add(a, 2) let y := mload(0) }")
	(&ExpressionFolder{}).Run(block)

	x := block.Statements[1].(*ast.VariableDeclaration)
	_, isCall := x.Value.(*ast.FunctionCall)
	assert.True(t, isCall, "Calls with variable arguments stay")

	y := block.Statements[2].(*ast.VariableDeclaration)
	_, isCall = y.Value.(*ast.FunctionCall)
	assert.True(t, isCall, "Impure builtins never fold")
}

func TestCodeSizeCountsStatementsAndCalls(t *testing.T) {
	block := parseBlock(t, "{ let x := 1 let y := 2 }")
	assert.Equal(t, 2, CodeSize(block))

	block = parseBlock(t, "{ let x := add(1, 2) }")
	assert.Equal(t, 2, CodeSize(block), "A declaration with one call costs two")

	block = parseBlock(t, "{ { { } } }")
	assert.Equal(t, 0, CodeSize(block), "Pure grouping is free")
}

func TestCodeSizeExcludesFunctionsByDefault(t *testing.T) {
	block := parseBlock(t, "{ let x := 1 function f() -> r { r := 1 r := 2 } }")
	assert.Equal(t, 1, CodeSize(block))
	assert.Equal(t, 4, CodeSizeIncludingFunctions(block),
		"Including functions adds the definition and its body")
}

func TestCodeSizeCountsControlFlow(t *testing.T) {
	block := parseBlock(t, "{ if lt(1, 2) { let x := 1 } }")
	assert.Equal(t, 3, CodeSize(block), "if + condition call + body statement")

	block = parseBlock(t, "{ for { let i := 0 } i { i := 1 } { pop(i) } }")
	assert.Equal(t, 5, CodeSize(block), "for + init + post + body statement + pop call")
}
