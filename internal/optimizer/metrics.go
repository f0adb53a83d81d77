package optimizer

import "yulite/internal/ast"

// CodeSize is the structural cost of a block: every statement counts one,
// except blocks (pure grouping) and function definitions (skipped entirely);
// every function call counts one more. Literals and identifiers are free.
func CodeSize(block *ast.Block) int {
	return codeSize(block, false)
}

// CodeSizeIncludingFunctions counts like CodeSize but includes function
// definitions and their bodies.
func CodeSizeIncludingFunctions(block *ast.Block) int {
	return codeSize(block, true)
}

func codeSize(b *ast.Block, includeFunctions bool) int {
	size := 0
	for _, stmt := range b.Statements {
		size += statementSize(stmt, includeFunctions)
	}
	return size
}

func statementSize(stmt ast.Statement, includeFunctions bool) int {
	switch s := stmt.(type) {
	case *ast.Block:
		return codeSize(s, includeFunctions)
	case *ast.VariableDeclaration:
		return 1 + expressionSize(s.Value)
	case *ast.Assignment:
		return 1 + expressionSize(s.Value)
	case *ast.If:
		return 1 + expressionSize(s.Condition) + codeSize(s.Body, includeFunctions)
	case *ast.ForLoop:
		return 1 + expressionSize(s.Condition) +
			codeSize(s.Init, includeFunctions) +
			codeSize(s.Post, includeFunctions) +
			codeSize(s.Body, includeFunctions)
	case *ast.FunctionDefinition:
		if !includeFunctions {
			return 0
		}
		return 1 + codeSize(s.Body, includeFunctions)
	case *ast.ExpressionStatement:
		return 1 + expressionSize(s.Expr)
	default:
		return 0
	}
}

func expressionSize(expr ast.Expression) int {
	switch e := expr.(type) {
	case *ast.FunctionCall:
		size := 1
		for _, arg := range e.Args {
			size += expressionSize(arg)
		}
		return size
	default:
		return 0
	}
}
