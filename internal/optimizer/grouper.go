package optimizer

import "yulite/internal/ast"

// FunctionGrouper moves the function definitions of every block to the end of
// that block. Relative order is preserved within each group. Function
// visibility spans the whole block, so the move cannot change semantics.
type FunctionGrouper struct{}

func (*FunctionGrouper) Name() string       { return "FunctionGrouper" }
func (*FunctionGrouper) Abbreviation() byte { return 'g' }

func (*FunctionGrouper) Run(block *ast.Block) {
	ast.VisitBlocks(block, func(b *ast.Block) {
		var rest, functions []ast.Statement
		for _, stmt := range b.Statements {
			if _, ok := stmt.(*ast.FunctionDefinition); ok {
				functions = append(functions, stmt)
			} else {
				rest = append(rest, stmt)
			}
		}
		if len(functions) == 0 {
			return
		}
		b.Statements = append(rest, functions...)
	})
}
