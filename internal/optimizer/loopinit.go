package optimizer

import "yulite/internal/ast"

// ForLoopInitRewriter hoists every loop's init statements out in front of the
// loop, leaving the loop itself with an empty initializer. Execution order is
// unchanged. Must run after the Disambiguator: the hoisted declarations
// become visible to statements after the loop, which is only harmless once
// names are unique program-wide.
type ForLoopInitRewriter struct{}

func (*ForLoopInitRewriter) Name() string       { return "ForLoopInitRewriter" }
func (*ForLoopInitRewriter) Abbreviation() byte { return 'l' }

func (*ForLoopInitRewriter) Run(block *ast.Block) {
	rewriteLoopInits(block)
}

func rewriteLoopInits(b *ast.Block) {
	var out []ast.Statement
	for _, stmt := range b.Statements {
		switch s := stmt.(type) {
		case *ast.Block:
			rewriteLoopInits(s)
		case *ast.If:
			rewriteLoopInits(s.Body)
		case *ast.FunctionDefinition:
			rewriteLoopInits(s.Body)
		case *ast.ForLoop:
			rewriteLoopInits(s.Init)
			rewriteLoopInits(s.Post)
			rewriteLoopInits(s.Body)
			if len(s.Init.Statements) > 0 {
				out = append(out, s.Init.Statements...)
				s.Init = &ast.Block{Pos: s.Init.Pos}
			}
		}
		out = append(out, stmt)
	}
	b.Statements = out
}
