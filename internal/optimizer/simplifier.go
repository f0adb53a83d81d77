package optimizer

import "yulite/internal/ast"

// StructuralSimplifier resolves control constructs whose condition is a
// literal: an if with a truthy condition is replaced by its body's
// statements, an if with a zero condition disappears, and a loop whose
// condition is statically zero is reduced to its init statements (the body
// and post block can never run).
type StructuralSimplifier struct{}

func (*StructuralSimplifier) Name() string       { return "StructuralSimplifier" }
func (*StructuralSimplifier) Abbreviation() byte { return 's' }

func (*StructuralSimplifier) Run(block *ast.Block) {
	simplifyStructure(block)
}

func simplifyStructure(b *ast.Block) {
	var out []ast.Statement
	for _, stmt := range b.Statements {
		switch s := stmt.(type) {
		case *ast.Block:
			simplifyStructure(s)
		case *ast.FunctionDefinition:
			simplifyStructure(s.Body)
		case *ast.If:
			simplifyStructure(s.Body)
			if lit, ok := s.Condition.(*ast.Literal); ok {
				if literalIsZero(lit) {
					continue
				}
				out = append(out, s.Body.Statements...)
				continue
			}
		case *ast.ForLoop:
			simplifyStructure(s.Init)
			simplifyStructure(s.Post)
			simplifyStructure(s.Body)
			if lit, ok := s.Condition.(*ast.Literal); ok && literalIsZero(lit) {
				out = append(out, s.Init.Statements...)
				continue
			}
		}
		out = append(out, stmt)
	}
	b.Statements = out
}
