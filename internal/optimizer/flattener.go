package optimizer

import "yulite/internal/ast"

// BlockFlattener inlines block statements into their parent block. Safe on
// disambiguated programs: with globally unique names, dissolving a scope
// boundary cannot capture or shadow anything.
type BlockFlattener struct{}

func (*BlockFlattener) Name() string       { return "BlockFlattener" }
func (*BlockFlattener) Abbreviation() byte { return 'f' }

func (*BlockFlattener) Run(block *ast.Block) {
	flattenBlock(block)
}

func flattenBlock(b *ast.Block) {
	var out []ast.Statement
	for _, stmt := range b.Statements {
		switch s := stmt.(type) {
		case *ast.Block:
			flattenBlock(s)
			out = append(out, s.Statements...)
			continue
		case *ast.If:
			flattenBlock(s.Body)
		case *ast.ForLoop:
			flattenBlock(s.Init)
			flattenBlock(s.Post)
			flattenBlock(s.Body)
		case *ast.FunctionDefinition:
			flattenBlock(s.Body)
		}
		out = append(out, stmt)
	}
	b.Statements = out
}
