package optimizer

import (
	"yulite/internal/ast"
	"yulite/internal/semantic"
)

// UnusedPruner removes function definitions that are never called and
// variable declarations that are never read, assigned, or otherwise
// referenced, provided dropping the declaration cannot discard a side
// effect. Runs to a fixpoint: removing one declaration can orphan another.
type UnusedPruner struct{}

func (*UnusedPruner) Name() string       { return "UnusedPruner" }
func (*UnusedPruner) Abbreviation() byte { return 'u' }

func (*UnusedPruner) Run(block *ast.Block) {
	for pruneUnused(block) {
	}
}

func pruneUnused(block *ast.Block) bool {
	refs := countReferences(block)
	changed := false

	var prune func(b *ast.Block)
	prune = func(b *ast.Block) {
		var out []ast.Statement
		for _, stmt := range b.Statements {
			switch s := stmt.(type) {
			case *ast.Block:
				prune(s)
			case *ast.If:
				prune(s.Body)
			case *ast.ForLoop:
				prune(s.Init)
				prune(s.Post)
				prune(s.Body)
			case *ast.FunctionDefinition:
				if refs[s.Name.Name] == 0 {
					changed = true
					continue
				}
				prune(s.Body)
			case *ast.VariableDeclaration:
				if allUnreferenced(s.Names, refs) && movableExpression(s.Value) {
					changed = true
					continue
				}
			}
			out = append(out, stmt)
		}
		b.Statements = out
	}
	prune(block)
	return changed
}

// countReferences counts every use of a name: expression reads, call
// targets, and assignment targets. Declarations themselves do not count.
func countReferences(block *ast.Block) map[string]int {
	refs := make(map[string]int)

	var countExpr func(expr ast.Expression)
	countExpr = func(expr ast.Expression) {
		switch e := expr.(type) {
		case *ast.Identifier:
			refs[e.Name]++
		case *ast.FunctionCall:
			refs[e.Func.Name]++
			for _, arg := range e.Args {
				countExpr(arg)
			}
		}
	}

	var walk func(stmt ast.Statement)
	walk = func(stmt ast.Statement) {
		switch s := stmt.(type) {
		case *ast.Block:
			for _, inner := range s.Statements {
				walk(inner)
			}
		case *ast.VariableDeclaration:
			countExpr(s.Value)
		case *ast.Assignment:
			for _, target := range s.Targets {
				refs[target.Name]++
			}
			countExpr(s.Value)
		case *ast.If:
			countExpr(s.Condition)
			walk(s.Body)
		case *ast.ForLoop:
			walk(s.Init)
			countExpr(s.Condition)
			walk(s.Post)
			walk(s.Body)
		case *ast.FunctionDefinition:
			walk(s.Body)
		case *ast.ExpressionStatement:
			countExpr(s.Expr)
		}
	}
	walk(block)
	return refs
}

func allUnreferenced(names []*ast.Identifier, refs map[string]int) bool {
	for _, name := range names {
		if refs[name.Name] > 0 {
			return false
		}
	}
	return true
}

// movableExpression reports whether evaluating expr has no observable
// effect, so the evaluation may be discarded along with its declaration.
func movableExpression(expr ast.Expression) bool {
	switch e := expr.(type) {
	case nil:
		return true
	case *ast.Literal, *ast.Identifier:
		return true
	case *ast.FunctionCall:
		if _, pure := semantic.PureBuiltins[e.Func.Name]; !pure {
			return false
		}
		for _, arg := range e.Args {
			if !movableExpression(arg) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
