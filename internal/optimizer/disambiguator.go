package optimizer

import (
	"fmt"

	"yulite/internal/ast"
)

// Disambiguator renames every declaration so names are unique program-wide,
// eliminating shadowing as a concern for all later passes. Referential
// structure is preserved: every use follows its declaration to the new name.
// Builtins are never declared and therefore never renamed.
type Disambiguator struct{}

func (*Disambiguator) Name() string       { return "Disambiguator" }
func (*Disambiguator) Abbreviation() byte { return 'd' }

func (*Disambiguator) Run(block *ast.Block) {
	d := &disambiguator{used: make(map[string]bool)}
	d.enterScope()
	d.block(block)
}

type renameScope struct {
	parent *renameScope
	names  map[string]string // old name -> unique name
}

type disambiguator struct {
	used  map[string]bool
	scope *renameScope
}

func (d *disambiguator) enterScope() {
	d.scope = &renameScope{
		parent: d.scope,
		names:  make(map[string]string),
	}
}

func (d *disambiguator) leaveScope() {
	d.scope = d.scope.parent
}

func (d *disambiguator) fresh(name string) string {
	if !d.used[name] {
		d.used[name] = true
		return name
	}
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s_%d", name, i)
		if !d.used[candidate] {
			d.used[candidate] = true
			return candidate
		}
	}
}

func (d *disambiguator) declare(id *ast.Identifier) {
	unique := d.fresh(id.Name)
	d.scope.names[id.Name] = unique
	id.Name = unique
}

func (d *disambiguator) resolve(id *ast.Identifier) {
	for scope := d.scope; scope != nil; scope = scope.parent {
		if unique, ok := scope.names[id.Name]; ok {
			id.Name = unique
			return
		}
	}
	// Undeclared: a builtin (in call position) or an analysis error the
	// caller already rejected. Left untouched either way.
}

func (d *disambiguator) block(b *ast.Block) {
	d.enterScope()
	// Functions are visible throughout their block, so their names are
	// assigned before any statement is walked.
	for _, stmt := range b.Statements {
		if fn, ok := stmt.(*ast.FunctionDefinition); ok {
			d.declare(fn.Name)
		}
	}
	for _, stmt := range b.Statements {
		d.statement(stmt)
	}
	d.leaveScope()
}

func (d *disambiguator) statement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.Block:
		d.block(s)
	case *ast.VariableDeclaration:
		if s.Value != nil {
			d.expression(s.Value)
		}
		for _, name := range s.Names {
			d.declare(name)
		}
	case *ast.Assignment:
		for _, target := range s.Targets {
			d.resolve(target)
		}
		d.expression(s.Value)
	case *ast.If:
		d.expression(s.Condition)
		d.block(s.Body)
	case *ast.ForLoop:
		// Init declarations are visible in condition, post, and body.
		d.enterScope()
		for _, inner := range s.Init.Statements {
			d.statement(inner)
		}
		d.expression(s.Condition)
		d.block(s.Body)
		d.block(s.Post)
		d.leaveScope()
	case *ast.FunctionDefinition:
		// The name was declared when the enclosing block was entered.
		// The body sees functions but not outer variables; since declared
		// names are globally unique by construction, simply stacking a new
		// scope for params and returns is sufficient.
		d.enterScope()
		for _, param := range s.Params {
			d.declare(param)
		}
		for _, ret := range s.Returns {
			d.declare(ret)
		}
		d.block(s.Body)
		d.leaveScope()
	case *ast.ExpressionStatement:
		d.expression(s.Expr)
	}
}

func (d *disambiguator) expression(expr ast.Expression) {
	switch e := expr.(type) {
	case *ast.Literal:
	case *ast.Identifier:
		d.resolve(e)
	case *ast.FunctionCall:
		d.resolve(e.Func)
		for _, arg := range e.Args {
			d.expression(arg)
		}
	}
}
