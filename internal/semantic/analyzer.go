// Package semantic resolves names over the IR tree and rejects programs the
// optimizer cannot safely rewrite: references to undeclared variables,
// assignments to non-lvalues, calls to unknown functions, and duplicate
// declarations within a single scope.
package semantic

import (
	"fmt"

	"yulite/internal/ast"
)

type Error struct {
	Message  string
	Position ast.Position
}

type symbolKind int

const (
	symbolVariable symbolKind = iota
	symbolFunction
)

type symbol struct {
	kind   symbolKind
	params int // function arity; meaningless for variables
}

type scope struct {
	parent  *scope
	symbols map[string]symbol
}

func (s *scope) lookup(name string) (symbol, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if sym, ok := cur.symbols[name]; ok {
			return sym, true
		}
	}
	return symbol{}, false
}

type Analyzer struct {
	errors []Error
	scope  *scope
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze checks the whole program and returns all accumulated errors.
func (a *Analyzer) Analyze(block *ast.Block) []Error {
	a.errors = nil
	a.scope = nil
	a.analyzeBlock(block)
	return a.errors
}

func (a *Analyzer) analyzeBlock(block *ast.Block) {
	a.pushScope()
	defer a.popScope()

	// Functions are visible in their whole enclosing block, including before
	// their definition, so they are registered up front.
	for _, stmt := range block.Statements {
		if fn, ok := stmt.(*ast.FunctionDefinition); ok {
			a.declare(fn.Name, symbol{kind: symbolFunction, params: len(fn.Params)})
		}
	}

	for _, stmt := range block.Statements {
		a.analyzeStatement(stmt)
	}
}

func (a *Analyzer) analyzeStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.Block:
		a.analyzeBlock(s)
	case *ast.VariableDeclaration:
		// The value is evaluated before the names come into scope.
		if s.Value != nil {
			a.analyzeExpression(s.Value)
		}
		for _, name := range s.Names {
			a.declare(name, symbol{kind: symbolVariable})
		}
	case *ast.Assignment:
		for _, target := range s.Targets {
			sym, ok := a.scope.lookup(target.Name)
			if !ok || sym.kind != symbolVariable {
				a.addError(fmt.Sprintf("variable %q not found or not assignable", target.Name), target.Pos)
			}
		}
		a.analyzeExpression(s.Value)
	case *ast.If:
		a.analyzeExpression(s.Condition)
		a.analyzeBlock(s.Body)
	case *ast.ForLoop:
		// The init block's declarations are visible in the condition, post,
		// and body, so all four parts share the init scope.
		a.pushScope()
		for _, inner := range s.Init.Statements {
			a.analyzeStatement(inner)
		}
		a.analyzeExpression(s.Condition)
		a.analyzeBlock(s.Body)
		a.analyzeBlock(s.Post)
		a.popScope()
	case *ast.FunctionDefinition:
		// Function bodies see only their parameters and returns, plus
		// functions; outer variables are not visible inside a function.
		outer := a.scope
		a.scope = a.functionOnlyScope()
		a.pushScope()
		for _, param := range s.Params {
			a.declare(param, symbol{kind: symbolVariable})
		}
		for _, ret := range s.Returns {
			a.declare(ret, symbol{kind: symbolVariable})
		}
		a.analyzeBlock(s.Body)
		a.scope = outer
	case *ast.ExpressionStatement:
		a.analyzeExpression(s.Expr)
	}
}

func (a *Analyzer) analyzeExpression(expr ast.Expression) {
	switch e := expr.(type) {
	case *ast.Literal:
	case *ast.Identifier:
		sym, ok := a.scope.lookup(e.Name)
		if !ok {
			a.addError(fmt.Sprintf("identifier %q not found", e.Name), e.Pos)
		} else if sym.kind == symbolFunction {
			a.addError(fmt.Sprintf("function %q used as a value", e.Name), e.Pos)
		}
	case *ast.FunctionCall:
		a.checkCallTarget(e)
		for _, arg := range e.Args {
			a.analyzeExpression(arg)
		}
	}
}

func (a *Analyzer) checkCallTarget(call *ast.FunctionCall) {
	name := call.Func.Name
	if sym, ok := a.scope.lookup(name); ok {
		if sym.kind != symbolFunction {
			a.addError(fmt.Sprintf("%q is not a function", name), call.Func.Pos)
			return
		}
		if len(call.Args) != sym.params {
			a.addError(fmt.Sprintf("function %q expects %d arguments, got %d",
				name, sym.params, len(call.Args)), call.Func.Pos)
		}
		return
	}
	if _, ok := Builtins[name]; !ok {
		a.addError(fmt.Sprintf("function %q not found", name), call.Func.Pos)
	}
}

func (a *Analyzer) declare(name *ast.Identifier, sym symbol) {
	if name.Name == "" {
		return // parse error placeholder, already reported
	}
	if _, exists := a.scope.symbols[name.Name]; exists {
		a.addError(fmt.Sprintf("%q already declared in this scope", name.Name), name.Pos)
		return
	}
	a.scope.symbols[name.Name] = sym
}

// functionOnlyScope flattens the current scope chain into a single scope
// holding just the function symbols, innermost shadowing outermost.
func (a *Analyzer) functionOnlyScope() *scope {
	var chain []*scope
	for cur := a.scope; cur != nil; cur = cur.parent {
		chain = append(chain, cur)
	}
	flat := &scope{symbols: make(map[string]symbol)}
	for i := len(chain) - 1; i >= 0; i-- {
		for name, sym := range chain[i].symbols {
			if sym.kind == symbolFunction {
				flat.symbols[name] = sym
			}
		}
	}
	return flat
}

func (a *Analyzer) pushScope() {
	a.scope = &scope{parent: a.scope, symbols: make(map[string]symbol)}
}

func (a *Analyzer) popScope() {
	a.scope = a.scope.parent
}

func (a *Analyzer) addError(message string, pos ast.Position) {
	a.errors = append(a.errors, Error{Message: message, Position: pos})
}
