package optimizer

import (
	"math/big"

	"yulite/internal/ast"
)

// ExpressionFolder evaluates pure builtin calls whose arguments are all
// literals and replaces them with the resulting literal. Arithmetic follows
// the dialect's 256-bit wrapping semantics; division and modulo by zero
// yield zero.
type ExpressionFolder struct{}

func (*ExpressionFolder) Name() string       { return "ExpressionFolder" }
func (*ExpressionFolder) Abbreviation() byte { return 'e' }

func (*ExpressionFolder) Run(block *ast.Block) {
	for _, stmt := range block.Statements {
		ast.RewriteExpressions(stmt, foldExpression)
	}
}

func foldExpression(expr ast.Expression) ast.Expression {
	call, ok := expr.(*ast.FunctionCall)
	if !ok {
		return expr
	}

	// Bottom-up: arguments first, so nested constant calls collapse too.
	args := make([]*big.Int, len(call.Args))
	allLiteral := true
	for i, arg := range call.Args {
		call.Args[i] = foldExpression(arg)
		lit, isLit := call.Args[i].(*ast.Literal)
		if !isLit {
			allLiteral = false
			continue
		}
		value, parsed := literalValue(lit)
		if !parsed {
			allLiteral = false
			continue
		}
		args[i] = value
	}
	if !allLiteral {
		return call
	}

	result, folded := evalBuiltin(call.Func.Name, args)
	if !folded {
		return call
	}
	return &ast.Literal{Pos: call.Pos, Value: result.String()}
}

func evalBuiltin(name string, args []*big.Int) (*big.Int, bool) {
	wrap := func(v *big.Int) *big.Int { return v.Mod(v, wordModulus) }
	boolWord := func(b bool) *big.Int {
		if b {
			return big.NewInt(1)
		}
		return big.NewInt(0)
	}

	switch {
	case name == "iszero" && len(args) == 1:
		return boolWord(args[0].Sign() == 0), true
	case name == "not" && len(args) == 1:
		v := new(big.Int).Sub(wordModulus, big.NewInt(1))
		return v.Xor(v, args[0]), true
	}

	if len(args) != 2 {
		return nil, false
	}
	a, b := args[0], args[1]
	switch name {
	case "add":
		return wrap(new(big.Int).Add(a, b)), true
	case "sub":
		v := new(big.Int).Sub(a, b)
		return wrap(v.Add(v, wordModulus)), true
	case "mul":
		return wrap(new(big.Int).Mul(a, b)), true
	case "div":
		if b.Sign() == 0 {
			return big.NewInt(0), true
		}
		return new(big.Int).Div(a, b), true
	case "mod":
		if b.Sign() == 0 {
			return big.NewInt(0), true
		}
		return new(big.Int).Mod(a, b), true
	case "eq":
		return boolWord(a.Cmp(b) == 0), true
	case "lt":
		return boolWord(a.Cmp(b) < 0), true
	case "gt":
		return boolWord(a.Cmp(b) > 0), true
	case "and":
		return new(big.Int).And(a, b), true
	case "or":
		return new(big.Int).Or(a, b), true
	case "xor":
		return new(big.Int).Xor(a, b), true
	default:
		return nil, false
	}
}
