package optimizer

import (
	"math/big"

	"yulite/internal/ast"
)

var wordModulus = new(big.Int).Lsh(big.NewInt(1), 256)

// literalValue parses a literal into its 256-bit numeric value.
// Booleans map to 1 and 0.
func literalValue(lit *ast.Literal) (*big.Int, bool) {
	switch lit.Value {
	case "true":
		return big.NewInt(1), true
	case "false":
		return big.NewInt(0), true
	}
	value, ok := new(big.Int).SetString(lit.Value, 0)
	if !ok {
		return nil, false
	}
	return value.Mod(value, wordModulus), true
}

// literalIsZero reports whether the literal is a statically-known zero.
func literalIsZero(lit *ast.Literal) bool {
	value, ok := literalValue(lit)
	return ok && value.Sign() == 0
}
