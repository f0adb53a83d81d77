package semantic

// Builtins is the dialect's builtin function set. Calls to these resolve
// without a local definition; everything else must be declared.
var Builtins = map[string]struct{}{
	"add":       {},
	"sub":       {},
	"mul":       {},
	"div":       {},
	"mod":       {},
	"eq":        {},
	"lt":        {},
	"gt":        {},
	"iszero":    {},
	"and":       {},
	"or":        {},
	"xor":       {},
	"not":       {},
	"shl":       {},
	"shr":       {},
	"mload":     {},
	"mstore":    {},
	"sload":     {},
	"sstore":    {},
	"keccak256": {},
	"caller":    {},
	"callvalue": {},
	"pop":       {},
	"revert":    {},
	"stop":      {},
}

// PureBuiltins are builtins with no side effects whose evaluation may be
// dropped or folded by rewrite passes.
var PureBuiltins = map[string]struct{}{
	"add":    {},
	"sub":    {},
	"mul":    {},
	"div":    {},
	"mod":    {},
	"eq":     {},
	"lt":     {},
	"gt":     {},
	"iszero": {},
	"and":    {},
	"or":     {},
	"xor":    {},
	"not":    {},
	"shl":    {},
	"shr":    {},
}
