package ast

// Block represents a brace-delimited statement list, the root of every program
// Example: "{ let x := 1 let y := 2 }"
type Block struct {
	Pos        Position
	Statements []Statement
}

// Position tracks location information for error reporting and tooling
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

// VariableDeclaration introduces one or more fresh variables
// Example: "let x := 1", "let a, b := f()", "let zero"
type VariableDeclaration struct {
	Pos   Position
	Names []*Identifier
	Value Expression // nil for zero-initialized declarations
}

// Assignment writes to already-declared variables
// Example: "x := add(x, 1)", "a, b := f()"
type Assignment struct {
	Pos     Position
	Targets []*Identifier
	Value   Expression
}

// If represents a conditional with no else branch
// Example: "if lt(i, 10) { x := 1 }"
type If struct {
	Pos       Position
	Condition Expression
	Body      *Block
}

// ForLoop represents the four-part loop: init block, condition, post block, body
// Example: "for { let i := 0 } lt(i, 10) { i := add(i, 1) } { ... }"
type ForLoop struct {
	Pos       Position
	Init      *Block
	Condition Expression
	Post      *Block
	Body      *Block
}

// FunctionDefinition declares a named function with parameters and return variables
// Example: "function foo(a, b) -> result { result := add(a, b) }"
type FunctionDefinition struct {
	Pos     Position
	Name    *Identifier
	Params  []*Identifier
	Returns []*Identifier
	Body    *Block
}

// ExpressionStatement is an expression in statement position, discarding results
// Example: "pop(sload(0))", "revert(0, 0)"
type ExpressionStatement struct {
	Pos  Position
	Expr Expression
}

// Literal represents a number or boolean as written in the source
// Example: "1", "0x2a", "true"
type Literal struct {
	Pos   Position
	Value string
}

// Identifier represents a variable or function name
// Example: "x", "result", "foo"
type Identifier struct {
	Pos  Position
	Name string
}

// FunctionCall represents a call to a user function or dialect builtin
// Example: "add(1, 2)", "foo(x)"
type FunctionCall struct {
	Pos  Position
	Func *Identifier
	Args []Expression
}
