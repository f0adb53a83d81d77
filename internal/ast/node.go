package ast

type Node interface {
	NodePos() Position
	NodeType() NodeType
	String() string
}

// Statement is the closed set of statement node kinds.
type Statement interface {
	Node
	stmtNode()
}

// Expression is the closed set of expression node kinds.
type Expression interface {
	Node
	exprNode()
}

type NodeType int

const (
	BLOCK NodeType = iota
	VARIABLE_DECLARATION
	ASSIGNMENT
	IF
	FOR_LOOP
	FUNCTION_DEFINITION
	EXPRESSION_STATEMENT
	LITERAL
	IDENTIFIER
	FUNCTION_CALL
)

func (t NodeType) String() string {
	switch t {
	case BLOCK:
		return "Block"
	case VARIABLE_DECLARATION:
		return "VariableDeclaration"
	case ASSIGNMENT:
		return "Assignment"
	case IF:
		return "If"
	case FOR_LOOP:
		return "ForLoop"
	case FUNCTION_DEFINITION:
		return "FunctionDefinition"
	case EXPRESSION_STATEMENT:
		return "ExpressionStatement"
	case LITERAL:
		return "Literal"
	case IDENTIFIER:
		return "Identifier"
	case FUNCTION_CALL:
		return "FunctionCall"
	default:
		return "Unknown"
	}
}

func (b *Block) NodePos() Position  { return b.Pos }
func (*Block) NodeType() NodeType   { return BLOCK }
func (b *Block) stmtNode()          {}

func (vd *VariableDeclaration) NodePos() Position { return vd.Pos }
func (*VariableDeclaration) NodeType() NodeType   { return VARIABLE_DECLARATION }
func (vd *VariableDeclaration) stmtNode()         {}

func (a *Assignment) NodePos() Position { return a.Pos }
func (*Assignment) NodeType() NodeType  { return ASSIGNMENT }
func (a *Assignment) stmtNode()         {}

func (i *If) NodePos() Position { return i.Pos }
func (*If) NodeType() NodeType  { return IF }
func (i *If) stmtNode()         {}

func (f *ForLoop) NodePos() Position { return f.Pos }
func (*ForLoop) NodeType() NodeType  { return FOR_LOOP }
func (f *ForLoop) stmtNode()         {}

func (fd *FunctionDefinition) NodePos() Position { return fd.Pos }
func (*FunctionDefinition) NodeType() NodeType   { return FUNCTION_DEFINITION }
func (fd *FunctionDefinition) stmtNode()         {}

func (es *ExpressionStatement) NodePos() Position { return es.Pos }
func (*ExpressionStatement) NodeType() NodeType   { return EXPRESSION_STATEMENT }
func (es *ExpressionStatement) stmtNode()         {}

func (l *Literal) NodePos() Position { return l.Pos }
func (*Literal) NodeType() NodeType  { return LITERAL }
func (l *Literal) exprNode()         {}

func (i *Identifier) NodePos() Position { return i.Pos }
func (*Identifier) NodeType() NodeType  { return IDENTIFIER }
func (i *Identifier) exprNode()         {}

func (fc *FunctionCall) NodePos() Position { return fc.Pos }
func (*FunctionCall) NodeType() NodeType   { return FUNCTION_CALL }
func (fc *FunctionCall) exprNode()         {}
