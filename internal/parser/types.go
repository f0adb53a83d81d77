package parser

type TokenType int

const (
	// Special tokens
	ILLEGAL TokenType = iota
	EOF

	// Identifiers + literals
	IDENTIFIER
	NUMBER
	HEX_NUMBER

	// Keywords
	LET
	IF
	FOR
	FUNCTION
	TRUE
	FALSE

	// Punctuation
	LEFT_BRACE
	RIGHT_BRACE
	LEFT_PAREN
	RIGHT_PAREN
	COMMA
	ARROW  // ->
	WALRUS // :=
)

func (t TokenType) String() string {
	switch t {
	case ILLEGAL:
		return "ILLEGAL"
	case EOF:
		return "EOF"
	case IDENTIFIER:
		return "IDENTIFIER"
	case NUMBER:
		return "NUMBER"
	case HEX_NUMBER:
		return "HEX_NUMBER"
	case LET:
		return "let"
	case IF:
		return "if"
	case FOR:
		return "for"
	case FUNCTION:
		return "function"
	case TRUE:
		return "true"
	case FALSE:
		return "false"
	case LEFT_BRACE:
		return "{"
	case RIGHT_BRACE:
		return "}"
	case LEFT_PAREN:
		return "("
	case RIGHT_PAREN:
		return ")"
	case COMMA:
		return ","
	case ARROW:
		return "->"
	case WALRUS:
		return ":="
	default:
		return "UNKNOWN"
	}
}
