package parser

var KEYWORDS = map[string]TokenType{
	"let":      LET,
	"if":       IF,
	"for":      FOR,
	"function": FUNCTION,
	"true":     TRUE,
	"false":    FALSE,
}
