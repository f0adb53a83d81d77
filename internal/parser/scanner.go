package parser

import (
	"fmt"
	"unicode"

	"yulite/internal/ast"
)

type Token struct {
	Type     TokenType
	Lexeme   string
	Position ast.Position
}

type Scanner struct {
	filename    string
	source      string
	tokens      []Token
	start       int
	current     int
	line        int
	startColumn int
	column      int
	errors      []ScanError
}

type ScanError struct {
	Message  string
	Position ast.Position
	Length   int
}

func NewScanner(filename, source string) *Scanner {
	return &Scanner{
		filename: filename,
		source:   source,
		line:     1,
		column:   1,
	}
}

func (s *Scanner) Errors() []ScanError {
	return s.errors
}

func (s *Scanner) ScanTokens() []Token {
	for !s.isAtEnd() {
		s.start = s.current
		s.startColumn = s.column
		s.scanToken()
	}
	s.tokens = append(s.tokens, Token{Type: EOF, Position: s.position()})
	return s.tokens
}

func (s *Scanner) scanToken() {
	c := s.advance()
	switch c {
	case '{':
		s.addToken(LEFT_BRACE)
	case '}':
		s.addToken(RIGHT_BRACE)
	case '(':
		s.addToken(LEFT_PAREN)
	case ')':
		s.addToken(RIGHT_PAREN)
	case ',':
		s.addToken(COMMA)
	case ':':
		if s.matchNext('=') {
			s.addToken(WALRUS)
		} else {
			s.reportError("Expected '=' after ':'")
		}
	case '-':
		if s.matchNext('>') {
			s.addToken(ARROW)
		} else {
			s.reportError("Expected '>' after '-'")
		}
	case '/':
		if s.matchNext('/') {
			s.skipLineComment()
		} else if s.matchNext('*') {
			s.skipBlockComment()
		} else {
			s.reportError("Unexpected character: '/'")
		}

	// Whitespace (ignored)
	case ' ', '\r', '\t', '\n':

	default:
		if isDigit(c) {
			s.scanNumber()
		} else if isAlpha(c) {
			s.scanIdentifier()
		} else {
			s.reportError(fmt.Sprintf("Unexpected character: %q", c))
		}
	}
}

func (s *Scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	if c == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return c
}

func (s *Scanner) matchNext(expected byte) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.advance()
	return true
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

func (s *Scanner) addToken(tokenType TokenType) {
	s.tokens = append(s.tokens, Token{
		Type:     tokenType,
		Lexeme:   s.source[s.start:s.current],
		Position: s.startPosition(),
	})
}

func (s *Scanner) reportError(message string) {
	s.errors = append(s.errors, ScanError{
		Message:  message,
		Position: s.startPosition(),
		Length:   s.current - s.start,
	})
}

func (s *Scanner) position() ast.Position {
	return ast.Position{Filename: s.filename, Line: s.line, Column: s.column, Offset: s.current}
}

func (s *Scanner) startPosition() ast.Position {
	return ast.Position{Filename: s.filename, Line: s.line, Column: s.startColumn, Offset: s.start}
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isAlpha(c byte) bool {
	return unicode.IsLetter(rune(c)) || c == '_' || c == '$'
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') ||
		('a' <= c && c <= 'f') ||
		('A' <= c && c <= 'F')
}

func (s *Scanner) scanIdentifier() {
	for isAlpha(s.peek()) || isDigit(s.peek()) {
		s.advance()
	}
	s.addToken(lookupIdentifier(s.source[s.start:s.current]))
}

func (s *Scanner) scanNumber() {
	if s.source[s.start] == '0' && (s.peek() == 'x' || s.peek() == 'X') {
		s.advance()
		if !isHexDigit(s.peek()) {
			s.reportError("Invalid hex literal: expected hex digit after 0x")
			return
		}
		for isHexDigit(s.peek()) {
			s.advance()
		}
		s.addToken(HEX_NUMBER)
		return
	}
	for isDigit(s.peek()) {
		s.advance()
	}
	s.addToken(NUMBER)
}

func lookupIdentifier(text string) TokenType {
	if t, ok := KEYWORDS[text]; ok {
		return t
	}
	return IDENTIFIER
}

// Comments are dropped entirely; they never reach the parser, so a program's
// structure (and therefore its code size) is invariant to them.

func (s *Scanner) skipLineComment() {
	for s.peek() != '\n' && !s.isAtEnd() {
		s.advance()
	}
}

func (s *Scanner) skipBlockComment() {
	for !s.isAtEnd() {
		if s.peek() == '*' && s.peekNext() == '/' {
			s.advance()
			s.advance()
			return
		}
		s.advance()
	}
	s.reportError("Unterminated block comment.")
}
