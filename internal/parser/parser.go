package parser

import (
	"fmt"

	"yulite/internal/ast"
)

type ParseError struct {
	Message  string
	Position ast.Position
}

type Parser struct {
	tokens  []Token
	current int
	errors  []ParseError
}

// ParseSource scans and parses an IR program. The program must consist of a
// single top-level block. Scanner and parser errors are accumulated rather
// than aborting on the first problem.
func ParseSource(filename, source string) (*ast.Block, []ParseError, []ScanError) {
	scanner := NewScanner(filename, source)
	tokens := scanner.ScanTokens()

	p := &Parser{tokens: tokens}
	block := p.parseTopLevel()
	return block, p.errors, scanner.Errors()
}

func (p *Parser) parseTopLevel() *ast.Block {
	if !p.check(LEFT_BRACE) {
		p.reportError("Expected '{' at start of program")
		return nil
	}
	block := p.parseBlock()
	if !p.check(EOF) {
		p.reportError(fmt.Sprintf("Expected end of input, found %q", p.peek().Lexeme))
	}
	return block
}

func (p *Parser) parseBlock() *ast.Block {
	block := &ast.Block{Pos: p.peek().Position}
	p.expect(LEFT_BRACE, "Expected '{'")

	for !p.check(RIGHT_BRACE) && !p.check(EOF) {
		before := p.current
		if stmt := p.parseStatement(); stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		// Error recovery: always make progress.
		if p.current == before {
			p.advance()
		}
	}

	p.expect(RIGHT_BRACE, "Expected '}'")
	return block
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.peek().Type {
	case LEFT_BRACE:
		return p.parseBlock()
	case LET:
		return p.parseVariableDeclaration()
	case IF:
		return p.parseIf()
	case FOR:
		return p.parseForLoop()
	case FUNCTION:
		return p.parseFunctionDefinition()
	case IDENTIFIER:
		// An identifier followed by ':=' or ',' starts an assignment;
		// anything else is an expression statement.
		if p.peekNext().Type == WALRUS || p.peekNext().Type == COMMA {
			return p.parseAssignment()
		}
		return p.parseExpressionStatement()
	case NUMBER, HEX_NUMBER, TRUE, FALSE:
		return p.parseExpressionStatement()
	default:
		p.reportError(fmt.Sprintf("Unexpected token %q", p.peek().Lexeme))
		return nil
	}
}

func (p *Parser) parseVariableDeclaration() ast.Statement {
	pos := p.peek().Position
	p.expect(LET, "Expected 'let'")

	names := p.parseIdentifierList()
	decl := &ast.VariableDeclaration{Pos: pos, Names: names}
	if p.check(WALRUS) {
		p.advance()
		decl.Value = p.parseExpression()
	}
	return decl
}

func (p *Parser) parseAssignment() ast.Statement {
	pos := p.peek().Position
	targets := p.parseIdentifierList()
	p.expect(WALRUS, "Expected ':=' in assignment")
	value := p.parseExpression()
	return &ast.Assignment{Pos: pos, Targets: targets, Value: value}
}

func (p *Parser) parseIf() ast.Statement {
	pos := p.peek().Position
	p.expect(IF, "Expected 'if'")
	condition := p.parseExpression()
	body := p.parseBlock()
	return &ast.If{Pos: pos, Condition: condition, Body: body}
}

func (p *Parser) parseForLoop() ast.Statement {
	pos := p.peek().Position
	p.expect(FOR, "Expected 'for'")
	init := p.parseBlock()
	condition := p.parseExpression()
	post := p.parseBlock()
	body := p.parseBlock()
	return &ast.ForLoop{Pos: pos, Init: init, Condition: condition, Post: post, Body: body}
}

func (p *Parser) parseFunctionDefinition() ast.Statement {
	pos := p.peek().Position
	p.expect(FUNCTION, "Expected 'function'")
	name := p.parseIdentifier()
	p.expect(LEFT_PAREN, "Expected '(' after function name")

	var params []*ast.Identifier
	if !p.check(RIGHT_PAREN) {
		params = p.parseIdentifierList()
	}
	p.expect(RIGHT_PAREN, "Expected ')' after parameters")

	var returns []*ast.Identifier
	if p.check(ARROW) {
		p.advance()
		returns = p.parseIdentifierList()
	}

	body := p.parseBlock()
	return &ast.FunctionDefinition{Pos: pos, Name: name, Params: params, Returns: returns, Body: body}
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	pos := p.peek().Position
	expr := p.parseExpression()
	if expr == nil {
		return nil
	}
	return &ast.ExpressionStatement{Pos: pos, Expr: expr}
}

func (p *Parser) parseExpression() ast.Expression {
	switch p.peek().Type {
	case NUMBER, HEX_NUMBER, TRUE, FALSE:
		tok := p.advance()
		return &ast.Literal{Pos: tok.Position, Value: tok.Lexeme}
	case IDENTIFIER:
		ident := p.parseIdentifier()
		if p.check(LEFT_PAREN) {
			return p.parseCallArguments(ident)
		}
		return ident
	default:
		p.reportError(fmt.Sprintf("Expected expression, found %q", p.peek().Lexeme))
		return nil
	}
}

func (p *Parser) parseCallArguments(callee *ast.Identifier) ast.Expression {
	call := &ast.FunctionCall{Pos: callee.Pos, Func: callee}
	p.expect(LEFT_PAREN, "Expected '('")

	if !p.check(RIGHT_PAREN) {
		for {
			if arg := p.parseExpression(); arg != nil {
				call.Args = append(call.Args, arg)
			} else {
				break
			}
			if !p.check(COMMA) {
				break
			}
			p.advance()
		}
	}

	p.expect(RIGHT_PAREN, "Expected ')' after call arguments")
	return call
}

func (p *Parser) parseIdentifierList() []*ast.Identifier {
	idents := []*ast.Identifier{p.parseIdentifier()}
	for p.check(COMMA) {
		p.advance()
		idents = append(idents, p.parseIdentifier())
	}
	return idents
}

func (p *Parser) parseIdentifier() *ast.Identifier {
	if !p.check(IDENTIFIER) {
		p.reportError(fmt.Sprintf("Expected identifier, found %q", p.peek().Lexeme))
		return &ast.Identifier{Pos: p.peek().Position}
	}
	tok := p.advance()
	return &ast.Identifier{Pos: tok.Position, Name: tok.Lexeme}
}

// Token stream helpers.

func (p *Parser) peek() Token {
	return p.tokens[p.current]
}

func (p *Parser) peekNext() Token {
	if p.current+1 >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.current+1]
}

func (p *Parser) check(t TokenType) bool {
	return p.peek().Type == t
}

func (p *Parser) advance() Token {
	tok := p.tokens[p.current]
	if p.current < len(p.tokens)-1 {
		p.current++
	}
	return tok
}

func (p *Parser) expect(t TokenType, message string) Token {
	if p.check(t) {
		return p.advance()
	}
	p.reportError(message)
	return p.peek()
}

func (p *Parser) reportError(message string) {
	p.errors = append(p.errors, ParseError{Message: message, Position: p.peek().Position})
}
