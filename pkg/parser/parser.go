// Package parser builds Mica ASTs from token sequences by recursive descent.
//
// Precedence, lowest to highest:
//
//	assignment      right associative, consumes its own ';'
//	object literal  only when the head token is '{'
//	additive        + -
//	multiplicative  * / %
//	member-or-call  member chain followed by optional call suffixes
//	member          .ident and [expr], left associative
//	primary         (expr), number, identifier
package parser

import (
	"mica/interpreter-go/pkg/ast"
	"mica/interpreter-go/pkg/lexer"
)

// Parser walks a token slice with a forward cursor. The slice is never
// modified; reading past the end keeps yielding EOF.
type Parser struct {
	tokens []lexer.Token
	pos    int
}

// New returns a parser over tokens. A missing trailing EOF is tolerated.
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse consumes every token and returns the program node.
func Parse(tokens []lexer.Token) (*ast.Program, error) {
	return New(tokens).ParseProgram()
}

// ParseSource tokenizes and parses source in one step.
func ParseSource(source string) (*ast.Program, error) {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

// ParseProgram parses statements until EOF.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	statements := make([]ast.Statement, 0)
	for p.notEOF() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	return ast.NewProgram(statements), nil
}

func (p *Parser) at() lexer.Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return lexer.Token{Kind: lexer.EOF}
}

func (p *Parser) eat() lexer.Token {
	tok := p.at()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

func (p *Parser) notEOF() bool {
	return p.at().Kind != lexer.EOF
}

func (p *Parser) expect(kind lexer.Kind, message string) (lexer.Token, error) {
	tok := p.eat()
	if tok.Kind != kind {
		return tok, unexpected(tok, message)
	}
	return tok, nil
}
