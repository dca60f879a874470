package parser

import (
	"mica/interpreter-go/pkg/ast"
	"mica/interpreter-go/pkg/lexer"
)

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.at().Kind {
	case lexer.Let, lexer.Const:
		return p.parseVariableDeclaration()
	default:
		return p.parseExpression()
	}
}

// parseVariableDeclaration handles `let x;`, `let x = expr;` and
// `const x = expr;`. A missing initializer defaults to the identifier null.
func (p *Parser) parseVariableDeclaration() (ast.Statement, error) {
	isConst := p.eat().Kind == lexer.Const
	ident, err := p.expect(lexer.Identifier, "expected identifier")
	if err != nil {
		return nil, err
	}

	if p.at().Kind == lexer.Semicolon {
		if isConst {
			return nil, &ParseError{Message: ErrConstWithoutInitializer.Error(), Found: p.at(), Err: ErrConstWithoutInitializer}
		}
		p.eat()
		return ast.NewVariableDeclaration(false, ident.Name, ast.NewIdentifier("null")), nil
	}

	if _, err := p.expect(lexer.Equals, "expected equals"); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.Semicolon, "expected semicolon"); err != nil {
		return nil, err
	}
	return ast.NewVariableDeclaration(isConst, ident.Name, value), nil
}
