package parser

import (
	"mica/interpreter-go/pkg/ast"
	"mica/interpreter-go/pkg/lexer"
)

func (p *Parser) parseExpression() (ast.Expression, error) {
	return p.parseAssignmentExpression()
}

// parseAssignmentExpression recurses for the right-hand side, and each level
// consumes its own trailing ';'. A bare expression statement consumes none.
func (p *Parser) parseAssignmentExpression() (ast.Expression, error) {
	left, err := p.parseObjectExpression()
	if err != nil {
		return nil, err
	}
	if p.at().Kind != lexer.Equals {
		return left, nil
	}
	p.eat()
	value, err := p.parseAssignmentExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.Semicolon, "expected semicolon"); err != nil {
		return nil, err
	}
	return ast.NewAssignmentExpression(left, value), nil
}

// parseObjectExpression returns the literal without continuing into the
// additive level, so `{a: 1} + 2` leaves `+ 2` for the next statement.
func (p *Parser) parseObjectExpression() (ast.Expression, error) {
	if p.at().Kind != lexer.OpenBrace {
		return p.parseAdditiveExpression()
	}
	p.eat()

	properties := make([]*ast.PropertyLiteral, 0)
	for p.notEOF() && p.at().Kind != lexer.CloseBrace {
		key, err := p.expect(lexer.Identifier, "object literal key expected")
		if err != nil {
			return nil, err
		}
		switch p.at().Kind {
		case lexer.Comma:
			// {key, ...}
			p.eat()
			properties = append(properties, ast.NewPropertyLiteral(key.Name, nil))
			continue
		case lexer.CloseBrace:
			// {..., key}
			properties = append(properties, ast.NewPropertyLiteral(key.Name, nil))
			continue
		}

		if _, err := p.expect(lexer.Colon, "colon expected after object literal key"); err != nil {
			return nil, err
		}
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		properties = append(properties, ast.NewPropertyLiteral(key.Name, value))
		if p.at().Kind != lexer.CloseBrace {
			if _, err := p.expect(lexer.Comma, "expected comma or closing brace following a property"); err != nil {
				return nil, err
			}
		}
	}

	if _, err := p.expect(lexer.CloseBrace, "expected closing brace for object literal"); err != nil {
		return nil, err
	}
	return ast.NewObjectLiteral(properties), nil
}

func (p *Parser) parseAdditiveExpression() (ast.Expression, error) {
	return p.parseBinaryLevel(p.parseMultiplicativeExpression, ast.OpAdd, ast.OpSub)
}

func (p *Parser) parseMultiplicativeExpression() (ast.Expression, error) {
	return p.parseBinaryLevel(p.parseMemberCallExpression, ast.OpMul, ast.OpDiv, ast.OpMod)
}

// parseBinaryLevel left-folds operands joined by any of ops.
func (p *Parser) parseBinaryLevel(operand func() (ast.Expression, error), ops ...ast.Operator) (ast.Expression, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.at()
		if tok.Kind != lexer.BinaryOperator || !containsOperator(ops, ast.Operator(tok.Op)) {
			return left, nil
		}
		p.eat()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpression(ast.Operator(tok.Op), left, right)
	}
}

func containsOperator(ops []ast.Operator, op ast.Operator) bool {
	for _, candidate := range ops {
		if candidate == op {
			return true
		}
	}
	return false
}

func (p *Parser) parseMemberCallExpression() (ast.Expression, error) {
	member, err := p.parseMemberExpression()
	if err != nil {
		return nil, err
	}
	if p.at().Kind == lexer.OpenParen {
		return p.parseCallExpression(member)
	}
	return member, nil
}

func (p *Parser) parseMemberExpression() (ast.Expression, error) {
	object, err := p.parsePrimaryExpression()
	if err != nil {
		return nil, err
	}
	for {
		switch p.at().Kind {
		case lexer.Dot:
			dot := p.eat()
			property, err := p.parsePrimaryExpression()
			if err != nil {
				return nil, err
			}
			if _, ok := property.(*ast.Identifier); !ok {
				return nil, unexpectedf(dot, "cannot use dot operator without right hand side being an identifier (found %s)", property.NodeType())
			}
			object = ast.NewMemberExpression(object, property, false)
		case lexer.OpenBracket:
			p.eat()
			property, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(lexer.CloseBracket, "missing closing bracket in computed value"); err != nil {
				return nil, err
			}
			object = ast.NewMemberExpression(object, property, true)
		default:
			return object, nil
		}
	}
}

func (p *Parser) parseCallExpression(caller ast.Expression) (ast.Expression, error) {
	args, err := p.parseArgs()
	if err != nil {
		return nil, err
	}
	call := ast.NewCallExpression(caller, args)
	if p.at().Kind == lexer.OpenParen {
		return p.parseCallExpression(call)
	}
	return call, nil
}

func (p *Parser) parseArgs() ([]ast.Expression, error) {
	if _, err := p.expect(lexer.OpenParen, "expected open parenthesis before arguments"); err != nil {
		return nil, err
	}
	args := make([]ast.Expression, 0)
	if p.at().Kind != lexer.CloseParen {
		for {
			arg, err := p.parseAssignmentExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.at().Kind != lexer.Comma {
				break
			}
			p.eat()
		}
	}
	if _, err := p.expect(lexer.CloseParen, "expected close parenthesis following arguments"); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *Parser) parsePrimaryExpression() (ast.Expression, error) {
	tok := p.at()
	switch tok.Kind {
	case lexer.OpenParen:
		p.eat()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.CloseParen, "unexpected token found inside parenthesised expression; expected close parenthesis"); err != nil {
			return nil, err
		}
		return expr, nil
	case lexer.Number:
		p.eat()
		return ast.NewNumericLiteral(tok.Value), nil
	case lexer.Identifier:
		p.eat()
		return ast.NewIdentifier(tok.Name), nil
	default:
		return nil, unexpected(tok, "expected a number, identifier or parenthesised expression")
	}
}
