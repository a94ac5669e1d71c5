package parser

import (
	"github.com/zast-lang/zast/internal/ast"
	"github.com/zast-lang/zast/internal/diagnostics"
	"github.com/zast-lang/zast/internal/lexer"
)

// nudHandler returns the prefix (null denotation) parse function for a token
// kind, if one exists.
func (p *Parser) nudHandler(kind lexer.TokenKind) (func() ast.Expression, bool) {
	switch kind {
	case lexer.TokenInteger:
		return p.parseIntegerLiteral, true
	case lexer.TokenFloat:
		return p.parseFloatLiteral, true
	case lexer.TokenIdentifier:
		return p.parseIdentifier, true
	case lexer.TokenMul:
		return p.parseDereferenceExpression, true
	case lexer.TokenAmpersand:
		return p.parseAddressExpression, true
	case lexer.TokenLParen:
		return p.parseGroupedExpression, true
	default:
		return nil, false
	}
}

// ledHandler returns the infix (left denotation) parse function for a token
// kind, if one exists.
func (p *Parser) ledHandler(kind lexer.TokenKind) (func(ast.Expression) ast.Expression, bool) {
	switch kind {
	case lexer.TokenPlus, lexer.TokenMinus, lexer.TokenMul, lexer.TokenDiv:
		return p.parseBinaryExpression, true
	default:
		return nil, false
	}
}

// parseExpression is the Pratt engine. It dispatches to the prefix handler
// for the current token, then folds in infix operators while their precedence
// exceeds min. A token with no prefix handler cannot begin an expression and
// is reported as unexpected.
func (p *Parser) parseExpression(min Precedence) ast.Expression {
	cur := p.current()

	nud, ok := p.nudHandler(cur.Kind)
	if !ok {
		p.errors.Add(&diagnostics.UnexpectedToken{
			At:        cur.Span,
			TokenName: cur.Kind.String(),
		})
		return nil
	}

	left := nud()
	if left == nil {
		return nil
	}

	for !p.atEOF() {
		if min >= precedenceOf(p.current().Kind) {
			break
		}

		led, ok := p.ledHandler(p.current().Kind)
		if !ok {
			break
		}

		left = led(left)
		if left == nil {
			return nil
		}
	}

	return left
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	tok := p.current()
	value, _ := tok.Literal.Int()
	p.advance()

	return &ast.IntegerLiteral{Span: tok.Span, Value: value}
}

func (p *Parser) parseFloatLiteral() ast.Expression {
	tok := p.current()
	value, _ := tok.Literal.Float()
	p.advance()

	return &ast.FloatLiteral{Span: tok.Span, Value: value}
}

func (p *Parser) parseIdentifier() ast.Expression {
	tok := p.current()
	name, _ := tok.Literal.Identifier()
	p.advance()

	return &ast.Identifier{Span: tok.Span, Name: name}
}

// parseDereferenceExpression parses `*expr`. The operand is parsed at unary
// precedence so `*p + 1` groups as `(*p) + 1`.
func (p *Parser) parseDereferenceExpression() ast.Expression {
	opSpan := p.current().Span
	p.advance() // eat '*'

	operand := p.parseExpression(PrecUnary)
	if operand == nil {
		return nil
	}

	return &ast.DereferenceExpression{
		Span:    opSpan.Union(operand.GetSpan()),
		Operand: operand,
	}
}

// parseAddressExpression parses `&expr`, with the same unary binding as
// dereference.
func (p *Parser) parseAddressExpression() ast.Expression {
	opSpan := p.current().Span
	p.advance() // eat '&'

	operand := p.parseExpression(PrecUnary)
	if operand == nil {
		return nil
	}

	return &ast.AddressExpression{
		Span:    opSpan.Union(operand.GetSpan()),
		Operand: operand,
	}
}

// parseBinaryExpression parses an infix operator application with the left
// operand already in hand. The right-hand side is parsed at the operator's
// own precedence, which makes same-level operators left-associative while
// still letting tighter operators nest on the right. The node's span is the
// union of its operand spans.
func (p *Parser) parseBinaryExpression(left ast.Expression) ast.Expression {
	op := p.current().Kind
	p.advance() // eat operator

	right := p.parseExpression(precedenceOf(op))
	if right == nil {
		return nil
	}

	return &ast.BinaryExpression{
		Span:     left.GetSpan().Union(right.GetSpan()),
		Left:     left,
		Operator: op,
		Right:    right,
	}
}

// parseGroupedExpression parses `(expr)`. The parentheses introduce no node:
// the inner expression is returned as-is, keeping its own span.
func (p *Parser) parseGroupedExpression() ast.Expression {
	p.advance() // eat '('

	expr := p.parseExpression(PrecDefault)
	if expr == nil {
		return nil
	}

	if !p.expect(Tok(lexer.TokenRParen)) {
		return nil
	}

	return expr
}
