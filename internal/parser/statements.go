package parser

import (
	"github.com/zast-lang/zast/internal/ast"
	"github.com/zast-lang/zast/internal/diagnostics"
	"github.com/zast-lang/zast/internal/lexer"
)

// stmtHandler returns the statement parse function registered for a token
// kind, if one exists.
func (p *Parser) stmtHandler(kind lexer.TokenKind) (func() ast.Statement, bool) {
	switch kind {
	case lexer.TokenLet, lexer.TokenConst:
		return p.parseVariableDeclaration, true
	case lexer.TokenFn:
		return p.parseFunctionDeclaration, true
	default:
		return nil, false
	}
}

// tryParseStatement parses one statement. Token kinds with a registered
// statement handler dispatch to it; anything else is parsed as an expression
// statement, which must be terminated by a `;`.
func (p *Parser) tryParseStatement() ast.Statement {
	if handler, ok := p.stmtHandler(p.current().Kind); ok {
		return handler()
	}

	expr := p.parseExpression(PrecDefault)
	if expr == nil {
		return nil
	}

	if !p.expect(Tok(lexer.TokenSemicolon)) {
		return nil
	}

	return &ast.ExpressionStatement{Span: expr.GetSpan(), Expression: expr}
}

// parseVariableDeclaration parses `('let'|'const') name ':' type '=' expr ';'`.
// The binding is mutable iff the leading keyword was `let`. A failure at any
// required token abandons the statement; the diagnostic has already been
// recorded by check/expect.
func (p *Parser) parseVariableDeclaration() ast.Statement {
	declTok := p.current()
	p.advance() // eat 'let' or 'const'

	if !p.check(Tok(lexer.TokenIdentifier)) {
		return nil
	}
	name, _ := p.current().Literal.Identifier()
	p.advance()

	if !p.expect(Tok(lexer.TokenColon)) {
		return nil
	}

	annotated := p.parseTypeAnnotation()
	if annotated == nil {
		return nil
	}

	if !p.expect(Tok(lexer.TokenAssign)) {
		return nil
	}

	value := p.parseExpression(PrecDefault)
	if value == nil {
		return nil
	}

	if !p.expect(Tok(lexer.TokenSemicolon)) {
		return nil
	}

	return &ast.VariableDeclaration{
		Span:          declTok.Span.Union(value.GetSpan()),
		Mutable:       declTok.Kind == lexer.TokenLet,
		Name:          name,
		AnnotatedType: annotated,
		Value:         value,
	}
}

// parseFunctionDeclaration parses
// `'fn' name '(' params ')' ':' return_type block`.
func (p *Parser) parseFunctionDeclaration() ast.Statement {
	fnSpan := p.current().Span
	p.advance() // eat 'fn'

	if !p.check(Tok(lexer.TokenIdentifier)) {
		return nil
	}
	name, _ := p.current().Literal.Identifier()
	p.advance()

	params, ok := p.parseFunctionParameters()
	if !ok {
		return nil
	}

	if !p.expect(Tok(lexer.TokenColon)) {
		return nil
	}

	returnType, ok := p.parseReturnType()
	if !ok {
		return nil
	}

	body := p.parseBlockStatement()
	if body == nil {
		return nil
	}

	return &ast.FunctionDeclaration{
		Span:       fnSpan.Union(body.Span),
		Name:       name,
		Parameters: params,
		ReturnType: returnType,
		Body:       body,
	}
}

// parseFunctionParameters parses `'(' [param (',' param)* [',']] ')'`.
// A comma immediately followed by `)` terminates the list without requiring
// another parameter.
func (p *Parser) parseFunctionParameters() ([]*ast.FunctionParameter, bool) {
	if !p.expect(Tok(lexer.TokenLParen)) {
		return nil, false
	}

	params := make([]*ast.FunctionParameter, 0)

	// empty parameter list
	if p.current().Kind == lexer.TokenRParen {
		p.advance()
		return params, true
	}

	param := p.parseSingleParameter()
	if param == nil {
		return nil, false
	}
	params = append(params, param)

	for !p.atEOF() && p.current().Kind == lexer.TokenComma {
		p.advance() // eat ','

		// optional trailing comma
		if p.current().Kind == lexer.TokenRParen {
			break
		}

		param := p.parseSingleParameter()
		if param == nil {
			return nil, false
		}
		params = append(params, param)
	}

	if !p.expect(Tok(lexer.TokenRParen)) {
		return nil, false
	}

	return params, true
}

// parseSingleParameter parses one `name ':' type` entry.
func (p *Parser) parseSingleParameter() *ast.FunctionParameter {
	nameTok := p.current()

	if !p.check(Tok(lexer.TokenIdentifier)) {
		return nil
	}
	name, _ := nameTok.Literal.Identifier()
	p.advance()

	if !p.expect(Tok(lexer.TokenColon)) {
		return nil
	}

	annotated := p.parseTypeAnnotation()
	if annotated == nil {
		return nil
	}

	return &ast.FunctionParameter{
		Span:          nameTok.Span,
		Name:          name,
		AnnotatedType: annotated,
	}
}

// parseBlockStatement parses `'{' statement* '}'`. The block's span covers
// from the opening to the closing brace inclusive.
func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	lbSpan := p.current().Span

	if !p.expect(Tok(lexer.TokenLBrace)) {
		return nil
	}

	stmts := make([]ast.Statement, 0)

	for !p.atEOF() && p.current().Kind != lexer.TokenRBrace {
		stmt := p.tryParseStatement()
		if stmt == nil {
			return nil
		}
		stmts = append(stmts, stmt)
	}

	rbSpan := p.current().Span

	if !p.expect(Tok(lexer.TokenRBrace)) {
		return nil
	}

	return &ast.BlockStatement{
		Span:       lbSpan.Union(rbSpan),
		Statements: stmts,
	}
}

// parseTypeAnnotation parses a type annotation: zero or more `*` pointer
// prefixes followed by a primitive type name.
func (p *Parser) parseTypeAnnotation() ast.AnnotatedType {
	if p.current().Kind == lexer.TokenMul {
		p.advance() // eat '*'

		inner := p.parseTypeAnnotation()
		if inner == nil {
			return nil
		}
		return &ast.PointerType{Inner: inner}
	}

	if p.current().Kind != lexer.TokenIdentifier {
		cur := p.current()
		p.errors.Add(&diagnostics.ExpectedToken{
			At:        cur.Span,
			Expected:  []diagnostics.Expectation{diagnostics.ExpectConcept("type annotation")},
			FoundName: cur.Kind.String(),
		})
		return nil
	}

	name, _ := p.current().Literal.Identifier()
	p.advance()

	return &ast.PrimitiveType{Name: name}
}

// parseReturnType parses the annotation after a function's `:`. The name
// `void` is the distinguished no-value return type, represented as a nil
// annotation.
func (p *Parser) parseReturnType() (ast.AnnotatedType, bool) {
	cur := p.current()

	if cur.Kind == lexer.TokenIdentifier {
		if name, _ := cur.Literal.Identifier(); name == "void" {
			p.advance()
			return nil, true
		}
	}

	if cur.Kind != lexer.TokenIdentifier && cur.Kind != lexer.TokenMul {
		p.errors.Add(&diagnostics.ExpectedToken{
			At:        cur.Span,
			Expected:  []diagnostics.Expectation{diagnostics.ExpectConcept("return type")},
			FoundName: cur.Kind.String(),
		})
		return nil, false
	}

	annotated := p.parseTypeAnnotation()
	if annotated == nil {
		return nil, false
	}
	return annotated, true
}
