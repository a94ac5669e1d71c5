// Package parser implements the Zast parser: a Pratt (top-down operator
// precedence) expression engine with table-driven statement dispatch and
// panic-mode error recovery.
//
// Parse functions signal failure by returning nil after recording the
// detailed diagnostic in the parser's collector; the caller abandons the
// current subtree and resynchronizes at the next statement boundary so later,
// unrelated errors are still discovered in the same run.
package parser

import (
	"github.com/zast-lang/zast/internal/ast"
	"github.com/zast-lang/zast/internal/diagnostics"
	"github.com/zast-lang/zast/internal/lexer"
)

// Precedence is a binding-power level for Pratt expression parsing. Token
// kinds without a table entry have effective precedence PrecDefault, which
// terminates expression parsing; this is what lets statement terminators and
// block delimiters stop expression consumption safely.
type Precedence int

const (
	PrecDefault Precedence = iota
	PrecAssignment
	PrecTernary
	PrecLogicalOr
	PrecLogicalAnd
	PrecEquals
	PrecComparison
	PrecAdditive
	PrecMultiplicative
	PrecUnary
	PrecExponent
	PrecCall
	PrecGrouping
)

// precedences maps operator token kinds to their binding power. LParen is
// bound only so grouping can re-enter the expression engine; it is never
// used as an infix operator.
var precedences = map[lexer.TokenKind]Precedence{
	lexer.TokenPlus:   PrecAdditive,
	lexer.TokenMinus:  PrecAdditive,
	lexer.TokenMul:    PrecMultiplicative,
	lexer.TokenDiv:    PrecMultiplicative,
	lexer.TokenLParen: PrecGrouping,
}

// precedenceOf returns the table entry for kind, or PrecDefault when absent.
func precedenceOf(kind lexer.TokenKind) Precedence {
	if prec, ok := precedences[kind]; ok {
		return prec
	}
	return PrecDefault
}

// Parser consumes a token stream and produces a Program. The token sequence
// is read-only; the cursor only moves forward.
type Parser struct {
	tokens []lexer.Token
	pos    int
	errors *diagnostics.Collector
}

// New creates a parser over a token stream. The stream must be terminated by
// exactly one EOF token, as the lexer guarantees.
func New(tokens []lexer.Token) *Parser {
	return &Parser{
		tokens: tokens,
		errors: diagnostics.NewCollector(),
	}
}

// ParseProgram parses the whole token stream into a program of top-level
// statements. When a statement fails to parse, the parser resynchronizes and
// keeps going, so the returned diagnostics can cover several independent
// errors. The contract is strictly binary: any recorded diagnostic makes the
// whole parse fail and no tree is returned.
func (p *Parser) ParseProgram() (*ast.Program, []diagnostics.Diagnostic) {
	program := &ast.Program{}

	for !p.atEOF() {
		stmt := p.tryParseStatement()
		if stmt == nil {
			p.syncTokens()
			continue
		}
		program.Statements = append(program.Statements, stmt)
	}

	if p.errors.HasErrors() {
		return nil, p.errors.Drain()
	}
	return program, nil
}

// syncTokens resynchronizes the parser after a statement-level failure.
// It tracks delimiter nesting so a `)` or `}` that closes an inner construct
// is never mistaken for the statement boundary. A `;` or closing delimiter at
// depth 0 is consumed and ends recovery; EOF ends it unconditionally. Every
// iteration consumes a token, so recovery always makes forward progress.
func (p *Parser) syncTokens() {
	depth := 0

	for !p.atEOF() {
		switch p.current().Kind {
		case lexer.TokenLParen, lexer.TokenLBrace:
			depth++
			p.advance()
		case lexer.TokenRParen, lexer.TokenRBrace:
			if depth == 0 {
				p.advance()
				return
			}
			depth--
			p.advance()
		case lexer.TokenSemicolon:
			p.advance()
			if depth == 0 {
				return
			}
		default:
			p.advance()
		}
	}
}

// Expected is one entry of an expected-token set handed to check/expect:
// either a concrete token kind or a named concept. Concepts never match a
// token; they only sharpen the diagnostic message.
type Expected struct {
	Kind    lexer.TokenKind
	Concept string
}

// Tok builds an Expected for a concrete token kind.
func Tok(kind lexer.TokenKind) Expected {
	return Expected{Kind: kind}
}

// Concept builds an Expected for a named concept such as "type annotation".
func Concept(name string) Expected {
	return Expected{Concept: name}
}

func (e Expected) toDiagnostic() diagnostics.Expectation {
	if e.Concept != "" {
		return diagnostics.ExpectConcept(e.Concept)
	}
	return diagnostics.ExpectToken(e.Kind.String())
}

// check tests whether the current token matches any entry of the expected
// set, without advancing. On mismatch it records an ExpectedToken diagnostic
// and returns false.
func (p *Parser) check(expected ...Expected) bool {
	cur := p.current()

	for _, e := range expected {
		if e.Concept == "" && cur.Kind == e.Kind {
			return true
		}
	}

	set := make([]diagnostics.Expectation, len(expected))
	for i, e := range expected {
		set[i] = e.toDiagnostic()
	}

	p.errors.Add(&diagnostics.ExpectedToken{
		At:        cur.Span,
		Expected:  set,
		FoundName: cur.Kind.String(),
	})
	return false
}

// expect behaves like check and additionally advances past the current token
// on success.
func (p *Parser) expect(expected ...Expected) bool {
	if p.check(expected...) {
		p.advance()
		return true
	}
	return false
}

// current returns the token under the cursor without advancing.
func (p *Parser) current() lexer.Token {
	return p.tokens[p.pos]
}

// peekAt returns the token n positions ahead, or the current token when the
// lookahead would run past the end of the stream.
func (p *Parser) peekAt(n int) lexer.Token {
	if p.pos+n >= len(p.tokens) {
		return p.tokens[p.pos]
	}
	return p.tokens[p.pos+n]
}

// advance moves the cursor one token forward. It has no effect on the final
// token, so the cursor can never run past EOF.
func (p *Parser) advance() {
	if p.pos+1 < len(p.tokens) {
		p.pos++
	}
}

func (p *Parser) atEOF() bool {
	return p.current().Kind == lexer.TokenEOF
}
