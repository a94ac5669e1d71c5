// Package lexer implements the Zast scanner: a single-pass, character-level
// tokenizer with one character of lookahead. It produces the flat token
// sequence consumed by the parser, always terminated by exactly one EOF token.
package lexer

import (
	"strconv"

	"github.com/zast-lang/zast/internal/diagnostics"
	"github.com/zast-lang/zast/internal/position"
)

// Lexer scans Zast source text into tokens. Illegal characters produce
// IllegalToken diagnostics but do not stop the scan; every well-formed lexeme
// before, between, and after illegal characters is still tokenized.
type Lexer struct {
	source []rune
	tokens []Token
	errors *diagnostics.Collector

	pos    int
	line   int
	column int
}

// New creates a Lexer over the given source text, positioned at line 1,
// column 1. No scanning happens until Tokenize is called.
func New(src string) *Lexer {
	return &Lexer{
		source: []rune(src),
		errors: diagnostics.NewCollector(),
		line:   1,
		column: 1,
	}
}

// Tokenize scans the entire source and returns the token stream, terminated
// by a single EOF token. The returned diagnostics are non-empty iff at least
// one illegal character was encountered; the token stream is complete either
// way.
func (l *Lexer) Tokenize() ([]Token, []diagnostics.Diagnostic) {
	for {
		l.skipWhitespace()
		if l.isAtEnd() {
			break
		}
		l.tokens = append(l.tokens, l.readToken())
	}

	l.tokens = append(l.tokens, Token{
		Kind:    TokenEOF,
		Lexeme:  "END_OF_FILE",
		Literal: NoLiteral,
		Span:    position.NewSpan(l.column, l.column, l.line, l.line),
	})

	if l.errors.HasErrors() {
		return l.tokens, l.errors.Drain()
	}
	return l.tokens, nil
}

// readToken dispatches on the current character: digits to number scanning,
// identifier heads to word scanning, quotes to string scanning, and known
// punctuation to single-character tokens. Anything else is illegal.
func (l *Lexer) readToken() Token {
	c := l.current()

	if isDigit(c) {
		return l.readNumber()
	}
	if isIdentHead(c) {
		return l.readWord()
	}
	if c == '"' {
		return l.readString()
	}

	kind := TokenIllegal
	switch c {
	case ';':
		kind = TokenSemicolon
	case ',':
		kind = TokenComma
	case ':':
		kind = TokenColon
	case '=':
		kind = TokenAssign
	case '.':
		kind = TokenDot
	case '+':
		kind = TokenPlus
	case '-':
		kind = TokenMinus
	case '*':
		kind = TokenMul
	case '/':
		kind = TokenDiv
	case '&':
		kind = TokenAmpersand
	case '(':
		kind = TokenLParen
	case ')':
		kind = TokenRParen
	case '{':
		kind = TokenLBrace
	case '}':
		kind = TokenRBrace
	}

	span := position.NewSpan(l.column, l.column, l.line, l.line)
	lexeme := string(c)
	l.advance()

	if kind == TokenIllegal {
		l.errors.Add(&diagnostics.IllegalToken{At: span, Lexeme: lexeme})
	}

	return Token{Kind: kind, Lexeme: lexeme, Literal: NoLiteral, Span: span}
}

// readWord scans a keyword or identifier: an identifier head followed by any
// run of identifier characters.
func (l *Lexer) readWord() Token {
	startCol, startLn, startPos := l.column, l.line, l.pos

	for !l.isAtEnd() && isIdentTail(l.current()) {
		l.advance()
	}

	word := string(l.source[startPos:l.pos])
	span := position.NewSpan(startCol, l.column-1, startLn, l.line)

	kind := LookupKeyword(word)
	lit := NoLiteral
	if kind == TokenIdentifier {
		lit = IdentifierLiteral(word)
	}

	return Token{Kind: kind, Lexeme: word, Literal: lit, Span: span}
}

// readNumber scans an integer literal, or a float literal when the digit run
// is followed by a '.' and at least one more digit. A trailing '.' without a
// digit after it is left for the next token.
func (l *Lexer) readNumber() Token {
	startCol, startLn, startPos := l.column, l.line, l.pos

	for !l.isAtEnd() && isDigit(l.current()) {
		l.advance()
	}

	isFloat := false
	if !l.isAtEnd() && l.current() == '.' && isDigit(l.peek()) {
		isFloat = true
		l.advance() // consume '.'
		for !l.isAtEnd() && isDigit(l.current()) {
			l.advance()
		}
	}

	lexeme := string(l.source[startPos:l.pos])
	span := position.NewSpan(startCol, l.column-1, startLn, l.line)

	if isFloat {
		// Only digit characters were consumed, the parse cannot fail.
		v, _ := strconv.ParseFloat(lexeme, 64)
		return Token{Kind: TokenFloat, Lexeme: lexeme, Literal: FloatLiteral(v), Span: span}
	}

	v, _ := strconv.ParseInt(lexeme, 10, 64)
	return Token{Kind: TokenInteger, Lexeme: lexeme, Literal: IntegerLiteral(v), Span: span}
}

// readString scans a double-quoted string literal. The payload excludes the
// quotes. An unterminated string is reported as illegal.
func (l *Lexer) readString() Token {
	startCol, startLn, startPos := l.column, l.line, l.pos
	l.advance() // consume opening '"'

	for !l.isAtEnd() && l.current() != '"' && l.current() != '\n' {
		l.advance()
	}

	if l.isAtEnd() || l.current() != '"' {
		lexeme := string(l.source[startPos:l.pos])
		span := position.NewSpan(startCol, l.column-1, startLn, l.line)
		l.errors.Add(&diagnostics.IllegalToken{At: span, Lexeme: lexeme})
		return Token{Kind: TokenIllegal, Lexeme: lexeme, Literal: NoLiteral, Span: span}
	}

	l.advance() // consume closing '"'

	lexeme := string(l.source[startPos:l.pos])
	span := position.NewSpan(startCol, l.column-1, startLn, l.line)

	return Token{Kind: TokenString, Lexeme: lexeme, Literal: StringLiteral(lexeme[1 : len(lexeme)-1]), Span: span}
}

// skipWhitespace consumes spaces, tabs, carriage returns, and newlines,
// updating line and column counters.
func (l *Lexer) skipWhitespace() {
	for !l.isAtEnd() {
		switch l.current() {
		case '\n':
			l.pos++
			l.line++
			l.column = 1
		case ' ', '\t', '\r':
			l.advance()
		default:
			return
		}
	}
}

func (l *Lexer) current() rune {
	return l.source[l.pos]
}

func (l *Lexer) peek() rune {
	if l.pos+1 >= len(l.source) {
		return 0
	}
	return l.source[l.pos+1]
}

func (l *Lexer) advance() {
	if !l.isAtEnd() {
		l.pos++
		l.column++
	}
}

func (l *Lexer) isAtEnd() bool {
	return l.pos >= len(l.source)
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isIdentHead(c rune) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentTail(c rune) bool {
	return isIdentHead(c) || isDigit(c)
}
