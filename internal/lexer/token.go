package lexer

import (
	"fmt"

	"github.com/zast-lang/zast/internal/position"
)

// TokenKind classifies a token.
type TokenKind int

const (
	// Special tokens
	TokenIllegal TokenKind = iota
	TokenEOF

	// Literals
	TokenString
	TokenIdentifier
	TokenInteger
	TokenFloat

	// Punctuation
	TokenSemicolon
	TokenComma
	TokenColon
	TokenAssign
	TokenDot

	// Operators
	TokenPlus
	TokenMinus
	TokenMul
	TokenDiv
	TokenAmpersand

	// Delimiters
	TokenLParen
	TokenRParen
	TokenLBrace
	TokenRBrace

	// Keywords
	TokenLet
	TokenConst
	TokenFn
)

var tokenNames = map[TokenKind]string{
	TokenIllegal:    "Illegal",
	TokenEOF:        "Eof",
	TokenString:     "String",
	TokenIdentifier: "Identifier",
	TokenInteger:    "Integer",
	TokenFloat:      "Float",
	TokenSemicolon:  "Semicolon",
	TokenComma:      "Comma",
	TokenColon:      "Colon",
	TokenAssign:     "Assignment",
	TokenDot:        "Dot",
	TokenPlus:       "Plus",
	TokenMinus:      "Minus",
	TokenMul:        "Multiply",
	TokenDiv:        "Divide",
	TokenAmpersand:  "Ampersand",
	TokenLParen:     "LeftParenthesis",
	TokenRParen:     "RightParenthesis",
	TokenLBrace:     "LeftBrace",
	TokenRBrace:     "RightBrace",
	TokenLet:        "Let",
	TokenConst:      "Const",
	TokenFn:         "Fn",
}

// String returns the display name of the token kind.
func (tk TokenKind) String() string {
	if name, ok := tokenNames[tk]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", int(tk))
}

var keywords = map[string]TokenKind{
	"let":   TokenLet,
	"const": TokenConst,
	"fn":    TokenFn,
}

// LookupKeyword classifies a scanned word as a keyword kind or TokenIdentifier.
func LookupKeyword(word string) TokenKind {
	if kind, ok := keywords[word]; ok {
		return kind
	}
	return TokenIdentifier
}

// LiteralKind tags the payload carried by a Literal.
type LiteralKind int

const (
	LiteralNone LiteralKind = iota
	LiteralString
	LiteralInteger
	LiteralFloat
	LiteralIdentifier
)

// Literal is the typed payload of a token. Operators, keywords, and
// punctuation carry no payload.
type Literal struct {
	kind LiteralKind
	str  string
	i    int64
	f    float64
}

// NoLiteral is the payload of tokens without an associated value.
var NoLiteral = Literal{kind: LiteralNone}

// StringLiteral builds a string payload.
func StringLiteral(v string) Literal { return Literal{kind: LiteralString, str: v} }

// IntegerLiteral builds a 64-bit signed integer payload.
func IntegerLiteral(v int64) Literal { return Literal{kind: LiteralInteger, i: v} }

// FloatLiteral builds a 64-bit floating-point payload.
func FloatLiteral(v float64) Literal { return Literal{kind: LiteralFloat, f: v} }

// IdentifierLiteral builds an identifier-name payload.
func IdentifierLiteral(v string) Literal { return Literal{kind: LiteralIdentifier, str: v} }

// Kind returns the payload tag.
func (l Literal) Kind() LiteralKind { return l.kind }

// Int returns the integer payload, if present.
func (l Literal) Int() (int64, bool) {
	return l.i, l.kind == LiteralInteger
}

// Float returns the floating-point payload, if present.
func (l Literal) Float() (float64, bool) {
	return l.f, l.kind == LiteralFloat
}

// Identifier returns the identifier payload, if present.
func (l Literal) Identifier() (string, bool) {
	return l.str, l.kind == LiteralIdentifier
}

// Str returns the string payload, if present.
func (l Literal) Str() (string, bool) {
	return l.str, l.kind == LiteralString
}

// Token is a single lexeme with its classification, raw source text, typed
// payload, and source location. Tokens are produced once by the scanner and
// never mutated.
type Token struct {
	Kind    TokenKind
	Lexeme  string
	Literal Literal
	Span    position.Span
}

// IsLiteralValue returns true if this token kind carries a typed payload.
func (tk TokenKind) IsLiteralValue() bool {
	switch tk {
	case TokenIdentifier, TokenInteger, TokenFloat, TokenString:
		return true
	default:
		return false
	}
}
