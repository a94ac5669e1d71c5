// Package ast defines the Zast abstract syntax tree. Nodes are built strictly
// bottom-up by the parser, own their children exclusively, and are immutable
// once constructed. Every node carries the source span it covers; a composite
// node's span is the union of its first and last child spans.
package ast

import (
	"strconv"
	"strings"

	"github.com/zast-lang/zast/internal/lexer"
	"github.com/zast-lang/zast/internal/position"
)

// Node is implemented by every AST node.
type Node interface {
	// GetSpan returns the source range the node covers.
	GetSpan() position.Span

	// String renders the node as source-shaped text. Expressions are fully
	// parenthesized so operator grouping is visible in tests.
	String() string
}

// Expression is implemented by all expression nodes.
type Expression interface {
	Node
	expressionNode()
}

// Statement is implemented by all statement nodes.
type Statement interface {
	Node
	statementNode()
}

// Program is an ordered sequence of top-level statements.
type Program struct {
	Statements []Statement
}

func (p *Program) String() string {
	var sb strings.Builder
	for _, stmt := range p.Statements {
		sb.WriteString(stmt.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

// ====== Expressions ======

// IntegerLiteral is a 64-bit signed integer literal.
type IntegerLiteral struct {
	Span  position.Span
	Value int64
}

func (e *IntegerLiteral) expressionNode()        {}
func (e *IntegerLiteral) GetSpan() position.Span { return e.Span }
func (e *IntegerLiteral) String() string         { return strconv.FormatInt(e.Value, 10) }

// FloatLiteral is a 64-bit floating-point literal.
type FloatLiteral struct {
	Span  position.Span
	Value float64
}

func (e *FloatLiteral) expressionNode()        {}
func (e *FloatLiteral) GetSpan() position.Span { return e.Span }

func (e *FloatLiteral) String() string {
	s := strconv.FormatFloat(e.Value, 'g', -1, 64)
	// Keep a decimal point so the rendering scans back as a float literal.
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// Identifier is a reference to a named value.
type Identifier struct {
	Span position.Span
	Name string
}

func (e *Identifier) expressionNode()        {}
func (e *Identifier) GetSpan() position.Span { return e.Span }
func (e *Identifier) String() string         { return e.Name }

// AddressExpression is the unary address-of operator, e.g. `&x`.
type AddressExpression struct {
	Span    position.Span
	Operand Expression
}

func (e *AddressExpression) expressionNode()        {}
func (e *AddressExpression) GetSpan() position.Span { return e.Span }
func (e *AddressExpression) String() string         { return "&" + e.Operand.String() }

// DereferenceExpression is the unary dereference operator, e.g. `*p`.
type DereferenceExpression struct {
	Span    position.Span
	Operand Expression
}

func (e *DereferenceExpression) expressionNode()        {}
func (e *DereferenceExpression) GetSpan() position.Span { return e.Span }
func (e *DereferenceExpression) String() string         { return "*" + e.Operand.String() }

// BinaryExpression is an infix operator application. The operator is stored
// as the token kind that produced it.
type BinaryExpression struct {
	Span     position.Span
	Left     Expression
	Operator lexer.TokenKind
	Right    Expression
}

func (e *BinaryExpression) expressionNode()        {}
func (e *BinaryExpression) GetSpan() position.Span { return e.Span }

func (e *BinaryExpression) String() string {
	return "(" + e.Left.String() + " " + OperatorSymbol(e.Operator) + " " + e.Right.String() + ")"
}

// OperatorSymbol maps an operator token kind to its source symbol.
func OperatorSymbol(kind lexer.TokenKind) string {
	switch kind {
	case lexer.TokenPlus:
		return "+"
	case lexer.TokenMinus:
		return "-"
	case lexer.TokenMul:
		return "*"
	case lexer.TokenDiv:
		return "/"
	case lexer.TokenAmpersand:
		return "&"
	default:
		return kind.String()
	}
}

// ====== Statements ======

// ExpressionStatement wraps an expression used in statement position.
type ExpressionStatement struct {
	Span       position.Span
	Expression Expression
}

func (s *ExpressionStatement) statementNode()         {}
func (s *ExpressionStatement) GetSpan() position.Span { return s.Span }
func (s *ExpressionStatement) String() string         { return s.Expression.String() + ";" }

// VariableDeclaration declares a named, typed, initialized binding.
// Mutable is true iff the declaring keyword was `let`.
type VariableDeclaration struct {
	Span          position.Span
	Mutable       bool
	Name          string
	AnnotatedType AnnotatedType
	Value         Expression
}

func (s *VariableDeclaration) statementNode()         {}
func (s *VariableDeclaration) GetSpan() position.Span { return s.Span }

func (s *VariableDeclaration) String() string {
	keyword := "const"
	if s.Mutable {
		keyword = "let"
	}
	return keyword + " " + s.Name + ": " + s.AnnotatedType.String() + " = " + s.Value.String() + ";"
}

// FunctionParameter is a single `name: type` entry of a parameter list.
type FunctionParameter struct {
	Span          position.Span
	Name          string
	AnnotatedType AnnotatedType
}

func (p *FunctionParameter) String() string {
	return p.Name + ": " + p.AnnotatedType.String()
}

// FunctionDeclaration declares a named function. ReturnType is nil for
// functions declared `: void`. Body is always a BlockStatement.
type FunctionDeclaration struct {
	Span       position.Span
	Name       string
	Parameters []*FunctionParameter
	ReturnType AnnotatedType
	Body       *BlockStatement
}

func (s *FunctionDeclaration) statementNode()         {}
func (s *FunctionDeclaration) GetSpan() position.Span { return s.Span }

func (s *FunctionDeclaration) String() string {
	params := make([]string, len(s.Parameters))
	for i, p := range s.Parameters {
		params[i] = p.String()
	}

	ret := "void"
	if s.ReturnType != nil {
		ret = s.ReturnType.String()
	}

	return "fn " + s.Name + "(" + strings.Join(params, ", ") + "): " + ret + " " + s.Body.String()
}

// BlockStatement is a `{ ... }` sequence of statements. Its span covers from
// the opening to the closing brace inclusive.
type BlockStatement struct {
	Span       position.Span
	Statements []Statement
}

func (s *BlockStatement) statementNode()         {}
func (s *BlockStatement) GetSpan() position.Span { return s.Span }

func (s *BlockStatement) String() string {
	if len(s.Statements) == 0 {
		return "{ }"
	}

	var sb strings.Builder
	sb.WriteString("{ ")
	for _, stmt := range s.Statements {
		sb.WriteString(stmt.String())
		sb.WriteString(" ")
	}
	sb.WriteString("}")
	return sb.String()
}
