// Package format renders a parsed program back to canonical Zast source.
// The output parses back to a structurally identical tree, so formatting is
// idempotent: formatting already-formatted source is a no-op.
package format

import (
	"strings"

	"github.com/zast-lang/zast/internal/ast"
	"github.com/zast-lang/zast/internal/lexer"
)

// Source renders the whole program, one top-level statement per line, with
// function bodies indented by tabs.
func Source(program *ast.Program) string {
	var sb strings.Builder
	for _, stmt := range program.Statements {
		writeStatement(&sb, stmt, 0)
		sb.WriteString("\n")
	}
	return sb.String()
}

func writeIndent(sb *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		sb.WriteString("\t")
	}
}

func writeStatement(sb *strings.Builder, stmt ast.Statement, depth int) {
	writeIndent(sb, depth)

	switch s := stmt.(type) {
	case *ast.VariableDeclaration:
		if s.Mutable {
			sb.WriteString("let ")
		} else {
			sb.WriteString("const ")
		}
		sb.WriteString(s.Name)
		sb.WriteString(": ")
		sb.WriteString(s.AnnotatedType.String())
		sb.WriteString(" = ")
		writeExpression(sb, s.Value)
		sb.WriteString(";")

	case *ast.FunctionDeclaration:
		sb.WriteString("fn ")
		sb.WriteString(s.Name)
		sb.WriteString("(")
		for i, p := range s.Parameters {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(p.Name)
			sb.WriteString(": ")
			sb.WriteString(p.AnnotatedType.String())
		}
		sb.WriteString("): ")
		if s.ReturnType != nil {
			sb.WriteString(s.ReturnType.String())
		} else {
			sb.WriteString("void")
		}
		sb.WriteString(" ")
		writeBlock(sb, s.Body, depth)

	case *ast.BlockStatement:
		writeBlock(sb, s, depth)

	case *ast.ExpressionStatement:
		writeExpression(sb, s.Expression)
		sb.WriteString(";")
	}
}

func writeBlock(sb *strings.Builder, block *ast.BlockStatement, depth int) {
	if len(block.Statements) == 0 {
		sb.WriteString("{}")
		return
	}

	sb.WriteString("{\n")
	for _, stmt := range block.Statements {
		writeStatement(sb, stmt, depth+1)
		sb.WriteString("\n")
	}
	writeIndent(sb, depth)
	sb.WriteString("}")
}

// writeExpression renders an expression with parentheses only where operator
// grouping departs from what precedence alone would produce.
func writeExpression(sb *strings.Builder, expr ast.Expression) {
	switch e := expr.(type) {
	case *ast.BinaryExpression:
		writeOperand(sb, e.Left, e.Operator, false)
		sb.WriteString(" ")
		sb.WriteString(ast.OperatorSymbol(e.Operator))
		sb.WriteString(" ")
		writeOperand(sb, e.Right, e.Operator, true)

	case *ast.DereferenceExpression:
		sb.WriteString("*")
		writeUnaryOperand(sb, e.Operand)

	case *ast.AddressExpression:
		sb.WriteString("&")
		writeUnaryOperand(sb, e.Operand)

	default:
		sb.WriteString(expr.String())
	}
}

// writeOperand renders one side of a binary expression, parenthesizing child
// binary expressions that would otherwise regroup under the parent operator.
func writeOperand(sb *strings.Builder, operand ast.Expression, parent lexer.TokenKind, right bool) {
	child, ok := operand.(*ast.BinaryExpression)
	if !ok {
		writeExpression(sb, operand)
		return
	}

	parentPrec := operatorLevel(parent)
	childPrec := operatorLevel(child.Operator)

	// A right operand at the parent's own level needs parentheses because
	// the grammar is left-associative; a lower level always does.
	needsParens := childPrec < parentPrec || (right && childPrec == parentPrec)

	if needsParens {
		sb.WriteString("(")
	}
	writeExpression(sb, child)
	if needsParens {
		sb.WriteString(")")
	}
}

// writeUnaryOperand renders the operand of a unary operator. Binary operands
// are parenthesized since unary binds tighter.
func writeUnaryOperand(sb *strings.Builder, operand ast.Expression) {
	if _, ok := operand.(*ast.BinaryExpression); ok {
		sb.WriteString("(")
		writeExpression(sb, operand)
		sb.WriteString(")")
		return
	}
	writeExpression(sb, operand)
}

func operatorLevel(kind lexer.TokenKind) int {
	switch kind {
	case lexer.TokenPlus, lexer.TokenMinus:
		return 1
	case lexer.TokenMul, lexer.TokenDiv:
		return 2
	default:
		return 0
	}
}
