// Package ir defines a minimal instruction form for lowered Zast programs
// and an emitter that produces it from an analyzed tree. The lowering is a
// placeholder: function declarations carry their resolved signature but an
// empty body, and no other construct is lowered yet.
package ir

import (
	"fmt"
	"strings"

	"github.com/zast-lang/zast/internal/types"
)

// Value is an operand of an instruction.
type Value interface {
	valueNode()
	String() string
}

// IntValue is a constant integer operand.
type IntValue struct {
	Value int64
}

func (v IntValue) valueNode()     {}
func (v IntValue) String() string { return fmt.Sprintf("%d", v.Value) }

// FloatValue is a constant floating-point operand.
type FloatValue struct {
	Value float64
}

func (v FloatValue) valueNode()     {}
func (v FloatValue) String() string { return fmt.Sprintf("%g", v.Value) }

// NameValue references a named binding.
type NameValue struct {
	Name string
}

func (v NameValue) valueNode()     {}
func (v NameValue) String() string { return "%" + v.Name }

// Instruction is one step of the lowered form.
type Instruction interface {
	instructionNode()
	String() string
}

// Declare introduces a named slot of a resolved type.
type Declare struct {
	Name string
	Type types.ValueType
}

func (i *Declare) instructionNode() {}

func (i *Declare) String() string {
	return fmt.Sprintf("declare %%%s: %s", i.Name, i.Type)
}

// Assign stores a value into a named slot.
type Assign struct {
	Name  string
	Value Value
}

func (i *Assign) instructionNode() {}

func (i *Assign) String() string {
	return fmt.Sprintf("assign %%%s = %s", i.Name, i.Value)
}

// BinaryOp applies an infix operator to two operands, producing Dest.
type BinaryOp struct {
	Dest     string
	Operator string
	Left     Value
	Right    Value
}

func (i *BinaryOp) instructionNode() {}

func (i *BinaryOp) String() string {
	return fmt.Sprintf("%%%s = %s %s, %s", i.Dest, i.Operator, i.Left, i.Right)
}

// UnaryOp applies a prefix operator to one operand, producing Dest.
type UnaryOp struct {
	Dest     string
	Operator string
	Operand  Value
}

func (i *UnaryOp) instructionNode() {}

func (i *UnaryOp) String() string {
	return fmt.Sprintf("%%%s = %s %s", i.Dest, i.Operator, i.Operand)
}

// FunctionDecl declares a function with its resolved signature. Body is the
// lowered body; the current emitter always leaves it empty.
type FunctionDecl struct {
	Name   string
	Params []Param
	Return types.ValueType
	Body   []Instruction
}

// Param is one named, typed parameter of a FunctionDecl.
type Param struct {
	Name string
	Type types.ValueType
}

func (i *FunctionDecl) instructionNode() {}

func (i *FunctionDecl) String() string {
	params := make([]string, len(i.Params))
	for idx, p := range i.Params {
		params[idx] = fmt.Sprintf("%%%s: %s", p.Name, p.Type)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "func @%s(%s): %s {", i.Name, strings.Join(params, ", "), i.Return)
	for _, inst := range i.Body {
		sb.WriteString("\n  ")
		sb.WriteString(inst.String())
	}
	sb.WriteString("\n}")
	return sb.String()
}

// Call invokes a named function with argument operands.
type Call struct {
	Dest string
	Name string
	Args []Value
}

func (i *Call) instructionNode() {}

func (i *Call) String() string {
	args := make([]string, len(i.Args))
	for idx, a := range i.Args {
		args[idx] = a.String()
	}
	return fmt.Sprintf("%%%s = call @%s(%s)", i.Dest, i.Name, strings.Join(args, ", "))
}

// Return leaves the current function, optionally carrying a value.
type Return struct {
	Value Value
}

func (i *Return) instructionNode() {}

func (i *Return) String() string {
	if i.Value == nil {
		return "ret"
	}
	return "ret " + i.Value.String()
}
