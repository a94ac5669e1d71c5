// Package types defines the semantic value types of the Zast language and the
// resolver that maps syntactic type annotations onto them. All analysis after
// parsing operates on value types only.
package types

import (
	"fmt"
	"strings"
)

// ValueType is the resolved, semantic meaning of a type.
type ValueType interface {
	valueType()
	String() string
}

// Integer is a fixed-width integer type such as i32 or u8.
type Integer struct {
	Bits     uint16
	Unsigned bool
}

func (t Integer) valueType() {}

func (t Integer) String() string {
	if t.Unsigned {
		return fmt.Sprintf("u%d", t.Bits)
	}
	return fmt.Sprintf("i%d", t.Bits)
}

// Float is a floating-point type. Width is one of 16, 32, 64, or 128.
type Float struct {
	Width uint16
}

func (t Float) valueType()     {}
func (t Float) String() string { return fmt.Sprintf("f%d", t.Width) }

// Pointer is a pointer to another value type.
type Pointer struct {
	Inner ValueType
}

func (t Pointer) valueType()     {}
func (t Pointer) String() string { return "*" + t.Inner.String() }

// Bool is the boolean type.
type Bool struct{}

func (t Bool) valueType()     {}
func (t Bool) String() string { return "bool" }

// Void is the absence of a value, used only as a function return type.
type Void struct{}

func (t Void) valueType()     {}
func (t Void) String() string { return "void" }

// Function is the type of a declared function: an ordered parameter type list
// and a return type.
type Function struct {
	Params []ValueType
	Return ValueType
}

func (t Function) valueType() {}

func (t Function) String() string {
	params := make([]string, len(t.Params))
	for i, p := range t.Params {
		params[i] = p.String()
	}
	return "fn(" + strings.Join(params, ", ") + "): " + t.Return.String()
}

// Equal reports structural equality of two value types.
func Equal(a, b ValueType) bool {
	switch at := a.(type) {
	case Integer:
		bt, ok := b.(Integer)
		return ok && at == bt
	case Float:
		bt, ok := b.(Float)
		return ok && at == bt
	case Pointer:
		bt, ok := b.(Pointer)
		return ok && Equal(at.Inner, bt.Inner)
	case Bool:
		_, ok := b.(Bool)
		return ok
	case Void:
		_, ok := b.(Void)
		return ok
	case Function:
		bt, ok := b.(Function)
		if !ok || len(at.Params) != len(bt.Params) {
			return false
		}
		for i := range at.Params {
			if !Equal(at.Params[i], bt.Params[i]) {
				return false
			}
		}
		return Equal(at.Return, bt.Return)
	default:
		return false
	}
}
