package types

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zast-lang/zast/internal/ast"
)

// Resolve maps a syntactic type annotation to its semantic value type.
// Pointer annotations resolve recursively; primitive names are classified by
// pattern: i<N> and u<N> with N >= 1 are integers, f16/f32/f64/f128 are
// floats, and bool is boolean.
//
// The parser only ever hands the resolver annotations in one of these forms;
// any other primitive name is a contract violation between parser and
// resolver, not a user error, and Resolve panics on it.
func Resolve(at ast.AnnotatedType) ValueType {
	switch t := at.(type) {
	case *ast.PointerType:
		return Pointer{Inner: Resolve(t.Inner)}
	case *ast.PrimitiveType:
		return resolvePrimitive(t.Name)
	default:
		panic(fmt.Sprintf("types: unknown annotated type %T", at))
	}
}

// ResolveReturn maps a function's return annotation to a value type. A nil
// annotation is the `void` return type.
func ResolveReturn(at ast.AnnotatedType) ValueType {
	if at == nil {
		return Void{}
	}
	return Resolve(at)
}

func resolvePrimitive(name string) ValueType {
	if name == "bool" {
		return Bool{}
	}

	if bits, ok := bitSuffix(name, "i"); ok {
		return Integer{Bits: bits}
	}
	if bits, ok := bitSuffix(name, "u"); ok {
		return Integer{Bits: bits, Unsigned: true}
	}

	if bits, ok := bitSuffix(name, "f"); ok {
		switch bits {
		case 16, 32, 64, 128:
			return Float{Width: bits}
		}
	}

	panic(fmt.Sprintf("types: primitive %q violates the parser/resolver contract", name))
}

// bitSuffix parses names of the form <prefix><N> where N is a positive
// decimal bit count.
func bitSuffix(name, prefix string) (uint16, bool) {
	if !strings.HasPrefix(name, prefix) || len(name) == len(prefix) {
		return 0, false
	}
	n, err := strconv.ParseUint(name[len(prefix):], 10, 16)
	if err != nil || n < 1 {
		return 0, false
	}
	return uint16(n), true
}
