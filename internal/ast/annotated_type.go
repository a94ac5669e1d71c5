package ast

// AnnotatedType is a type annotation exactly as the programmer wrote it:
// either a primitive name or a pointer to another annotated type. Annotated
// types are purely syntactic; the semantic analyzer maps them to value types
// and never operates on them directly.
type AnnotatedType interface {
	annotatedTypeNode()
	String() string
}

// PrimitiveType is a bare type name such as `i32`, `u8`, `f64`, or `bool`.
type PrimitiveType struct {
	Name string
}

func (t *PrimitiveType) annotatedTypeNode() {}
func (t *PrimitiveType) String() string     { return t.Name }

// PointerType is a `*`-prefixed annotation, e.g. `*i32` or `**u8`.
type PointerType struct {
	Inner AnnotatedType
}

func (t *PointerType) annotatedTypeNode() {}
func (t *PointerType) String() string     { return "*" + t.Inner.String() }
