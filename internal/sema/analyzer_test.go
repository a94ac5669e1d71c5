package sema

import (
	"testing"

	"github.com/zast-lang/zast/internal/ast"
	"github.com/zast-lang/zast/internal/diagnostics"
	"github.com/zast-lang/zast/internal/lexer"
	"github.com/zast-lang/zast/internal/parser"
	"github.com/zast-lang/zast/internal/position"
	"github.com/zast-lang/zast/internal/types"
)

func parse(t *testing.T, input string) *ast.Program {
	t.Helper()

	toks, diags := lexer.New(input).Tokenize()
	if diags != nil {
		t.Fatalf("lexer diagnostics: %v", diags)
	}
	program, diags := parser.New(toks).ParseProgram()
	if diags != nil {
		t.Fatalf("parse diagnostics: %v", diags)
	}
	return program
}

func TestFunctionDeclared(t *testing.T) {
	program := parse(t, "fn main(a: i32, b: i32): void { }")

	a := New()
	if diags := a.Analyze(program); diags != nil {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	sym := a.Table().Resolve("main")
	if sym == nil {
		t.Fatal("main not declared in the outer scope")
	}
	if sym.Kind != SymbolFunction {
		t.Errorf("kind = %s, want function", sym.Kind)
	}

	want := types.Function{
		Params: []types.ValueType{
			types.Integer{Bits: 32},
			types.Integer{Bits: 32},
		},
		Return: types.Void{},
	}
	if !types.Equal(sym.Type, want) {
		t.Errorf("type = %s, want %s", sym.Type, want)
	}
}

func TestParametersScopedToFunction(t *testing.T) {
	program := parse(t, "fn main(a: i32, b: i32): void { }")

	a := New()
	if diags := a.Analyze(program); diags != nil {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	// The function's scope was exited after the walk, so its parameters
	// are no longer visible.
	if a.Table().Resolve("a") != nil {
		t.Error("parameter a leaked out of the function scope")
	}
	if a.Table().Depth() != 1 {
		t.Errorf("scope depth = %d, want 1", a.Table().Depth())
	}
}

func TestDuplicateParameter(t *testing.T) {
	program := parse(t, "fn f(a: i32, a: i32): void {}")

	diags := New().Analyze(program)
	if len(diags) != 1 {
		t.Fatalf("diagnostic count = %d, want 1: %v", len(diags), diags)
	}

	redecl, ok := diags[0].(*diagnostics.VariableRedeclaration)
	if !ok {
		t.Fatalf("diagnostic is %T", diags[0])
	}
	if redecl.Name != "a" {
		t.Errorf("name = %s, want a", redecl.Name)
	}
	// The cited original is the first parameter's span.
	if redecl.OriginalSpan != position.NewSpan(6, 6, 1, 1) {
		t.Errorf("original span = %+v", redecl.OriginalSpan)
	}
	if redecl.At != position.NewSpan(14, 14, 1, 1) {
		t.Errorf("span = %+v", redecl.At)
	}
}

func TestFunctionRedeclaration(t *testing.T) {
	program := parse(t, "fn f(): void { }\nfn f(): void { }")

	diags := New().Analyze(program)
	if len(diags) != 1 {
		t.Fatalf("diagnostic count = %d, want 1: %v", len(diags), diags)
	}

	redecl, ok := diags[0].(*diagnostics.FunctionRedeclaration)
	if !ok {
		t.Fatalf("diagnostic is %T", diags[0])
	}
	if redecl.OriginalSpan.LnStart != 1 || redecl.At.LnStart != 2 {
		t.Errorf("spans cite lines %d and %d", redecl.OriginalSpan.LnStart, redecl.At.LnStart)
	}
}

func TestVariableRedeclarationInBody(t *testing.T) {
	program := parse(t, `fn f(): void {
	let x: i32 = 1;
	let x: i32 = 2;
}`)

	diags := New().Analyze(program)
	if len(diags) != 1 {
		t.Fatalf("diagnostic count = %d, want 1: %v", len(diags), diags)
	}
	if _, ok := diags[0].(*diagnostics.VariableRedeclaration); !ok {
		t.Fatalf("diagnostic is %T", diags[0])
	}
}

func TestParameterCollidesWithBodyDeclaration(t *testing.T) {
	// Blocks share the function scope, so a body declaration of a
	// parameter's name is a redeclaration.
	program := parse(t, "fn f(x: i32): void { let x: i32 = 1; }")

	diags := New().Analyze(program)
	if len(diags) != 1 {
		t.Fatalf("diagnostic count = %d, want 1: %v", len(diags), diags)
	}

	redecl := diags[0].(*diagnostics.VariableRedeclaration)
	if redecl.Name != "x" {
		t.Errorf("name = %s", redecl.Name)
	}
}

func TestShadowingAcrossScopesAllowed(t *testing.T) {
	program := parse(t, "let x: i32 = 1;\nfn f(x: u8): void { }")

	diags := New().Analyze(program)
	if diags != nil {
		t.Fatalf("shadowing across scopes reported: %v", diags)
	}
}

func TestTopLevelVariableDeclared(t *testing.T) {
	program := parse(t, "let x: *u8 = 1;")

	a := New()
	if diags := a.Analyze(program); diags != nil {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	sym := a.Table().Resolve("x")
	if sym == nil {
		t.Fatal("x not declared")
	}
	if !sym.Mutable {
		t.Error("let binding should be mutable")
	}
	want := types.Pointer{Inner: types.Integer{Bits: 8, Unsigned: true}}
	if !types.Equal(sym.Type, want) {
		t.Errorf("type = %s, want %s", sym.Type, want)
	}
}

func TestMultipleIndependentErrors(t *testing.T) {
	program := parse(t, `fn f(a: i32, a: i32): void { }
fn g(b: u8, b: u8): void { }`)

	diags := New().Analyze(program)
	if len(diags) != 2 {
		t.Fatalf("diagnostic count = %d, want 2: %v", len(diags), diags)
	}
}

func TestDeclarePreservesFirstBinding(t *testing.T) {
	st := NewSymbolTable()

	first := &Symbol{Name: "x", Type: types.Integer{Bits: 32}, Span: position.NewSpan(1, 5, 1, 1)}
	second := &Symbol{Name: "x", Type: types.Bool{}, Span: position.NewSpan(1, 5, 2, 2)}

	if _, ok := st.Declare(first); !ok {
		t.Fatal("first declaration rejected")
	}
	existing, ok := st.Declare(second)
	if ok {
		t.Fatal("second declaration accepted")
	}
	if existing != first {
		t.Error("existing binding is not the first declaration")
	}
	if st.Resolve("x") != first {
		t.Error("lookup does not return the first declaration")
	}
}

func TestResolveSearchesInnermostFirst(t *testing.T) {
	st := NewSymbolTable()

	outer := &Symbol{Name: "x", Type: types.Integer{Bits: 32}}
	st.Declare(outer)

	st.EnterScope()
	inner := &Symbol{Name: "x", Type: types.Bool{}}
	st.Declare(inner)

	if st.Resolve("x") != inner {
		t.Error("inner binding should shadow the outer one")
	}

	st.ExitScope()
	if st.Resolve("x") != outer {
		t.Error("outer binding should be visible again after exit")
	}
	if st.Resolve("missing") != nil {
		t.Error("unbound name resolved")
	}
}
