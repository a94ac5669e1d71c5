package parser

import (
	"testing"

	"github.com/zast-lang/zast/internal/ast"
	"github.com/zast-lang/zast/internal/diagnostics"
	"github.com/zast-lang/zast/internal/lexer"
	"github.com/zast-lang/zast/internal/position"
)

func parseProgram(t *testing.T, input string) (*ast.Program, []diagnostics.Diagnostic) {
	t.Helper()

	toks, diags := lexer.New(input).Tokenize()
	if diags != nil {
		t.Fatalf("lexer diagnostics: %v", diags)
	}
	return New(toks).ParseProgram()
}

func mustParse(t *testing.T, input string) *ast.Program {
	t.Helper()

	program, diags := parseProgram(t, input)
	if diags != nil {
		t.Fatalf("unexpected parse diagnostics: %v", diags)
	}
	return program
}

func TestVariableDeclaration(t *testing.T) {
	program := mustParse(t, "let x: u8 = 5;")

	decl, ok := program.Statements[0].(*ast.VariableDeclaration)
	if !ok {
		t.Fatalf("expected VariableDeclaration, got %T", program.Statements[0])
	}

	if !decl.Mutable {
		t.Error("let binding should be mutable")
	}
	if decl.Name != "x" {
		t.Errorf("name = %s, want x", decl.Name)
	}

	prim, ok := decl.AnnotatedType.(*ast.PrimitiveType)
	if !ok || prim.Name != "u8" {
		t.Errorf("annotation = %v, want primitive u8", decl.AnnotatedType)
	}

	lit, ok := decl.Value.(*ast.IntegerLiteral)
	if !ok || lit.Value != 5 {
		t.Errorf("value = %v, want integer 5", decl.Value)
	}

	// The declaration span runs from the keyword through the initializer,
	// excluding the semicolon.
	if decl.Span != position.NewSpan(1, 13, 1, 1) {
		t.Errorf("span = %+v", decl.Span)
	}
}

func TestConstDeclaration(t *testing.T) {
	program := mustParse(t, "const limit: i32 = 2 + 3;")

	decl := program.Statements[0].(*ast.VariableDeclaration)
	if decl.Mutable {
		t.Error("const binding should not be mutable")
	}
	if got := decl.String(); got != "const limit: i32 = (2 + 3);" {
		t.Errorf("rendered as %s", got)
	}
}

func TestPointerAnnotations(t *testing.T) {
	program := mustParse(t, "let p: **i32 = x;")

	decl := program.Statements[0].(*ast.VariableDeclaration)

	outer, ok := decl.AnnotatedType.(*ast.PointerType)
	if !ok {
		t.Fatalf("expected PointerType, got %T", decl.AnnotatedType)
	}
	inner, ok := outer.Inner.(*ast.PointerType)
	if !ok {
		t.Fatalf("expected nested PointerType, got %T", outer.Inner)
	}
	prim, ok := inner.Inner.(*ast.PrimitiveType)
	if !ok || prim.Name != "i32" {
		t.Fatalf("innermost annotation = %v, want primitive i32", inner.Inner)
	}
}

func TestFunctionDeclaration(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		paramCount int
		voidReturn bool
		rendered   string
	}{
		{
			name:       "no parameters void return",
			input:      "fn main(): void { }",
			paramCount: 0,
			voidReturn: true,
			rendered:   "fn main(): void { }",
		},
		{
			name:       "two parameters value return",
			input:      "fn add(a: i32, b: i32): i32 { a + b; }",
			paramCount: 2,
			rendered:   "fn add(a: i32, b: i32): i32 { (a + b); }",
		},
		{
			name:       "trailing comma allowed",
			input:      "fn add(a: i32, b: i32,): i32 { }",
			paramCount: 2,
			rendered:   "fn add(a: i32, b: i32): i32 { }",
		},
		{
			name:       "pointer parameter and return",
			input:      "fn deref(p: **i32): *i32 { }",
			paramCount: 1,
			rendered:   "fn deref(p: **i32): *i32 { }",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program := mustParse(t, tt.input)

			fn, ok := program.Statements[0].(*ast.FunctionDeclaration)
			if !ok {
				t.Fatalf("expected FunctionDeclaration, got %T", program.Statements[0])
			}
			if len(fn.Parameters) != tt.paramCount {
				t.Errorf("parameter count = %d, want %d", len(fn.Parameters), tt.paramCount)
			}
			if tt.voidReturn && fn.ReturnType != nil {
				t.Errorf("void function carries return annotation %v", fn.ReturnType)
			}
			if got := fn.String(); got != tt.rendered {
				t.Errorf("rendered as %s, want %s", got, tt.rendered)
			}
		})
	}
}

func TestNestedBlocksAndDeclarations(t *testing.T) {
	input := `fn outer(n: i32): void {
	let doubled: i32 = n * 2;
	doubled + 1;
}`

	program := mustParse(t, input)

	fn := program.Statements[0].(*ast.FunctionDeclaration)
	if len(fn.Body.Statements) != 2 {
		t.Fatalf("body statement count = %d, want 2", len(fn.Body.Statements))
	}
	if _, ok := fn.Body.Statements[0].(*ast.VariableDeclaration); !ok {
		t.Errorf("first body statement is %T", fn.Body.Statements[0])
	}
	if _, ok := fn.Body.Statements[1].(*ast.ExpressionStatement); !ok {
		t.Errorf("second body statement is %T", fn.Body.Statements[1])
	}
}

func TestAnyDiagnosticFailsTheParse(t *testing.T) {
	program, diags := parseProgram(t, "let x: i32 = 5;\n1 +;")

	if program != nil {
		t.Error("program should be nil when diagnostics were recorded")
	}
	if len(diags) != 1 {
		t.Fatalf("diagnostic count = %d, want 1", len(diags))
	}
}

func TestMissingSemicolon(t *testing.T) {
	_, diags := parseProgram(t, "1 + 2")

	if len(diags) != 1 {
		t.Fatalf("diagnostic count = %d, want 1", len(diags))
	}
	want := "Expected 'Semicolon', got 'Eof' instead"
	if diags[0].Error() != want {
		t.Errorf("message = %q, want %q", diags[0].Error(), want)
	}
}

func TestUnexpectedTokenStartsExpression(t *testing.T) {
	_, diags := parseProgram(t, "let x: i32 = ;")

	if len(diags) != 1 {
		t.Fatalf("diagnostic count = %d, want 1", len(diags))
	}
	want := "Unexpected token found 'Semicolon'"
	if diags[0].Error() != want {
		t.Errorf("message = %q, want %q", diags[0].Error(), want)
	}
}

func TestTypeAnnotationConceptMessage(t *testing.T) {
	_, diags := parseProgram(t, "let x: 5 = 5;")

	if len(diags) != 1 {
		t.Fatalf("diagnostic count = %d, want 1", len(diags))
	}
	want := "Expected type annotation, got 'Integer' instead"
	if diags[0].Error() != want {
		t.Errorf("message = %q, want %q", diags[0].Error(), want)
	}
}

func TestRecoveryReportsEachBrokenStatement(t *testing.T) {
	// Two malformed statements, each one syntactically independent of the
	// other, must each surface their own diagnostic.
	input := "let x i32 = 5;\n1 + ;"

	program, diags := parseProgram(t, input)

	if program != nil {
		t.Error("program should be nil")
	}
	if len(diags) != 2 {
		t.Fatalf("diagnostic count = %d, want 2: %v", len(diags), diags)
	}

	first, ok := diags[0].(*diagnostics.ExpectedToken)
	if !ok {
		t.Fatalf("first diagnostic is %T", diags[0])
	}
	if first.FoundName != "Identifier" {
		t.Errorf("first found %s", first.FoundName)
	}

	second, ok := diags[1].(*diagnostics.UnexpectedToken)
	if !ok {
		t.Fatalf("second diagnostic is %T", diags[1])
	}
	if second.TokenName != "Semicolon" {
		t.Errorf("second found %s", second.TokenName)
	}
}

func TestRecoverySkipsBalancedDelimiters(t *testing.T) {
	// The parameter list is missing its `)`; recovery must balance the
	// nested brace pair before stopping at the closer, so the following
	// declaration contributes no spurious diagnostics.
	input := "fn broken(a: i32 { })\nlet y: u8 = 3;"

	_, diags := parseProgram(t, input)

	if len(diags) != 1 {
		t.Fatalf("diagnostic count = %d, want 1: %v", len(diags), diags)
	}
	expected, ok := diags[0].(*diagnostics.ExpectedToken)
	if !ok {
		t.Fatalf("diagnostic is %T", diags[0])
	}
	if expected.FoundName != "LeftBrace" {
		t.Errorf("found %s, want LeftBrace", expected.FoundName)
	}
}

func TestExpectedSetMessage(t *testing.T) {
	d := &diagnostics.ExpectedToken{
		At: position.NewSpan(1, 1, 1, 1),
		Expected: []diagnostics.Expectation{
			diagnostics.ExpectToken(lexer.TokenLet.String()),
			diagnostics.ExpectToken(lexer.TokenConst.String()),
		},
		FoundName: lexer.TokenFn.String(),
	}

	want := "Expected either one of ( 'Let', 'Const' ), got 'Fn' instead"
	if d.Error() != want {
		t.Errorf("message = %q, want %q", d.Error(), want)
	}
}

func TestReparseRenderedProgram(t *testing.T) {
	input := `let x: u8 = 5;
const k: *i32 = &x + 1;
fn mix(a: i32, b: *u8): void { a * 2 + 3; }
`

	first := mustParse(t, input)
	second := mustParse(t, first.String())

	if first.String() != second.String() {
		t.Errorf("rendering is not stable:\n%s\nvs\n%s", first.String(), second.String())
	}
}
