package lsp

import (
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/zast-lang/zast/internal/position"
)

func TestSpanToRange(t *testing.T) {
	got := spanToRange(position.NewSpan(5, 8, 2, 2))

	want := protocol.Range{
		Start: protocol.Position{Line: 1, Character: 4},
		End:   protocol.Position{Line: 1, Character: 8},
	}
	if got != want {
		t.Errorf("range = %+v, want %+v", got, want)
	}

	if zero := spanToRange(position.Span{}); zero != (protocol.Range{}) {
		t.Errorf("invalid span mapped to %+v", zero)
	}
}

func TestExtractWord(t *testing.T) {
	text := "let count: i32 = 1;\nfn main(): void { }"

	tests := []struct {
		name string
		pos  protocol.Position
		want string
	}{
		{"middle of identifier", protocol.Position{Line: 0, Character: 6}, "count"},
		{"start of identifier", protocol.Position{Line: 0, Character: 4}, "count"},
		{"second line", protocol.Position{Line: 1, Character: 4}, "main"},
		{"on punctuation", protocol.Position{Line: 0, Character: 15}, ""},
		{"past last line", protocol.Position{Line: 9, Character: 0}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractWord(text, tt.pos); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCheckSurvivesUnknownTypeNames(t *testing.T) {
	// A buffer mid-edit can annotate with a name the resolver rejects as a
	// contract violation; the server must swallow the panic.
	res := check("fn f(a: banana): void { }")

	if res.Table != nil || res.Program != nil {
		t.Error("panicking run should produce an empty result")
	}
}

func TestCheckProducesHoverableTable(t *testing.T) {
	res := check("let total: *u8 = 1;")

	if res.Table == nil {
		t.Fatalf("diagnostics: %v", res.Diagnostics)
	}
	sym := res.Table.Resolve("total")
	if sym == nil {
		t.Fatal("total not resolvable")
	}
	if sym.Type.String() != "*u8" {
		t.Errorf("type = %s", sym.Type)
	}
}
