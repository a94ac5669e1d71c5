package diagnostics

import (
	"strings"
	"testing"

	"github.com/zast-lang/zast/internal/position"
)

func TestExpectedTokenMessages(t *testing.T) {
	tests := []struct {
		name     string
		diag     Diagnostic
		expected string
	}{
		{
			name: "single expected token",
			diag: &ExpectedToken{
				Expected:  []Expectation{ExpectToken("Semicolon")},
				FoundName: "Identifier",
			},
			expected: "Expected 'Semicolon', got 'Identifier' instead",
		},
		{
			name: "expected set with concept",
			diag: &ExpectedToken{
				Expected:  []Expectation{ExpectToken("Identifier"), ExpectConcept("type annotation")},
				FoundName: "Comma",
			},
			expected: "Expected either one of ( 'Identifier', type annotation ), got 'Comma' instead",
		},
		{
			name:     "unexpected token",
			diag:     &UnexpectedToken{TokenName: "RightBrace"},
			expected: "Unexpected token found 'RightBrace'",
		},
		{
			name:     "illegal token",
			diag:     &IllegalToken{Lexeme: "#"},
			expected: "Illegal token found '#'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.diag.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestCollectorDrain(t *testing.T) {
	c := NewCollector()
	if c.HasErrors() {
		t.Fatal("new collector should be empty")
	}

	first := &UnexpectedToken{At: position.NewSpan(1, 1, 1, 1), TokenName: "Plus"}
	second := &IllegalToken{At: position.NewSpan(3, 3, 1, 1), Lexeme: "#"}
	c.Add(first)
	c.Add(second)

	if !c.HasErrors() || c.Len() != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", c.Len())
	}

	drained := c.Drain()
	if len(drained) != 2 {
		t.Fatalf("Drain() returned %d diagnostics, want 2", len(drained))
	}
	if drained[0] != first || drained[1] != second {
		t.Error("Drain() did not preserve insertion order")
	}
	if c.HasErrors() {
		t.Error("collector should be empty after Drain()")
	}
}

func TestReportFormat(t *testing.T) {
	var sb strings.Builder
	Report(&sb, []Diagnostic{
		&IllegalToken{At: position.NewSpan(5, 5, 2, 2), Lexeme: "#"},
	})

	expected := "Error at: 5:2 | Illegal token found '#'\n"
	if sb.String() != expected {
		t.Errorf("Report() = %q, want %q", sb.String(), expected)
	}
}
