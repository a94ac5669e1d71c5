// Package diagnostics defines the error taxonomy shared by the Zast scanner,
// parser, and semantic analyzer, together with the ordered collector that
// accumulates them during a phase.
package diagnostics

import (
	"fmt"
	"strings"

	"github.com/zast-lang/zast/internal/position"
)

// Diagnostic is a single reported problem, tagged with the source span it
// refers to. Concrete kinds carry their own payloads; all of them satisfy the
// error interface so they compose with ordinary Go error handling.
type Diagnostic interface {
	error

	// Span returns the source range the diagnostic refers to.
	Span() position.Span
}

// Expectation is one entry of an expected-token set: either a concrete token
// kind (by its display name) or a named concept such as "type annotation".
// Concepts never match a real token; they exist purely to produce a clearer
// message.
type Expectation struct {
	TokenName string
	Concept   string
}

// ExpectToken builds an expectation for a concrete token kind name.
func ExpectToken(name string) Expectation {
	return Expectation{TokenName: name}
}

// ExpectConcept builds an expectation for a named concept.
func ExpectConcept(concept string) Expectation {
	return Expectation{Concept: concept}
}

// String renders the expectation the way it appears in messages: token kinds
// quoted, concepts bare.
func (e Expectation) String() string {
	if e.Concept != "" {
		return e.Concept
	}
	return "'" + e.TokenName + "'"
}

// UnexpectedToken reports a token that cannot begin an expression.
type UnexpectedToken struct {
	At        position.Span
	TokenName string
}

func (d *UnexpectedToken) Span() position.Span { return d.At }

func (d *UnexpectedToken) Error() string {
	return fmt.Sprintf("Unexpected token found '%s'", d.TokenName)
}

// ExpectedToken reports a mismatch between the token found and the set of
// acceptable tokens or concepts at that point.
type ExpectedToken struct {
	At        position.Span
	Expected  []Expectation
	FoundName string
}

func (d *ExpectedToken) Span() position.Span { return d.At }

func (d *ExpectedToken) Error() string {
	if len(d.Expected) == 1 {
		return fmt.Sprintf("Expected %s, got '%s' instead", d.Expected[0], d.FoundName)
	}

	parts := make([]string, len(d.Expected))
	for i, e := range d.Expected {
		parts[i] = e.String()
	}

	return fmt.Sprintf("Expected either one of ( %s ), got '%s' instead",
		strings.Join(parts, ", "), d.FoundName)
}

// IllegalToken reports a lexeme the scanner could not classify.
type IllegalToken struct {
	At     position.Span
	Lexeme string
}

func (d *IllegalToken) Span() position.Span { return d.At }

func (d *IllegalToken) Error() string {
	return fmt.Sprintf("Illegal token found '%s'", d.Lexeme)
}

// VariableRedeclaration reports a second declaration of a name within one
// scope. OriginalSpan cites the declaration that already holds the name.
type VariableRedeclaration struct {
	At           position.Span
	Name         string
	OriginalSpan position.Span
}

func (d *VariableRedeclaration) Span() position.Span { return d.At }

func (d *VariableRedeclaration) Error() string {
	return fmt.Sprintf("Variable '%s' redeclared, original declaration at %s",
		d.Name, d.OriginalSpan)
}

// FunctionRedeclaration reports a second function declaration of a name
// within one scope, citing the original declaration site.
type FunctionRedeclaration struct {
	At           position.Span
	Name         string
	OriginalSpan position.Span
}

func (d *FunctionRedeclaration) Span() position.Span { return d.At }

func (d *FunctionRedeclaration) Error() string {
	return fmt.Sprintf("Function '%s' redeclared, original declaration at %s",
		d.Name, d.OriginalSpan)
}
