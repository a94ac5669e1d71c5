// Package position provides source location tracking for the Zast front end.
// Spans are attached to every token, AST node, and diagnostic so that errors
// can cite the exact source range they refer to.
package position

import "fmt"

// Span identifies an inclusive range of source text. Lines and columns are
// 1-based; a single-character token on line 3, column 7 has
// LnStart = LnEnd = 3 and ColStart = ColEnd = 7.
type Span struct {
	ColStart int
	ColEnd   int
	LnStart  int
	LnEnd    int
}

// NewSpan constructs a span from explicit column and line bounds.
func NewSpan(colStart, colEnd, lnStart, lnEnd int) Span {
	return Span{
		ColStart: colStart,
		ColEnd:   colEnd,
		LnStart:  lnStart,
		LnEnd:    lnEnd,
	}
}

// IsValid returns true if the span has 1-based bounds and its start does not
// come after its end.
func (s Span) IsValid() bool {
	if s.LnStart < 1 || s.ColStart < 1 {
		return false
	}
	if s.LnStart > s.LnEnd {
		return false
	}
	if s.LnStart == s.LnEnd && s.ColStart > s.ColEnd {
		return false
	}
	return true
}

// Union returns the smallest span covering both s and other. A composite AST
// node's span is the union of its first and last child spans.
func (s Span) Union(other Span) Span {
	if !s.IsValid() {
		return other
	}
	if !other.IsValid() {
		return s
	}

	start := s
	if other.startsBefore(s) {
		start = other
	}

	end := s
	if other.endsAfter(s) {
		end = other
	}

	return Span{
		ColStart: start.ColStart,
		LnStart:  start.LnStart,
		ColEnd:   end.ColEnd,
		LnEnd:    end.LnEnd,
	}
}

func (s Span) startsBefore(other Span) bool {
	if s.LnStart != other.LnStart {
		return s.LnStart < other.LnStart
	}
	return s.ColStart < other.ColStart
}

func (s Span) endsAfter(other Span) bool {
	if s.LnEnd != other.LnEnd {
		return s.LnEnd > other.LnEnd
	}
	return s.ColEnd > other.ColEnd
}

// String renders the span as "col:ln", collapsing equal bounds, e.g. "5:1" or
// "5-9:1" or "5-2:1-3". Columns come first: diagnostics have always been
// reported in this order.
func (s Span) String() string {
	var col, ln string

	if s.ColStart == s.ColEnd {
		col = fmt.Sprintf("%d", s.ColStart)
	} else {
		col = fmt.Sprintf("%d-%d", s.ColStart, s.ColEnd)
	}

	if s.LnStart == s.LnEnd {
		ln = fmt.Sprintf("%d", s.LnStart)
	} else {
		ln = fmt.Sprintf("%d-%d", s.LnStart, s.LnEnd)
	}

	return col + ":" + ln
}
