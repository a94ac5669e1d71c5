package sema

import (
	"github.com/zast-lang/zast/internal/position"
	"github.com/zast-lang/zast/internal/types"
)

// SymbolKind distinguishes value bindings from function bindings.
type SymbolKind int

const (
	SymbolVariable SymbolKind = iota
	SymbolFunction
)

var symbolKindNames = map[SymbolKind]string{
	SymbolVariable: "variable",
	SymbolFunction: "function",
}

func (k SymbolKind) String() string { return symbolKindNames[k] }

// Symbol is one named binding. Span is the declaration site, cited when a
// later declaration collides with this one.
type Symbol struct {
	Name    string
	Kind    SymbolKind
	Type    types.ValueType
	Mutable bool
	Span    position.Span
}

// SymbolTable is a stack of lexical scopes. Declarations install bindings in
// the top scope only; lookups search from the innermost scope outward. The
// table starts with a single global scope that is never popped.
type SymbolTable struct {
	scopes []map[string]*Symbol
}

// NewSymbolTable creates a table holding only the global scope.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		scopes: []map[string]*Symbol{make(map[string]*Symbol)},
	}
}

// EnterScope pushes a fresh empty scope.
func (st *SymbolTable) EnterScope() {
	st.scopes = append(st.scopes, make(map[string]*Symbol))
}

// ExitScope pops the top scope, discarding every symbol declared in it.
// The global scope is never popped.
func (st *SymbolTable) ExitScope() {
	if len(st.scopes) > 1 {
		st.scopes = st.scopes[:len(st.scopes)-1]
	}
}

// Depth returns the number of live scopes, global scope included.
func (st *SymbolTable) Depth() int {
	return len(st.scopes)
}

// Declare installs sym in the top scope. When the name is already bound
// there, the existing binding wins: it is returned together with false and
// the new symbol is not installed. Outer-scope bindings of the same name
// never conflict; the new symbol shadows them.
func (st *SymbolTable) Declare(sym *Symbol) (*Symbol, bool) {
	top := st.scopes[len(st.scopes)-1]

	if existing, taken := top[sym.Name]; taken {
		return existing, false
	}

	top[sym.Name] = sym
	return sym, true
}

// Resolve searches the scopes from innermost to outermost and returns the
// first binding of name, or nil when the name is unbound everywhere.
func (st *SymbolTable) Resolve(name string) *Symbol {
	for i := len(st.scopes) - 1; i >= 0; i-- {
		if sym, ok := st.scopes[i][name]; ok {
			return sym
		}
	}
	return nil
}
