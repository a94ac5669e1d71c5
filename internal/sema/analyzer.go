// Package sema implements the Zast semantic analyzer: a single tree walk
// that resolves declared types and installs bindings in a scoped symbol
// table, reporting redeclarations. Like the parser, the walk is best-effort:
// a failing statement never stops analysis of its siblings, and the phase as
// a whole fails iff at least one diagnostic was recorded.
package sema

import (
	"github.com/zast-lang/zast/internal/ast"
	"github.com/zast-lang/zast/internal/diagnostics"
	"github.com/zast-lang/zast/internal/types"
)

// Analyzer walks one program. It is single-use: create a fresh Analyzer per
// Analyze call.
type Analyzer struct {
	table  *SymbolTable
	errors *diagnostics.Collector
}

// New creates an analyzer with an empty global scope.
func New() *Analyzer {
	return &Analyzer{
		table:  NewSymbolTable(),
		errors: diagnostics.NewCollector(),
	}
}

// Table exposes the symbol table. After a successful Analyze it holds every
// global binding; callers such as editor tooling use it for lookups.
func (a *Analyzer) Table() *SymbolTable {
	return a.table
}

// Analyze walks every top-level statement of the program. It returns nil on
// success, or every diagnostic recorded during the walk. The contract is
// binary: a non-empty result means the phase failed as a whole.
func (a *Analyzer) Analyze(program *ast.Program) []diagnostics.Diagnostic {
	for _, stmt := range program.Statements {
		a.analyzeStatement(stmt)
	}

	if a.errors.HasErrors() {
		return a.errors.Drain()
	}
	return nil
}

func (a *Analyzer) analyzeStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.FunctionDeclaration:
		a.analyzeFunctionDeclaration(s)
	case *ast.VariableDeclaration:
		a.analyzeVariableDeclaration(s)
	case *ast.BlockStatement:
		// Blocks share the enclosing scope; they do not open one.
		for _, inner := range s.Statements {
			a.analyzeStatement(inner)
		}
	case *ast.ExpressionStatement:
		// Expressions declare nothing. Identifier uses are not resolved
		// against the table.
	}
}

// analyzeFunctionDeclaration declares the function in the current scope,
// then opens the function's own scope, declares each parameter in it, and
// walks the body there.
func (a *Analyzer) analyzeFunctionDeclaration(fn *ast.FunctionDeclaration) {
	paramTypes := make([]types.ValueType, len(fn.Parameters))
	for i, param := range fn.Parameters {
		paramTypes[i] = types.Resolve(param.AnnotatedType)
	}

	fnType := types.Function{
		Params: paramTypes,
		Return: types.ResolveReturn(fn.ReturnType),
	}

	existing, ok := a.table.Declare(&Symbol{
		Name: fn.Name,
		Kind: SymbolFunction,
		Type: fnType,
		Span: fn.Span,
	})
	if !ok {
		a.errors.Add(&diagnostics.FunctionRedeclaration{
			At:           fn.Span,
			Name:         fn.Name,
			OriginalSpan: existing.Span,
		})
	}

	a.table.EnterScope()
	defer a.table.ExitScope()

	for i, param := range fn.Parameters {
		existing, ok := a.table.Declare(&Symbol{
			Name:    param.Name,
			Kind:    SymbolVariable,
			Type:    paramTypes[i],
			Mutable: true,
			Span:    param.Span,
		})
		if !ok {
			a.errors.Add(&diagnostics.VariableRedeclaration{
				At:           param.Span,
				Name:         param.Name,
				OriginalSpan: existing.Span,
			})
		}
	}

	a.analyzeStatement(fn.Body)
}

func (a *Analyzer) analyzeVariableDeclaration(decl *ast.VariableDeclaration) {
	existing, ok := a.table.Declare(&Symbol{
		Name:    decl.Name,
		Kind:    SymbolVariable,
		Type:    types.Resolve(decl.AnnotatedType),
		Mutable: decl.Mutable,
		Span:    decl.Span,
	})
	if !ok {
		a.errors.Add(&diagnostics.VariableRedeclaration{
			At:           decl.Span,
			Name:         decl.Name,
			OriginalSpan: existing.Span,
		})
	}
}
