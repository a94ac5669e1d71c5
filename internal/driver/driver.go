// Package driver runs the front-end pipeline: scan, parse, analyze. Both the
// command-line tools and the language server go through it.
package driver

import (
	"fmt"
	"os"

	"github.com/zast-lang/zast/internal/ast"
	"github.com/zast-lang/zast/internal/diagnostics"
	"github.com/zast-lang/zast/internal/lexer"
	"github.com/zast-lang/zast/internal/parser"
	"github.com/zast-lang/zast/internal/sema"
)

// Result is the outcome of one pipeline run. Each phase is all-or-nothing:
// when Diagnostics is non-empty the later fields are nil.
type Result struct {
	Program     *ast.Program
	Table       *sema.SymbolTable
	Diagnostics []diagnostics.Diagnostic
}

// Ok reports whether the run produced no diagnostics.
func (r Result) Ok() bool {
	return len(r.Diagnostics) == 0
}

// Check runs the pipeline over source text.
func Check(source string) Result {
	tokens, diags := lexer.New(source).Tokenize()
	if diags != nil {
		return Result{Diagnostics: diags}
	}

	program, diags := parser.New(tokens).ParseProgram()
	if diags != nil {
		return Result{Diagnostics: diags}
	}

	analyzer := sema.New()
	if diags := analyzer.Analyze(program); diags != nil {
		return Result{Diagnostics: diags}
	}

	return Result{Program: program, Table: analyzer.Table()}
}

// CheckFile runs the pipeline over the contents of a file.
func CheckFile(path string) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("read %s: %w", path, err)
	}
	return Check(string(data)), nil
}
