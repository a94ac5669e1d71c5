package ir

import (
	"strings"

	"github.com/zast-lang/zast/internal/ast"
	"github.com/zast-lang/zast/internal/types"
)

// Emitter lowers an analyzed program to instructions. Only top-level function
// declarations are recognized; each one yields a FunctionDecl carrying the
// resolved signature and an empty body.
type Emitter struct{}

// NewEmitter creates an emitter.
func NewEmitter() *Emitter {
	return &Emitter{}
}

// Emit lowers the program. The input must have passed semantic analysis;
// annotated types are resolved here under the same contract the analyzer
// relies on.
func (e *Emitter) Emit(program *ast.Program) []Instruction {
	instructions := make([]Instruction, 0, len(program.Statements))

	for _, stmt := range program.Statements {
		fn, ok := stmt.(*ast.FunctionDeclaration)
		if !ok {
			continue
		}

		params := make([]Param, len(fn.Parameters))
		for i, p := range fn.Parameters {
			params[i] = Param{Name: p.Name, Type: types.Resolve(p.AnnotatedType)}
		}

		instructions = append(instructions, &FunctionDecl{
			Name:   fn.Name,
			Params: params,
			Return: types.ResolveReturn(fn.ReturnType),
			Body:   []Instruction{},
		})
	}

	return instructions
}

// Render prints instructions one per line, the way `zast build --emit-ir`
// shows them.
func Render(instructions []Instruction) string {
	var sb strings.Builder
	for _, inst := range instructions {
		sb.WriteString(inst.String())
		sb.WriteString("\n")
	}
	return sb.String()
}
