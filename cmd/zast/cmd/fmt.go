package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zast-lang/zast/internal/format"
	"github.com/zast-lang/zast/internal/lexer"
	"github.com/zast-lang/zast/internal/parser"
)

var fmtWrite bool

var fmtCmd = &cobra.Command{
	Use:   "fmt [file]",
	Short: "Reformat a source file to canonical style",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveInput(args)
		if err != nil {
			return err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		toks, diags := lexer.New(string(data)).Tokenize()
		if diags != nil {
			return diagnosticsError(cmd, diags)
		}
		program, diags := parser.New(toks).ParseProgram()
		if diags != nil {
			return diagnosticsError(cmd, diags)
		}

		out := format.Source(program)

		if fmtWrite {
			return os.WriteFile(path, []byte(out), 0o644)
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "write the result back to the file")
	rootCmd.AddCommand(fmtCmd)
}
