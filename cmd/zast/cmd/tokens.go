package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zast-lang/zast/internal/lexer"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Dump the token stream of a source file",
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
		for _, tok := range toks {
			fmt.Fprintf(cmd.OutOrStdout(), "%-18s %-16q %s\n", tok.Kind, tok.Lexeme, tok.Span)
		}

		if diags != nil {
			return diagnosticsError(cmd, diags)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}
