package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zast-lang/zast/internal/diagnostics"
	"github.com/zast-lang/zast/internal/project"
)

var rootCmd = &cobra.Command{
	Use:           "zast",
	Short:         "Zast compiler driver",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func Execute() error {
	return rootCmd.Execute()
}

// resolveInput turns the command's positional arguments into the source file
// to operate on. With no argument, the nearest zast.toml manifest names the
// entry file.
func resolveInput(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	manifest, path, err := project.Find(".")
	if err != nil {
		return "", err
	}
	return manifest.EntryPath(path), nil
}

// diagnosticsError converts a non-empty diagnostic set into the error the
// command returns after reporting every entry.
func diagnosticsError(cmd *cobra.Command, diags []diagnostics.Diagnostic) error {
	diagnostics.Report(cmd.ErrOrStderr(), diags)
	return fmt.Errorf("%d error(s)", len(diags))
}
