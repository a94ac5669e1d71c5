package cmd

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/zast-lang/zast/internal/diagnostics"
	"github.com/zast-lang/zast/internal/driver"
	"github.com/zast-lang/zast/internal/ir"
	"github.com/zast-lang/zast/internal/watch"
)

var (
	buildEmitIR bool
	buildWatch  bool
)

var buildCmd = &cobra.Command{
	Use:   "build [file]",
	Short: "Scan, parse, and analyze a source file",
	Long: `Runs the front-end pipeline over the given file, or over the project
manifest's entry file when no argument is given. All diagnostics are
reported together; any diagnostic fails the build.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveInput(args)
		if err != nil {
			return err
		}

		if buildWatch {
			return watchAndBuild(cmd, path)
		}
		return buildOnce(cmd, path)
	},
}

func init() {
	buildCmd.Flags().BoolVar(&buildEmitIR, "emit-ir", false, "print the lowered instructions")
	buildCmd.Flags().BoolVar(&buildWatch, "watch", false, "rebuild whenever the file changes")
	rootCmd.AddCommand(buildCmd)
}

func buildOnce(cmd *cobra.Command, path string) error {
	res, err := driver.CheckFile(path)
	if err != nil {
		return err
	}
	if !res.Ok() {
		return diagnosticsError(cmd, res.Diagnostics)
	}

	if buildEmitIR {
		fmt.Fprint(cmd.OutOrStdout(), ir.Render(ir.NewEmitter().Emit(res.Program)))
	}
	return nil
}

// watchAndBuild rebuilds on every relevant change to the file's directory.
// Build failures are reported but do not stop watching.
func watchAndBuild(cmd *cobra.Command, path string) error {
	w, err := watch.New()
	if err != nil {
		return err
	}
	defer w.Close()

	// Watch the directory: editors often replace files on save, which
	// drops a watch registered on the file itself.
	if err := w.Add(filepath.Dir(path)); err != nil {
		return err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	runBuild := func() {
		res, err := driver.CheckFile(path)
		switch {
		case err != nil:
			log.Printf("build failed: %v", err)
		case !res.Ok():
			diagnostics.Report(cmd.ErrOrStderr(), res.Diagnostics)
			log.Printf("build failed: %d error(s)", len(res.Diagnostics))
		default:
			log.Printf("build ok: %s", path)
			if buildEmitIR {
				fmt.Fprint(cmd.OutOrStdout(), ir.Render(ir.NewEmitter().Emit(res.Program)))
			}
		}
	}

	log.Printf("watching %s", path)
	runBuild()

	for {
		select {
		case ev := <-w.Events():
			evAbs, err := filepath.Abs(ev.Path)
			if err != nil || evAbs != abs || !ev.Relevant() {
				continue
			}
			runBuild()
		case err := <-w.Errors():
			return err
		case <-cmd.Context().Done():
			return nil
		}
	}
}
