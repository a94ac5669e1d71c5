// Command zast-lsp runs the Zast language server over stdio.
package main

import (
	"flag"
	"log"

	"github.com/tliron/commonlog"

	"github.com/zast-lang/zast/internal/lsp"
)

const version = "0.1.0"

func main() {
	verbosity := flag.Int("verbosity", 1, "log verbosity")
	logFile := flag.String("log", "", "log file path (default stderr)")
	flag.Parse()

	// stdout carries the protocol, so logging must go elsewhere.
	var path *string
	if *logFile != "" {
		path = logFile
	}
	commonlog.Configure(*verbosity, path)

	if err := lsp.NewServer(version).Run(); err != nil {
		log.Fatalf("zast-lsp: %v", err)
	}
}
