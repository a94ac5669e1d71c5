package main

import (
	"os"

	"github.com/zast-lang/zast/cmd/zast/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
