// Command tlgen generates Kotlin domain models and TDLib adapters from a TL
// schema.
package main

import (
	"os"

	"tlgen/cmd/tlgen/cmd"
	"tlgen/internal/logger"
)

func main() {
	err := cmd.NewRootCmd().Execute()
	logger.Sync()

	if err != nil {
		cmd.PrintError(os.Stderr, err)
		os.Exit(cmd.ExitCode(err))
	}
}
