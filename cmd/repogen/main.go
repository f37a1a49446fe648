package main

import (
	"os"

	"github.com/simonhull/firebird-suite/repogen/internal/commands"
	"github.com/simonhull/firebird-suite/repogen/internal/output"
)

func main() {
	if err := commands.RootCmd().Execute(); err != nil {
		output.New(os.Stderr).Error(err.Error())
		os.Exit(1)
	}
}
