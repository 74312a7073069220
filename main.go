package main

import (
	"os"

	"github.com/hpkotak/blastrel/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
