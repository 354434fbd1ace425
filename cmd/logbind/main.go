package main

import (
	"os"

	"git.famapp.in/fampay-inc/logbind/cmd/logbind/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
