package main

import (
	"os"

	"github.com/pavanmanishd/bumparena/cmd/bumparena/cmd"
)

func main() {
	if err := cmd.NewRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
