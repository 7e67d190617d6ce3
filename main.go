package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/projscan/projscan/cmd"
	"github.com/projscan/projscan/pkg/output"
)

func main() {
	os.Exit(run())
}

func run() int {
	restoreColorMode := colorable.EnableColorsStdout(nil)
	defer restoreColorMode()

	if err := cmd.Execute(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, output.WithErrorFormat("Error: %v", err))
		return 1
	}

	return 0
}
