// Package main is the entry point for the counter CLI.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/runoshun/makkah-counter/internal/app"
	"github.com/runoshun/makkah-counter/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

// newContainer is a variable so tests can swap the config source.
var newContainer cli.ContainerFactory = app.New

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	rootCmd := cli.NewRootCommand(newContainer, version)
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd.Execute()
}
