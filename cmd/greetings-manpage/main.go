package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/greetings/cmd/greetings"
	"github.com/arthur-debert/greetings/internal/version"
)

func main() {
	rootCmd := greetings.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "GREETINGS",
		Section: "1",
		Source:  "greetings " + version.Version,
		Manual:  "greetings manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
