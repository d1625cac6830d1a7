// Package main provides the entry point for the showcase card generator.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "showcase",
	Short:         "Render sanitized showcase artifacts from a project metadata file",
	Long:          "showcase reads a .showcase.json metadata file, validates and scrubs it, and writes an allowlisted JSON document plus a Markdown project card.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}
