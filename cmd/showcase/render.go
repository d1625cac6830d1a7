package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/showcase-card/internal/pipeline"
)

var (
	inputPath   string
	outJSONPath string
	outMDPath   string
)

func init() {
	rootCmd.Flags().StringVar(&inputPath, "input", "", "Path to the .showcase.json metadata file")
	rootCmd.Flags().StringVar(&outJSONPath, "out-json", "", "Path to write the sanitized JSON document")
	rootCmd.Flags().StringVar(&outMDPath, "out-md", "", "Path to write the Markdown project card")

	_ = rootCmd.MarkFlagRequired("input")
	_ = rootCmd.MarkFlagRequired("out-json")
	_ = rootCmd.MarkFlagRequired("out-md")

	rootCmd.RunE = renderShowcase
}

func renderShowcase(_ *cobra.Command, _ []string) error {
	return pipeline.Run(pipeline.Options{
		Input:   inputPath,
		OutJSON: outJSONPath,
		OutMD:   outMDPath,
	})
}
