// Package main provides the entry point for the CV Architect HTTP API server
// and CLI tools.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cvarchitect",
	Short: "CV Architect resume builder",
	Long:  "CV Architect turns a LinkedIn PDF export, a profile URL or pasted text into a structured, editable resume and renders it through a gallery of templates via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
