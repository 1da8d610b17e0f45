package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dscirocco/cvarchitect/internal/export"
	"github.com/dscirocco/cvarchitect/internal/extraction"
	"github.com/dscirocco/cvarchitect/internal/i18n"
	"github.com/dscirocco/cvarchitect/internal/ingestion"
	"github.com/dscirocco/cvarchitect/internal/llm"
	"github.com/dscirocco/cvarchitect/internal/normalize"
	"github.com/dscirocco/cvarchitect/internal/observability"
)

var (
	parseFile     string
	parseURL      string
	parseLanguage string
	parseOut      string
	parseBrowser  bool
	parseVerbose  bool
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a resume source into structured JSON",
	Long:  `Extract structured resume data from a PDF, text file, HTML file or public profile URL and write the normalized JSON document.`,
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().StringVar(&parseFile, "file", "", "Path to PDF, text or HTML file")
	parseCmd.Flags().StringVar(&parseURL, "url", "", "Public profile URL to fetch")
	parseCmd.Flags().StringVar(&parseLanguage, "language", "", "Output language (default Italiano)")
	parseCmd.Flags().StringVar(&parseOut, "out", "resume.json", "Output JSON path")
	parseCmd.Flags().BoolVar(&parseBrowser, "browser", false, "Use headless browser for JavaScript-rendered pages")
	parseCmd.Flags().BoolVar(&parseVerbose, "verbose", false, "Print extracted sections")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, _ []string) error {
	if (parseFile == "") == (parseURL == "") {
		return fmt.Errorf("exactly one of --file or --url is required")
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	ctx := context.Background()

	var rawText string
	var err error
	if parseFile != "" {
		data, readErr := os.ReadFile(parseFile)
		if readErr != nil {
			return fmt.Errorf("failed to read %s: %w", parseFile, readErr)
		}
		rawText, err = ingestion.FromUpload(filepath.Base(parseFile), data)
	} else {
		rawText, err = ingestion.FromURL(ctx, parseURL, parseBrowser)
	}
	if err != nil {
		return err
	}

	client, err := llm.NewClient(ctx, llm.DefaultGeminiConfig(), apiKey)
	if err != nil {
		return err
	}
	defer client.Close()

	language := i18n.Parse(parseLanguage)
	raw, err := extraction.Extract(ctx, client, rawText, string(language))
	if err != nil {
		return err
	}

	record, err := normalize.Record(raw, normalize.DefaultCutoffs())
	if err != nil {
		return err
	}

	if parseVerbose {
		printer := observability.NewPrinter(cmd.OutOrStdout())
		printer.PrintPersonalInfo(record)
		printer.PrintExperience(record)
		printer.PrintToggleLists(record)
		printer.PrintSummary(record)
	}

	out, err := export.ToJSON(record)
	if err != nil {
		return err
	}
	if err := os.WriteFile(parseOut, out, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", parseOut, err)
	}

	cmd.Printf("Wrote %s (%d bytes)\n", parseOut, len(out))
	return nil
}
