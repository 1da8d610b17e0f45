package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dscirocco/cvarchitect/internal/export"
	"github.com/dscirocco/cvarchitect/internal/normalize"
)

var (
	exportIn     string
	exportOut    string
	exportFormat string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a resume JSON file to document formats",
	Long:  `Read a normalized resume JSON file and write it out as json, txt, docx or all three at once.`,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportIn, "in", "resume.json", "Path to resume JSON file")
	exportCmd.Flags().StringVar(&exportOut, "out", ".", "Output directory")
	exportCmd.Flags().StringVar(&exportFormat, "format", "all", "json, txt, docx or all")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	data, err := os.ReadFile(exportIn)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", exportIn, err)
	}

	record, err := normalize.FromJSON(data, normalize.DefaultCutoffs())
	if err != nil {
		return fmt.Errorf("failed to parse resume: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(exportIn), filepath.Ext(exportIn))

	if exportFormat == "all" {
		files, err := export.ExportAll(context.Background(), record)
		if err != nil {
			return err
		}
		for format, content := range files {
			if err := writeExport(cmd, base, format, content); err != nil {
				return err
			}
		}
		return nil
	}

	content, err := export.Bytes(record, exportFormat)
	if err != nil {
		return err
	}
	return writeExport(cmd, base, exportFormat, content)
}

func writeExport(cmd *cobra.Command, base, format string, content []byte) error {
	path := filepath.Join(exportOut, fmt.Sprintf("%s.%s", base, format))
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	cmd.Printf("Wrote %s (%d bytes)\n", path, len(content))
	return nil
}
