package export

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/dscirocco/cvarchitect/internal/types"
)

// Format names accepted by Bytes and ExportAll.
const (
	FormatJSON = "json"
	FormatTXT  = "txt"
	FormatDOCX = "docx"
)

// Formats lists the formats ExportAll produces, in serving order.
var Formats = []string{FormatJSON, FormatTXT, FormatDOCX}

// ContentType returns the MIME type for a format, or empty if unknown.
func ContentType(format string) string {
	switch format {
	case FormatJSON:
		return "application/json"
	case FormatTXT:
		return "text/plain; charset=utf-8"
	case FormatDOCX:
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	}
	return ""
}

// Bytes exports the record in a single format.
func Bytes(record *types.ResumeRecord, format string) ([]byte, error) {
	switch format {
	case FormatJSON:
		return ToJSON(record)
	case FormatTXT:
		return ToText(record), nil
	case FormatDOCX:
		return ToDocx(record)
	}
	return nil, fmt.Errorf("unsupported export format: %q", format)
}

// ExportAll produces every document format concurrently and returns
// them keyed by format name. If any exporter fails the whole call
// fails; the record is never mutated.
func ExportAll(ctx context.Context, record *types.ResumeRecord) (map[string][]byte, error) {
	var (
		mu  sync.Mutex
		out = make(map[string][]byte, len(Formats))
	)

	g, _ := errgroup.WithContext(ctx)
	for _, format := range Formats {
		g.Go(func() error {
			data, err := Bytes(record, format)
			if err != nil {
				return fmt.Errorf("exporting %s: %w", format, err)
			}
			mu.Lock()
			out[format] = data
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
