// Package render converts laid-out resume HTML into PDF bytes using a
// headless Chrome instance. Requires Chrome/Chromium to be installed on
// the system (or CHROME_PATH to point at one).
package render

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// DefaultTimeout bounds a single print job, including browser startup.
const DefaultTimeout = 60 * time.Second

// A4 paper size in inches (210mm x 297mm).
const (
	paperWidthIn  = 8.27
	paperHeightIn = 11.69
)

// Renderer prints HTML documents to PDF.
type Renderer struct {
	Timeout time.Duration
	Verbose bool
}

// NewRenderer returns a Renderer with the default timeout.
func NewRenderer() *Renderer {
	return &Renderer{Timeout: DefaultTimeout}
}

// HTMLToPDF renders the given HTML document and returns the PDF bytes.
// The document is written to a temp file and loaded via file:// so that
// relative print CSS behaves the same as in a regular page load.
func (r *Renderer) HTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	if r.Verbose {
		log.Printf("[RENDER] Printing document: %d bytes of HTML", len(html))
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if p := os.Getenv("CHROME_PATH"); p != "" {
		opts = append(opts, chromedp.ExecPath(p))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	tmpDir, err := os.MkdirTemp("", "cvarchitect-")
	if err != nil {
		return nil, &RenderError{Message: "creating temp directory", Cause: err}
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, &RenderError{Message: "writing temp document", Cause: err}
	}

	var pdfBuf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidthIn).
				WithPaperHeight(paperHeightIn).
				WithPreferCSSPageSize(true).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, &RenderError{Message: "browser print failed", Cause: err}
	}

	if r.Verbose {
		log.Printf("[RENDER] Produced PDF: %d bytes", len(pdfBuf))
	}
	return pdfBuf, nil
}
