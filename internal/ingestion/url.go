package ingestion

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// minRenderedLength is the extracted-text size below which a page is assumed
// to be a JavaScript-rendered SPA worth re-fetching with a headless browser.
const minRenderedLength = 500

// FromURL fetches a public profile page and extracts its text. A plain HTTP
// fetch is tried first; when the result is too short the page is re-rendered
// in a headless browser (Chrome must be installed for that fallback).
func FromURL(ctx context.Context, rawURL string, useBrowser bool) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return "", &UnreadableError{Filename: rawURL, Message: "not a valid http(s) URL", Cause: err}
	}

	html, err := fetchHTML(ctx, rawURL)
	if err != nil {
		return "", err
	}

	text, err := ExtractHTMLText(html)
	if err != nil {
		return "", err
	}

	if useBrowser && len(strings.TrimSpace(text)) < minRenderedLength {
		log.Printf("[BROWSER] content too short (%d chars), rendering %s in headless browser", len(text), rawURL)
		rendered, browserErr := renderWithBrowser(ctx, rawURL, 30*time.Second)
		if browserErr != nil {
			log.Printf("[BROWSER] rendering failed: %v, keeping HTTP content", browserErr)
		} else if renderedText, extractErr := ExtractHTMLText(rendered); extractErr == nil {
			text = renderedText
		}
	}

	if len(text) < MinContentChars {
		return "", &UnreadableError{Filename: rawURL, Message: "page yielded no usable text"}
	}
	return text, nil
}

func fetchHTML(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; cvarchitect/1.0)")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", &UnreadableError{Filename: rawURL, Message: fmt.Sprintf("fetch returned status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	return string(body), nil
}

// renderWithBrowser loads the page in headless Chrome and returns the
// rendered HTML once the body is ready.
func renderWithBrowser(ctx context.Context, rawURL string, timeout time.Duration) (string, error) {
	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(rawURL),
		chromedp.WaitReady("body"),
		chromedp.Sleep(2*time.Second),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("browser rendering failed: %w", err)
	}
	return html, nil
}
