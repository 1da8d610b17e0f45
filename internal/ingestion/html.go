package ingestion

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractHTMLText strips markup, navigation chrome and scripts out of an
// HTML document and returns the visible text of its main content.
func ExtractHTMLText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", &UnreadableError{Message: "not parseable HTML", Cause: err}
	}

	doc.Find("nav, footer, script, style, noscript, .ad, .advertisement, .cookie-banner, .popup").Remove()

	main := doc.Find("main, article, [role=main]")
	if main.Length() == 0 {
		main = doc.Find("body")
	}

	return CleanText(main.First().Text()), nil
}
