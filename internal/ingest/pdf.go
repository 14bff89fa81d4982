package ingest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

var errNoPDFText = errors.New("no extractable text found in pdf")

// pdfText concatenates the plain text of every readable page. Pages that fail
// to decode are skipped; scanned PDFs without a text layer yield errNoPDFText.
func pdfText(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	n := r.NumPage()
	pages := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil || strings.TrimSpace(text) == "" {
			continue
		}
		pages = append(pages, text)
	}
	if len(pages) == 0 {
		return "", errNoPDFText
	}
	return strings.Join(pages, "\n"), nil
}
