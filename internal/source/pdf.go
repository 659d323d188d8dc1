package source

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	pdf "github.com/ledongthuc/pdf"

	"ventspec/internal"
)

// ErrBadDocument marks an unreadable or corrupt input document, as opposed
// to a configuration problem or an internal failure.
var ErrBadDocument = errors.New("invalid or corrupt document")

func readVectorText(content []byte) ([]string, internal.SourceStats, error) {
	stats := internal.SourceStats{}

	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, stats, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}

	stats.Pages = reader.NumPage()
	lines := make([]string, 0)
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		stats.VectorChars += len(text)
		lines = append(lines, splitLines(text)...)
	}

	return lines, stats, nil
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	parts := strings.Split(text, "\n")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
