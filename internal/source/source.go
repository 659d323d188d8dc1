// Package source reads the two raw text sources of a drawing document:
// vector text extracted directly from the PDF, and OCR text recognized from
// embedded page images when the vector text is too sparse to be trusted.
package source

import (
	"log/slog"

	"ventspec/internal"
)

const (
	noteVectorText = "vector_text"
	noteOCRUsed    = "ocr_used"
)

// Reader produces the combined raw input for the extraction pipeline.
type Reader struct {
	charThreshold int
	engine        Engine
	log           *slog.Logger
}

// NewReader builds a Reader. engine may be nil, which disables OCR
// supplementation entirely.
func NewReader(charThreshold int, engine Engine, log *slog.Logger) *Reader {
	if log == nil {
		log = slog.Default()
	}
	return &Reader{charThreshold: charThreshold, engine: engine, log: log}
}

// Read extracts vector text from the document and, when the total vector
// character count stays below the configured threshold, supplements it with
// OCR over the document's embedded page images. A document that cannot be
// opened at all surfaces as ErrBadDocument.
func (r *Reader) Read(content []byte) (internal.Extraction, error) {
	vectorLines, stats, err := readVectorText(content)
	if err != nil {
		return internal.Extraction{}, err
	}

	ex := internal.Extraction{VectorLines: vectorLines, Stats: stats}
	if stats.VectorChars > 0 {
		ex.Notes = append(ex.Notes, noteVectorText)
	}

	if stats.VectorChars < r.charThreshold && r.engine != nil {
		ex.Notes = append(ex.Notes, noteOCRUsed)
		for _, image := range extractJPEGStreams(content) {
			text, err := r.engine.Recognize(image)
			if err != nil {
				r.log.Warn("ocr failed for embedded image", "error", err)
				continue
			}
			ex.OCRLines = append(ex.OCRLines, splitLines(text)...)
		}
		ex.Stats.OCRLines = len(ex.OCRLines)
	}

	r.log.Info("document read",
		"pages", ex.Stats.Pages,
		"vector_chars", ex.Stats.VectorChars,
		"ocr_lines", ex.Stats.OCRLines,
		"notes", ex.Notes,
	)
	return ex, nil
}
