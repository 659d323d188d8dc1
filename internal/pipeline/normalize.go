package pipeline

import (
	"regexp"
	"strings"
)

// symbolReplacer maps CAD and OCR symbol variants onto the canonical
// vocabulary the extractors match against: one diameter glyph, one hyphen,
// "x" for multiplication, "." for the middle dot.
var symbolReplacer = strings.NewReplacer(
	"%%c", "Ø",
	"%%C", "Ø",
	"ø", "Ø",
	"φ", "Ø",
	"Φ", "Ø",
	"⌀", "Ø",
	"–", "-",
	"—", "-",
	"‒", "-",
	"×", "x",
	"·", ".",
)

var (
	// The letter O (and a lone 0) directly before 2-4 digits is a common
	// OCR/CAD misreading of the diameter symbol.
	reDiameterLetter = regexp.MustCompile(`\b[Oo0][ \t]?(\d{2,4})`)

	reSpaces = regexp.MustCompile(`\s+`)
	reArrow  = regexp.MustCompile(` *→ *`)
	reComma  = regexp.MustCompile(` *, *`)
	reSlash  = regexp.MustCompile(` +/ *`)

	arrowReplacer = strings.NewReplacer("->", "→", "=>", "→")
)

// Normalize canonicalizes domain notation in extracted drawing text.
//
// The rules run in a fixed order: symbol substitutions, O/0-to-Ø rewriting,
// line-ending normalization, then per line: whitespace collapse and trim,
// arrow canonicalization and spacing, comma spacing, slash spacing. Lines
// that end up empty are dropped. The spacing rules never reach across a
// newline, so normalizing the whole text and normalizing line by line give
// the same result, and applying Normalize twice equals applying it once.
func Normalize(text string) string {
	text = symbolReplacer.Replace(text)
	text = reDiameterLetter.ReplaceAllString(text, "Ø$1")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, raw := range lines {
		line := strings.TrimSpace(reSpaces.ReplaceAllString(raw, " "))
		if line == "" {
			continue
		}
		line = arrowReplacer.Replace(line)
		line = reArrow.ReplaceAllString(line, " → ")
		line = reComma.ReplaceAllString(line, ", ")
		line = reSlash.ReplaceAllString(line, " / ")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
