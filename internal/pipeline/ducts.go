package pipeline

import (
	"strconv"
	"strings"

	"ventspec/internal"
	"ventspec/internal/patterns"
)

// ExtractDuctSizes tallies round (Ø<N>) and rectangular (<W>x<H>) duct size
// callouts over the full normalized text. Size callouts appear inline with
// other annotations and their counts do not depend on line locality, so the
// scan is deliberately text-wide rather than line by line.
//
// Values that fail to parse or fall outside the configured inclusive ranges
// are dropped silently; a bad token on a drawing is noise, not an error.
func ExtractDuctSizes(text string, set *patterns.Set) (round, rect internal.SizeTally) {
	round = internal.SizeTally{}
	for _, re := range set.Round {
		for _, match := range re.FindAllStringSubmatch(text, -1) {
			value := match[0]
			if len(match) > 1 {
				value = match[1]
			}
			d, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil {
				continue
			}
			if d < set.Ranges.RoundMin || d > set.Ranges.RoundMax {
				continue
			}
			round["Ø"+strconv.Itoa(d)]++
		}
	}

	rect = internal.SizeTally{}
	for _, re := range set.Rect {
		for _, match := range re.FindAllStringSubmatch(text, -1) {
			var widthToken, heightToken string
			if len(match) > 2 {
				widthToken, heightToken = match[1], match[2]
			} else {
				// Single-capture or capture-free patterns yield one token
				// that must split on "x" into exactly two parts.
				token := match[0]
				if len(match) == 2 {
					token = match[1]
				}
				parts := strings.Split(token, "x")
				if len(parts) != 2 {
					continue
				}
				widthToken, heightToken = parts[0], parts[1]
			}

			w, errW := strconv.Atoi(strings.TrimSpace(widthToken))
			h, errH := strconv.Atoi(strings.TrimSpace(heightToken))
			if errW != nil || errH != nil {
				continue
			}
			if w < set.Ranges.RectMin || w > set.Ranges.RectMax {
				continue
			}
			if h < set.Ranges.RectMin || h > set.Ranges.RectMax {
				continue
			}
			// Width and height keep the order found in the source text.
			rect[strconv.Itoa(w)+"x"+strconv.Itoa(h)]++
		}
	}

	return round, rect
}
