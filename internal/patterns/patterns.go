// Package patterns loads and validates the keyword/regex rule set that
// drives entity extraction. The rule set is read once per process and is
// immutable afterwards, so extractors can share it without locking.
package patterns

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// ErrConfig marks a missing or structurally invalid rule configuration.
// It is fatal for the whole pipeline: no extraction runs without a valid set.
var ErrConfig = errors.New("invalid pattern configuration")

// EquipmentRule recognizes a piece of equipment either by model-code regex
// (strong signal, extracted match becomes the dimension) or by keyword
// (weak signal, the whole line becomes the dimension).
type EquipmentRule struct {
	Element    string
	Keywords   []string
	ModelRegex []*regexp.Regexp
}

// FittingRule recognizes a fitting by keyword and associates a size found
// in the neighbouring lines via its size regexes.
type FittingRule struct {
	Element   string
	Keywords  []string
	SizeRegex []*regexp.Regexp
}

// Ranges bounds accepted duct sizes, inclusive on both ends.
type Ranges struct {
	RoundMin int
	RoundMax int
	RectMin  int
	RectMax  int
}

// Set is the compiled, validated rule configuration. Read-only after Parse.
type Set struct {
	Equipment []EquipmentRule
	Fittings  []FittingRule
	Round     []*regexp.Regexp
	Rect      []*regexp.Regexp
	Ranges    Ranges
}

type fileEntry struct {
	Element    string   `yaml:"element"`
	Keywords   []string `yaml:"keywords"`
	ModelRegex []string `yaml:"model_regex"`
	SizeRegex  []string `yaml:"size_regex"`
}

type fileSet struct {
	Equipment []fileEntry `yaml:"equipment"`
	Fittings  []fileEntry `yaml:"fittings"`
	Sizes     struct {
		Round []string `yaml:"round"`
		Rect  []string `yaml:"rect"`
	} `yaml:"sizes"`
	Ranges struct {
		RoundMin *int `yaml:"round_min"`
		RoundMax *int `yaml:"round_max"`
		RectMin  *int `yaml:"rect_min"`
		RectMax  *int `yaml:"rect_max"`
	} `yaml:"ranges"`
}

var (
	loadOnce sync.Once
	loaded   *Set
	loadErr  error
)

// Load reads the rule set from path exactly once per process. Concurrent
// first callers are serialized; everyone gets the same canonical instance
// (or the same error).
func Load(path string) (*Set, error) {
	loadOnce.Do(func() {
		loaded, loadErr = ParseFile(path)
	})
	return loaded, loadErr
}

func ParseFile(path string) (*Set, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrConfig, path, err)
	}
	return Parse(raw)
}

func Parse(raw []byte) (*Set, error) {
	var file fileSet
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}

	set := &Set{}

	for i, entry := range file.Equipment {
		rule := EquipmentRule{Element: strings.TrimSpace(entry.Element)}
		if rule.Element == "" {
			return nil, fmt.Errorf("%w: equipment[%d]: element is required", ErrConfig, i)
		}
		if len(entry.Keywords) == 0 && len(entry.ModelRegex) == 0 {
			return nil, fmt.Errorf("%w: equipment[%d] %q: needs keywords or model_regex", ErrConfig, i, rule.Element)
		}
		rule.Keywords = lowerAll(entry.Keywords)
		regexes, err := compileAll(entry.ModelRegex)
		if err != nil {
			return nil, fmt.Errorf("%w: equipment[%d] %q: %v", ErrConfig, i, rule.Element, err)
		}
		rule.ModelRegex = regexes
		set.Equipment = append(set.Equipment, rule)
	}

	for i, entry := range file.Fittings {
		rule := FittingRule{Element: strings.TrimSpace(entry.Element)}
		if rule.Element == "" {
			return nil, fmt.Errorf("%w: fittings[%d]: element is required", ErrConfig, i)
		}
		if len(entry.Keywords) == 0 {
			return nil, fmt.Errorf("%w: fittings[%d] %q: needs keywords", ErrConfig, i, rule.Element)
		}
		rule.Keywords = lowerAll(entry.Keywords)
		regexes, err := compileAll(entry.SizeRegex)
		if err != nil {
			return nil, fmt.Errorf("%w: fittings[%d] %q: %v", ErrConfig, i, rule.Element, err)
		}
		rule.SizeRegex = regexes
		set.Fittings = append(set.Fittings, rule)
	}

	var err error
	if set.Round, err = compileAll(file.Sizes.Round); err != nil {
		return nil, fmt.Errorf("%w: sizes.round: %v", ErrConfig, err)
	}
	if set.Rect, err = compileAll(file.Sizes.Rect); err != nil {
		return nil, fmt.Errorf("%w: sizes.rect: %v", ErrConfig, err)
	}

	r := file.Ranges
	if r.RoundMin == nil || r.RoundMax == nil || r.RectMin == nil || r.RectMax == nil {
		return nil, fmt.Errorf("%w: ranges: round_min, round_max, rect_min and rect_max are all required", ErrConfig)
	}
	set.Ranges = Ranges{RoundMin: *r.RoundMin, RoundMax: *r.RoundMax, RectMin: *r.RectMin, RectMax: *r.RectMax}
	if set.Ranges.RoundMin > set.Ranges.RoundMax {
		return nil, fmt.Errorf("%w: ranges: round_min > round_max", ErrConfig)
	}
	if set.Ranges.RectMin > set.Ranges.RectMax {
		return nil, fmt.Errorf("%w: ranges: rect_min > rect_max", ErrConfig)
	}

	return set, nil
}

func lowerAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

func compileAll(exprs []string) ([]*regexp.Regexp, error) {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		if strings.TrimSpace(expr) == "" {
			continue
		}
		re, err := regexp.Compile("(?i)" + expr)
		if err != nil {
			return nil, fmt.Errorf("bad regex %q: %v", expr, err)
		}
		out = append(out, re)
	}
	return out, nil
}
