package source

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Engine recognizes text in a raster image. The production implementation
// wraps Tesseract; tests substitute their own.
type Engine interface {
	Recognize(image []byte) (string, error)
	Close() error
}

// TesseractEngine is the Tesseract-backed OCR engine. Requires the
// tesseract binary and the configured language data to be installed on the
// host system.
type TesseractEngine struct {
	client *gosseract.Client
}

// NewTesseractEngine creates an OCR engine for the given language spec
// ("+"-separated, e.g. "eng+pol"). Close it when done to release Tesseract
// resources.
func NewTesseractEngine(languages string) (*TesseractEngine, error) {
	client := gosseract.NewClient()
	if languages != "" {
		if err := client.SetLanguage(strings.Split(languages, "+")...); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("set ocr languages %q: %w", languages, err)
		}
	}
	return &TesseractEngine{client: client}, nil
}

func (e *TesseractEngine) Recognize(image []byte) (string, error) {
	if err := e.client.SetImageFromBytes(image); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}
	text, err := e.client.Text()
	if err != nil {
		return "", fmt.Errorf("ocr: %w", err)
	}
	return strings.TrimSpace(text), nil
}

func (e *TesseractEngine) Close() error {
	if e.client != nil {
		return e.client.Close()
	}
	return nil
}
