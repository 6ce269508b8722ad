package ocr

import (
	"context"
	"fmt"
	"os"

	"github.com/otiai10/gosseract/v2"

	"github.com/ppiankov/labelcheck/internal/model"
)

// TesseractEngine recognizes label text with an in-process Tesseract client.
// A fresh client per call keeps the engine stateless from the caller's point
// of view; the shared trained data is the only process-wide resource.
type TesseractEngine struct {
	clientFactory func() *gosseract.Client
	languages     []string
	preprocess    bool
	minWidth      int
}

// NewTesseractEngine constructs a Tesseract-backed OCR engine
func NewTesseractEngine(cfg model.OCRConfig) *TesseractEngine {
	return &TesseractEngine{
		clientFactory: gosseract.NewClient,
		languages:     cfg.Languages,
		preprocess:    cfg.Preprocess,
		minWidth:      cfg.MinWidth,
	}
}

// Name returns the engine name
func (e *TesseractEngine) Name() string { return "tesseract" }

// ExtractText performs OCR on a single label image
func (e *TesseractEngine) ExtractText(ctx context.Context, image []byte) (string, error) {
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%w: %v", ErrExtraction, ctx.Err())
	default:
	}

	input := image
	if e.preprocess {
		processed, err := Preprocess(image, e.minWidth)
		if err != nil {
			// Preprocessing is best-effort; recognition on the raw
			// image beats failing the request
			fmt.Fprintf(os.Stderr, "Warning: image preprocessing skipped: %v\n", err)
		} else {
			input = processed
		}
	}

	c := e.clientFactory()
	defer func() { _ = c.Close() }()

	if err := c.SetImageFromBytes(input); err != nil {
		return "", fmt.Errorf("%w: set image: %v", ErrExtraction, err)
	}
	if len(e.languages) > 0 {
		if err := c.SetLanguage(e.languages...); err != nil {
			return "", fmt.Errorf("%w: set languages: %v", ErrExtraction, err)
		}
	}

	text, err := c.Text()
	if err != nil {
		return "", fmt.Errorf("%w: recognize: %v", ErrExtraction, err)
	}

	return text, nil
}
