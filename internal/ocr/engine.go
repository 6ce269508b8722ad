// Package ocr hosts the external text-extraction collaborator. The
// comparison engine depends only on the Engine contract; how recognition is
// hosted (in-process Tesseract, anything else) stays behind it, as does any
// cached worker state.
package ocr

import (
	"context"
	"errors"
)

// ErrExtraction marks collaborator failures. Callers use it to distinguish
// "OCR unavailable/errored" from bad request input.
var ErrExtraction = errors.New("ocr extraction failed")

// Engine is the OCR collaborator contract: encoded image bytes in, raw
// recognized text out.
type Engine interface {
	Name() string
	ExtractText(ctx context.Context, image []byte) (string, error)
}

// EngineFunc adapts a plain function to the Engine interface
type EngineFunc func(ctx context.Context, image []byte) (string, error)

func (f EngineFunc) Name() string { return "func" }

func (f EngineFunc) ExtractText(ctx context.Context, image []byte) (string, error) {
	return f(ctx, image)
}
