package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	// Decoders for the accepted upload formats
	_ "image/jpeg"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// Preprocess prepares a photographed label for recognition: grayscale,
// linear contrast stretch, and upscaling of small images to minWidth.
// Returns the processed image re-encoded as PNG.
func Preprocess(imageBytes []byte, minWidth int) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(imageBytes))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	gray := toGray(src)
	stretchContrast(gray)

	var out image.Image = gray
	if minWidth > 0 && gray.Bounds().Dx() < minWidth {
		out = upscale(gray, minWidth)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("encode processed image: %w", err)
	}
	return buf.Bytes(), nil
}

// toGray converts any decoded image to 8-bit grayscale
func toGray(src image.Image) *image.Gray {
	bounds := src.Bounds()
	gray := image.NewGray(bounds)
	draw.Draw(gray, bounds, src, bounds.Min, draw.Src)
	return gray
}

// stretchContrast linearly rescales pixel intensities to the full 0-255
// range in place. Flat images (min == max) are left untouched.
func stretchContrast(gray *image.Gray) {
	lo, hi := uint8(255), uint8(0)
	for _, p := range gray.Pix {
		if p < lo {
			lo = p
		}
		if p > hi {
			hi = p
		}
	}
	if lo >= hi {
		return
	}

	scale := 255.0 / float64(hi-lo)
	for i, p := range gray.Pix {
		gray.Pix[i] = uint8(float64(p-lo) * scale)
	}
}

// upscale resizes the image so its width is at least minWidth, preserving
// the aspect ratio. Catmull-Rom keeps glyph edges reasonably sharp.
func upscale(gray *image.Gray, minWidth int) image.Image {
	bounds := gray.Bounds()
	ratio := float64(minWidth) / float64(bounds.Dx())
	height := int(float64(bounds.Dy()) * ratio)

	dst := image.NewGray(image.Rect(0, 0, minWidth, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), gray, bounds, draw.Src, nil)
	return dst
}
