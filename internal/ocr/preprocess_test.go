package ocr

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// encodeTestImage renders a small PNG with mid-gray values so the contrast
// stretch has something to do
func encodeTestImage(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := uint8(100 + (x+y)%60)
			img.Set(x, y, color.RGBA{R: v, G: v, B: v, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

func TestPreprocess_ProducesDecodablePNG(t *testing.T) {
	processed, err := Preprocess(encodeTestImage(t, 200, 100), 0)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	img, format, err := image.Decode(bytes.NewReader(processed))
	if err != nil {
		t.Fatalf("Expected decodable output, got %v", err)
	}
	if format != "png" {
		t.Errorf("Expected png output, got %s", format)
	}
	if img.Bounds().Dx() != 200 || img.Bounds().Dy() != 100 {
		t.Errorf("Expected dimensions preserved without upscaling, got %v", img.Bounds())
	}
}

func TestPreprocess_UpscalesSmallImages(t *testing.T) {
	processed, err := Preprocess(encodeTestImage(t, 300, 150), 600)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(processed))
	if err != nil {
		t.Fatalf("Expected decodable output, got %v", err)
	}
	if img.Bounds().Dx() != 600 {
		t.Errorf("Expected width 600 after upscale, got %d", img.Bounds().Dx())
	}
	if img.Bounds().Dy() != 300 {
		t.Errorf("Expected aspect ratio preserved (height 300), got %d", img.Bounds().Dy())
	}
}

func TestPreprocess_StretchesContrast(t *testing.T) {
	processed, err := Preprocess(encodeTestImage(t, 50, 50), 0)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(processed))
	if err != nil {
		t.Fatalf("Expected decodable output, got %v", err)
	}

	// Source pixels span roughly 100-160; after the stretch the darkest
	// pixel should sit at 0 and the brightest at 255
	lo, hi := 255, 0
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			g := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			if int(g.Y) < lo {
				lo = int(g.Y)
			}
			if int(g.Y) > hi {
				hi = int(g.Y)
			}
		}
	}

	if lo != 0 {
		t.Errorf("Expected darkest pixel stretched to 0, got %d", lo)
	}
	if hi != 255 {
		t.Errorf("Expected brightest pixel stretched to 255, got %d", hi)
	}
}

func TestPreprocess_RejectsGarbage(t *testing.T) {
	if _, err := Preprocess([]byte("not an image"), 0); err == nil {
		t.Error("Expected error for undecodable payload")
	}
}
