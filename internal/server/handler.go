package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ppiankov/labelcheck/internal/model"
	"github.com/ppiankov/labelcheck/internal/ocr"
)

// Accepted upload content types, sniffed from the payload rather than trusted
// from the part header
var acceptedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

type errorResponse struct {
	Error string `json:"error"`
}

// handleVerify accepts a multipart form with the four claims and a label
// image, and responds with the full verdict. Validation problems are the
// caller's to fix (400); an OCR failure is distinct (502); an unreadable
// label is a normal verdict, not an error.
func (s *Server) handleVerify(c echo.Context) error {
	var claims model.Claims
	if err := c.Bind(&claims); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "malformed request"})
	}
	if err := claims.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid claims: %v", err)})
	}

	image, errResp := s.readLabelImage(c)
	if errResp != nil {
		return c.JSON(http.StatusBadRequest, errResp)
	}

	verdict, err := s.verifier.VerifyImage(c.Request().Context(), image, claims)
	if err != nil {
		if errors.Is(err, ocr.ErrExtraction) {
			return c.JSON(http.StatusBadGateway, errorResponse{Error: "text extraction failed"})
		}
		c.Logger().Errorf("verification failed: %v", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "unexpected error during verification"})
	}

	return c.JSON(http.StatusOK, verdict)
}

// readLabelImage pulls the image part out of the form and enforces the size
// ceiling and content-type whitelist before any OCR work
func (s *Server) readLabelImage(c echo.Context) ([]byte, *errorResponse) {
	fileHeader, err := c.FormFile("labelImage")
	if err != nil {
		return nil, &errorResponse{Error: "label image file is required"}
	}
	if s.config.MaxImageBytes > 0 && fileHeader.Size > s.config.MaxImageBytes {
		return nil, &errorResponse{Error: fmt.Sprintf("image exceeds %d byte limit", s.config.MaxImageBytes)}
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, &errorResponse{Error: "could not read label image"}
	}
	defer func() { _ = file.Close() }()

	image, err := io.ReadAll(file)
	if err != nil {
		return nil, &errorResponse{Error: "could not read label image"}
	}

	if !acceptedImageTypes[http.DetectContentType(image)] {
		return nil, &errorResponse{Error: "unsupported image type, expected JPEG, PNG, or WebP"}
	}

	return image, nil
}
