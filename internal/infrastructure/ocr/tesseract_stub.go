//go:build !tesseract
// +build !tesseract

package ocr

import (
	"context"
	"errors"

	"vision-report/internal/domain/entity"
)

// TesseractClient заглушка для сборки без тега tesseract.
type TesseractClient struct {
	language string
}

// NewTesseractClient создаёт клиента-заглушку.
func NewTesseractClient(language string) *TesseractClient {
	return &TesseractClient{language: language}
}

// ExtractText возвращает ошибку, если сборка без тега tesseract.
func (c *TesseractClient) ExtractText(ctx context.Context, imageData []byte) (string, error) {
	_ = ctx
	_ = imageData
	return "", entity.NewOCRServiceError("tesseract is unavailable", errors.New("tesseract build tag is not enabled"))
}
