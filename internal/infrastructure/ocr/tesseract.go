//go:build tesseract
// +build tesseract

package ocr

import (
	"context"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"vision-report/internal/domain/entity"
)

// TesseractClient распознаёт текст локально через Tesseract.
type TesseractClient struct {
	language string
}

// NewTesseractClient создаёт клиента для указанного языка ("eng", "rus", ...).
func NewTesseractClient(language string) *TesseractClient {
	return &TesseractClient{language: language}
}

// ExtractText распознаёт текст по байтам файла.
func (c *TesseractClient) ExtractText(ctx context.Context, imageData []byte) (string, error) {
	_ = ctx

	client := gosseract.NewClient()
	defer client.Close()

	if c.language != "" {
		if err := client.SetLanguage(c.language); err != nil {
			return "", entity.NewOCRServiceError("failed to set language", err)
		}
	}
	if err := client.SetImageFromBytes(imageData); err != nil {
		return "", entity.NewOCRServiceError("failed to set image", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", entity.NewOCRServiceError("tesseract failed", err)
	}
	if strings.TrimSpace(text) == "" {
		return entity.NoTextFound, nil
	}
	return text, nil
}
