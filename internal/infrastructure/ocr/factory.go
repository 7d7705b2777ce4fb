package ocr

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"vision-report/internal/domain/port"
)

// Поддерживаемые OCR-бэкенды
const (
	BackendVision    = "vision"
	BackendTesseract = "tesseract"
)

// NewTextExtractor выбирает реализацию по имени бэкенда.
func NewTextExtractor(ctx context.Context, backend string, vision VisionConfig, tesseractLang string, log logrus.FieldLogger) (port.TextExtractor, error) {
	switch backend {
	case "", BackendVision:
		client, err := NewVisionClient(ctx, vision, log)
		if err != nil {
			return nil, err
		}
		return client, nil
	case BackendTesseract:
		return NewTesseractClient(tesseractLang), nil
	default:
		return nil, fmt.Errorf("unknown ocr backend %q", backend)
	}
}
