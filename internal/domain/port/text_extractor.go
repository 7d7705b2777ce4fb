package port

import "context"

// TextExtractor интерфейс OCR-сервиса
type TextExtractor interface {
	// ExtractText распознаёт текст по исходным байтам файла.
	// Возвращает entity.NoTextFound, если текста нет.
	ExtractText(ctx context.Context, imageData []byte) (string, error)
}
