package entity

import (
	"errors"
	"fmt"
)

// ErrorKind: класс ошибки конвейера
type ErrorKind string

const (
	KindInvalidImage ErrorKind = "INVALID_IMAGE"
	KindOCRService   ErrorKind = "OCR_SERVICE_ERROR"
	KindFilesystem   ErrorKind = "FILESYSTEM_ERROR"
)

// Сентинелы для errors.Is: сравнение идёт только по Kind.
var (
	ErrInvalidImage = &PipelineError{Kind: KindInvalidImage}
	ErrOCRService   = &PipelineError{Kind: KindOCRService}
	ErrFilesystem   = &PipelineError{Kind: KindFilesystem}
)

// PipelineError: ошибка обработки изображения или записи отчёта.
type PipelineError struct {
	Kind    ErrorKind
	Message string
	Path    string // файл, на котором произошла ошибка
	Index   int    // индекс сегмента, -1 если не относится к сегменту
	Cause   error
}

func (e *PipelineError) Error() string {
	msg := string(e.Kind)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Path != "" {
		msg += fmt.Sprintf(" (%s)", e.Path)
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

func (e *PipelineError) Unwrap() error {
	return e.Cause
}

// Is сопоставляет ошибки одного класса.
func (e *PipelineError) Is(target error) bool {
	var t *PipelineError
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// NewInvalidImageError сообщает о нераспознаваемом или пустом изображении.
func NewInvalidImageError(message string, cause error) *PipelineError {
	return &PipelineError{Kind: KindInvalidImage, Message: message, Index: -1, Cause: cause}
}

// NewOCRServiceError переносит сообщение об ошибке от OCR-сервиса.
func NewOCRServiceError(message string, cause error) *PipelineError {
	return &PipelineError{Kind: KindOCRService, Message: message, Index: -1, Cause: cause}
}

// NewFilesystemError сообщает о неудачной записи файла или каталога.
func NewFilesystemError(path string, cause error) *PipelineError {
	return &PipelineError{Kind: KindFilesystem, Message: "write failed", Path: path, Index: -1, Cause: cause}
}

// NewSegmentWriteError: ошибка записи конкретного сегмента.
func NewSegmentWriteError(index int, path string, cause error) *PipelineError {
	return &PipelineError{
		Kind:    KindFilesystem,
		Message: fmt.Sprintf("segment %d write failed", index),
		Path:    path,
		Index:   index,
		Cause:   cause,
	}
}
