package entity

import "time"

// NoTextFound возвращается вместо текста, когда OCR не нашёл ни одной аннотации.
const NoTextFound = "No text found"

// Файлы отчёта внутри каталога вывода.
const (
	DocumentFileName   = "output.html"
	segmentFilePattern = "segment_%d.png"
)

// PipelineResult: итог обработки одного изображения.
type PipelineResult struct {
	Text     string    // распознанный текст или NoTextFound
	Segments []Segment // сегменты в порядке обнаружения
}

// Report описывает записанный на диск отчёт
type Report struct {
	Text         string
	OutputDir    string
	DocumentPath string
	SegmentFiles []string // в том же порядке, что и сегменты
}

// ReportRecord: запись журнала обработанных загрузок.
type ReportRecord struct {
	ID           string
	ChatID       int64 // 0 для запусков вне бота
	SourcePath   string
	OutputDir    string
	DocumentPath string
	SegmentCount int
	Text         string
	CreatedAt    time.Time
}
