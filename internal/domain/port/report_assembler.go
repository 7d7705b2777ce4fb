package port

import "vision-report/internal/domain/entity"

// ReportAssembler интерфейс сборки отчёта
type ReportAssembler interface {
	// Assemble записывает сегменты и HTML-документ в outputDir
	Assemble(text string, segments []entity.Segment, outputDir string) (*entity.Report, error)
}
