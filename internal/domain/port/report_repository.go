package port

import (
	"context"

	"vision-report/internal/domain/entity"
)

// ReportRepository интерфейс журнала отчётов
type ReportRepository interface {
	// Save добавляет запись в журнал
	Save(ctx context.Context, record *entity.ReportRecord) error

	// ListByChat возвращает последние записи чата, новые первыми
	ListByChat(ctx context.Context, chatID int64, limit int) ([]entity.ReportRecord, error)
}
