package storage

import (
	"context"
	"sync"

	"vision-report/internal/domain/entity"
	"vision-report/internal/domain/port"
)

// MemoryReportRepository журнал отчётов в памяти процесса
type MemoryReportRepository struct {
	mu      sync.RWMutex
	records []entity.ReportRecord
}

// NewMemoryReportRepository создаёт пустой журнал
func NewMemoryReportRepository() *MemoryReportRepository {
	return &MemoryReportRepository{}
}

// Save добавляет запись в конец журнала
func (r *MemoryReportRepository) Save(ctx context.Context, record *entity.ReportRecord) error {
	r.mu.Lock()
	r.records = append(r.records, *record)
	r.mu.Unlock()
	return nil
}

// ListByChat возвращает до limit последних записей чата, новые первыми
func (r *MemoryReportRepository) ListByChat(ctx context.Context, chatID int64, limit int) ([]entity.ReportRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.ReportRecord, 0)
	for i := len(r.records) - 1; i >= 0; i-- {
		if limit > 0 && len(out) >= limit {
			break
		}
		if r.records[i].ChatID == chatID {
			out = append(out, r.records[i])
		}
	}
	return out, nil
}

// Проверка реализации интерфейса
var _ port.ReportRepository = (*MemoryReportRepository)(nil)
