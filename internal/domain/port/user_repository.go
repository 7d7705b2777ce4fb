package port

import (
	"context"

	"vision-report/internal/domain/entity"
)

// UserRepository интерфейс хранилища пользователей бота
type UserRepository interface {
	// Get возвращает пользователя по ID, создаёт нового если не найден
	Get(ctx context.Context, userID, chatID int64) (*entity.User, error)

	// Save сохраняет состояние пользователя
	Save(ctx context.Context, user *entity.User) error

	// SetLastReport запоминает путь к последнему отчёту пользователя
	SetLastReport(ctx context.Context, userID int64, documentPath string) error
}
