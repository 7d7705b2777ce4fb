package container

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"

	"vision-report/config"
	"vision-report/internal/domain/port"
	"vision-report/internal/infrastructure/ocr"
	"vision-report/internal/infrastructure/storage"
)

// FromConfig собирает контейнер по конфигурации процесса.
// Возвращённая функция освобождает соединение с БД.
func FromConfig(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) (*Container, func(), error) {
	extractor, err := ocr.NewTextExtractor(ctx, cfg.OCRBackend, ocr.VisionConfig{
		CredentialsFile: cfg.VisionCredentials,
		APIKey:          cfg.VisionAPIKey,
		Endpoint:        cfg.VisionEndpoint,
		Timeout:         cfg.OCRTimeout,
	}, cfg.TesseractLanguage, log)
	if err != nil {
		return nil, nil, fmt.Errorf("ocr: %w", err)
	}

	journal, closeDB, err := openJournal(ctx, cfg.DatabaseURL, log)
	if err != nil {
		return nil, nil, err
	}

	return New(storage.NewMemoryUserRepository(), journal, extractor, log), closeDB, nil
}

func openJournal(ctx context.Context, dsn string, log logrus.FieldLogger) (port.ReportRepository, func(), error) {
	if dsn == "" {
		log.Info("DATABASE_URL is empty, report journal is kept in memory")
		return storage.NewMemoryReportRepository(), func() {}, nil
	}

	db, err := storage.OpenPostgres(ctx, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("postgres: %w", err)
	}
	repo, err := storage.NewPostgresReportRepository(ctx, db)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("postgres: %w", err)
	}
	return repo, closer(db), nil
}

func closer(db *sql.DB) func() {
	return func() { _ = db.Close() }
}
