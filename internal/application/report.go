package app

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"vision-report/internal/domain/entity"
	"vision-report/internal/domain/port"
	"vision-report/internal/logging"
)

// GenerateRequest: одна загрузка, превращаемая в отчёт.
type GenerateRequest struct {
	ImagePath string
	OutputDir string
	ChatID    int64
}

// ReportService связывает конвейер, сборку отчёта и журнал.
type ReportService struct {
	pipeline  *PipelineService
	assembler port.ReportAssembler
	journal   port.ReportRepository
	log       logrus.FieldLogger
	now       func() time.Time
}

// NewReportService создаёт сервис отчётов. journal может быть nil.
func NewReportService(pipeline *PipelineService, assembler port.ReportAssembler, journal port.ReportRepository, log logrus.FieldLogger) *ReportService {
	return &ReportService{
		pipeline:  pipeline,
		assembler: assembler,
		journal:   journal,
		log:       logging.OrDiscard(log),
		now:       time.Now,
	}
}

// NewOutputDir возвращает уникальный каталог отчёта внутри root,
// чтобы параллельные загрузки не перезаписывали файлы друг друга.
func NewOutputDir(root string) string {
	return filepath.Join(root, uuid.NewString())
}

// Generate обрабатывает изображение и пишет отчёт в req.OutputDir.
func (s *ReportService) Generate(ctx context.Context, req GenerateRequest) (*entity.Report, error) {
	if req.OutputDir == "" {
		return nil, errors.New("output directory is required")
	}

	result, err := s.pipeline.Process(ctx, req.ImagePath)
	if err != nil {
		return nil, err
	}

	rep, err := s.assembler.Assemble(result.Text, result.Segments, req.OutputDir)
	if err != nil {
		return nil, err
	}

	if s.journal != nil {
		rec := &entity.ReportRecord{
			ID:           uuid.NewString(),
			ChatID:       req.ChatID,
			SourcePath:   req.ImagePath,
			OutputDir:    rep.OutputDir,
			DocumentPath: rep.DocumentPath,
			SegmentCount: len(rep.SegmentFiles),
			Text:         rep.Text,
			CreatedAt:    s.now(),
		}
		// Журнал вспомогательный: отчёт уже на диске.
		if err := s.journal.Save(ctx, rec); err != nil {
			s.log.WithError(err).WithField("report", rec.ID).Warn("failed to save journal entry")
		}
	}

	return rep, nil
}

// History возвращает последние отчёты чата.
func (s *ReportService) History(ctx context.Context, chatID int64, limit int) ([]entity.ReportRecord, error) {
	if s.journal == nil {
		return nil, nil
	}
	return s.journal.ListByChat(ctx, chatID, limit)
}
