package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"vision-report/internal/domain/entity"
	"vision-report/internal/domain/port"
	"vision-report/internal/infrastructure/vision"
	"vision-report/internal/logging"
)

// PipelineService прогоняет одно изображение через OCR и сегментацию.
type PipelineService struct {
	ocr       port.TextExtractor
	segmenter port.Segmenter
	log       logrus.FieldLogger
}

// NewPipelineService создаёт координатор конвейера.
func NewPipelineService(ocr port.TextExtractor, segmenter port.Segmenter, log logrus.FieldLogger) *PipelineService {
	return &PipelineService{
		ocr:       ocr,
		segmenter: segmenter,
		log:       logging.OrDiscard(log),
	}
}

// Process читает файл, распознаёт текст по исходным байтам и режет
// декодированное изображение на сегменты. Ошибка OCR прерывает обработку
// до сегментации.
func (s *PipelineService) Process(ctx context.Context, imagePath string) (*entity.PipelineResult, error) {
	if s.ocr == nil || s.segmenter == nil {
		return nil, errors.New("pipeline is not configured")
	}

	data, err := os.ReadFile(imagePath)
	if err != nil {
		perr := entity.NewInvalidImageError("failed to read image", err)
		perr.Path = imagePath
		return nil, perr
	}

	img, err := vision.DecodeImage(data)
	if err != nil {
		return nil, err
	}

	log := s.log.WithField("path", imagePath)

	text, err := s.ocr.ExtractText(ctx, data)
	if err != nil {
		log.WithError(err).Error("text extraction failed")
		return nil, fmt.Errorf("extract text: %w", err)
	}

	segments, err := s.segmenter.Segment(img)
	if err != nil {
		log.WithError(err).Error("segmentation failed")
		return nil, fmt.Errorf("segment image: %w", err)
	}

	log.WithFields(logrus.Fields{
		"chars":    len(text),
		"segments": len(segments),
	}).Info("image processed")

	return &entity.PipelineResult{Text: text, Segments: segments}, nil
}
