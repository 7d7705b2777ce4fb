package app

import (
	"context"
	"errors"
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"vision-report/internal/domain/entity"
	"vision-report/internal/infrastructure/report"
	"vision-report/internal/infrastructure/storage"
	"vision-report/internal/infrastructure/vision"
)

func newReportService(ocr *fakeOCR, journal *storage.MemoryReportRepository) *ReportService {
	pipeline := NewPipelineService(ocr, vision.NewContourSegmenter(), nil)
	return NewReportService(pipeline, report.NewHTMLAssembler(nil), journal, nil)
}

func TestReportService_GenerateSingleShape(t *testing.T) {
	path := writePNG(t, 120, 100, image.Rect(30, 20, 80, 70))
	journal := storage.NewMemoryReportRepository()
	svc := newReportService(&fakeOCR{text: "Total\n42"}, journal)
	out := filepath.Join(t.TempDir(), "req-1")

	rep, err := svc.Generate(context.Background(), GenerateRequest{ImagePath: path, OutputDir: out, ChatID: 5})
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(out, "segment_0.png")}, rep.SegmentFiles)

	doc, err := os.ReadFile(rep.DocumentPath)
	require.NoError(t, err)
	require.Contains(t, string(doc), "Total<br>42")
	require.Equal(t, 1, strings.Count(string(doc), "<img "))

	history, err := svc.History(context.Background(), 5, 10)
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.Equal(t, 1, history[0].SegmentCount)
	require.Equal(t, rep.DocumentPath, history[0].DocumentPath)
	require.Equal(t, "Total\n42", history[0].Text)
}

func TestReportService_GenerateNoContours(t *testing.T) {
	path := writePNG(t, 50, 50)
	svc := newReportService(&fakeOCR{text: entity.NoTextFound}, nil)

	rep, err := svc.Generate(context.Background(), GenerateRequest{ImagePath: path, OutputDir: t.TempDir()})
	require.NoError(t, err)
	require.Empty(t, rep.SegmentFiles)

	doc, err := os.ReadFile(rep.DocumentPath)
	require.NoError(t, err)
	require.Contains(t, string(doc), "No text found")
	require.NotContains(t, string(doc), "<img")

	history, err := svc.History(context.Background(), 0, 10)
	require.NoError(t, err)
	require.Empty(t, history)
}

func TestReportService_OCRFailureWritesNothing(t *testing.T) {
	path := writePNG(t, 50, 50, image.Rect(10, 10, 20, 20))
	journal := storage.NewMemoryReportRepository()
	svc := newReportService(&fakeOCR{err: entity.NewOCRServiceError("quota", errors.New("429"))}, journal)
	out := filepath.Join(t.TempDir(), "req")

	_, err := svc.Generate(context.Background(), GenerateRequest{ImagePath: path, OutputDir: out})
	require.ErrorIs(t, err, entity.ErrOCRService)
	require.NoDirExists(t, out)

	history, err := journal.ListByChat(context.Background(), 0, 10)
	require.NoError(t, err)
	require.Empty(t, history)
}

func TestReportService_RequiresOutputDir(t *testing.T) {
	svc := newReportService(&fakeOCR{text: "x"}, nil)
	_, err := svc.Generate(context.Background(), GenerateRequest{ImagePath: "x.png"})
	require.Error(t, err)
}

func TestNewOutputDir_Unique(t *testing.T) {
	a := NewOutputDir("out")
	b := NewOutputDir("out")
	require.NotEqual(t, a, b)
	require.Equal(t, "out", filepath.Dir(a))
}
