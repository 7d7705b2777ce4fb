package telegram

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"vision-report/internal/domain/entity"
)

// userMessage переводит ошибку конвейера в сообщение для пользователя
func userMessage(err error) string {
	switch {
	case errors.Is(err, entity.ErrInvalidImage):
		return msgInvalidImage
	case errors.Is(err, entity.ErrOCRService):
		return msgOCRFailed
	case errors.Is(err, entity.ErrFilesystem):
		return msgWriteFailed
	default:
		return msgInternalError
	}
}

// splitText режет текст на части не длиннее limit рун, по возможности по строкам
func splitText(text string, limit int) []string {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}

	var parts []string
	for len(runes) > limit {
		cut := limit
		for i := limit; i > limit/2; i-- {
			if runes[i-1] == '\n' {
				cut = i
				break
			}
		}
		parts = append(parts, string(runes[:cut]))
		runes = runes[cut:]
	}
	if len(runes) > 0 {
		parts = append(parts, string(runes))
	}
	return parts
}

// formatHistory собирает список отчётов в одно сообщение
func formatHistory(records []entity.ReportRecord) string {
	if len(records) == 0 {
		return msgNoHistory
	}

	var sb strings.Builder
	sb.WriteString("🗂 Последние отчёты:\n")
	for _, r := range records {
		fmt.Fprintf(&sb, "\n%s — фрагментов: %d\n%s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.SegmentCount, r.DocumentPath)
	}
	return sb.String()
}

// chunkFiles делит список файлов на группы не больше size, сохраняя порядок
func chunkFiles(files []string, size int) [][]string {
	var chunks [][]string
	for len(files) > 0 {
		n := min(size, len(files))
		chunks = append(chunks, files[:n:n])
		files = files[n:]
	}
	return chunks
}

// segmentFilesOf находит segment_0.png, segment_1.png, ... рядом с документом
func segmentFilesOf(documentPath string) []string {
	dir := filepath.Dir(documentPath)

	var files []string
	for i := 0; ; i++ {
		path := filepath.Join(dir, entity.SegmentFileName(i))
		if _, err := os.Stat(path); err != nil {
			return files
		}
		files = append(files, path)
	}
}
