package report

import (
	"bytes"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/sirupsen/logrus"

	"vision-report/internal/domain/entity"
	"vision-report/internal/domain/port"
	"vision-report/internal/logging"
)

var documentTmpl = template.Must(template.New("output").Funcs(template.FuncMap{
	"lines": textLines,
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Extracted Content</title>
</head>
<body>
<h1>EXTRACTED TEXT:</h1>
<p>{{lines .Text}}</p>

<h1>IMAGE SEGMENT:</h1>
{{range $i, $src := .Images}}<img src="{{$src}}" alt="Segment {{$i}}"><br>
{{end}}</body>
</html>
`))

type documentData struct {
	Text   string
	Images []string
}

// textLines экранирует текст и превращает переводы строк в <br>.
func textLines(s string) template.HTML {
	escaped := template.HTMLEscapeString(s)
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}

// HTMLAssembler пишет сегменты в PNG и собирает output.html.
//
// Ошибка записи сегмента не откатывает уже записанные файлы: она сообщает
// индекс и путь неудачного сегмента, документ в этом случае не пишется.
type HTMLAssembler struct {
	log logrus.FieldLogger
}

// NewHTMLAssembler создаёт сборщик отчёта.
func NewHTMLAssembler(log logrus.FieldLogger) *HTMLAssembler {
	return &HTMLAssembler{log: logging.OrDiscard(log)}
}

// Assemble записывает segment_{i}.png и output.html в outputDir.
func (a *HTMLAssembler) Assemble(text string, segments []entity.Segment, outputDir string) (*entity.Report, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, entity.NewFilesystemError(outputDir, err)
	}

	files := make([]string, 0, len(segments))
	names := make([]string, 0, len(segments))
	for i, seg := range segments {
		name := entity.SegmentFileName(i)
		path := filepath.Join(outputDir, name)
		if err := imaging.Save(seg.Image, path); err != nil {
			a.log.WithError(err).WithFields(logrus.Fields{
				"segment": i,
				"written": len(files),
				"path":    path,
			}).Error("segment write failed")
			return nil, entity.NewSegmentWriteError(i, path, err)
		}
		files = append(files, path)
		names = append(names, name)
	}

	var buf bytes.Buffer
	if err := documentTmpl.Execute(&buf, documentData{Text: text, Images: names}); err != nil {
		return nil, err
	}

	docPath := filepath.Join(outputDir, entity.DocumentFileName)
	if err := os.WriteFile(docPath, buf.Bytes(), 0o644); err != nil {
		return nil, entity.NewFilesystemError(docPath, err)
	}

	a.log.WithFields(logrus.Fields{
		"output_dir": outputDir,
		"segments":   len(files),
	}).Info("report written")

	return &entity.Report{
		Text:         text,
		OutputDir:    outputDir,
		DocumentPath: docPath,
		SegmentFiles: files,
	}, nil
}

// Проверка реализации интерфейса
var _ port.ReportAssembler = (*HTMLAssembler)(nil)
