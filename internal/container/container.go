package container

import (
	"github.com/sirupsen/logrus"

	app "vision-report/internal/application"
	"vision-report/internal/domain/port"
	"vision-report/internal/infrastructure/report"
	"vision-report/internal/infrastructure/vision"
)

type Container struct {
	UserService   *app.UserService
	ReportService *app.ReportService
}

func New(userRepo port.UserRepository, journal port.ReportRepository, ocr port.TextExtractor, log logrus.FieldLogger) *Container {
	userService := app.NewUserService(userRepo)
	pipelineService := app.NewPipelineService(ocr, vision.NewContourSegmenter(), log)
	reportService := app.NewReportService(pipelineService, report.NewHTMLAssembler(log), journal, log)

	return &Container{
		UserService:   userService,
		ReportService: reportService,
	}
}
