package main

import (
	"context"
	"flag"
	"fmt"

	"vision-report/config"
	app "vision-report/internal/application"
	"vision-report/internal/container"
	"vision-report/internal/logging"
)

func main() {
	imagePath := flag.String("image", "", "path to the input image (png, jpg, jpeg, gif)")
	outputDir := flag.String("out", "", "output directory; defaults to OUTPUT_DIR/<uuid>")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logging.New("info").Fatalf("Failed to load config: %v", err)
	}
	log := logging.New(cfg.LogLevel)

	if *imagePath == "" {
		log.Fatal("-image is required")
	}
	if *outputDir == "" {
		*outputDir = app.NewOutputDir(cfg.OutputDir)
	}

	ctx := context.Background()

	appContainer, closeDB, err := container.FromConfig(ctx, cfg, log)
	if err != nil {
		log.Fatalf("Failed to build services: %v", err)
	}
	defer closeDB()

	rep, err := appContainer.ReportService.Generate(ctx, app.GenerateRequest{
		ImagePath: *imagePath,
		OutputDir: *outputDir,
	})
	if err != nil {
		closeDB()
		log.Fatalf("Report failed: %v", err)
	}

	log.WithField("segments", len(rep.SegmentFiles)).Info("report written")
	fmt.Println(rep.DocumentPath)
}
