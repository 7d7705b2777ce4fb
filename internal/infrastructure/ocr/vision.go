package ocr

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
	visionapi "google.golang.org/api/vision/v1"

	"vision-report/internal/domain/entity"
	"vision-report/internal/domain/port"
	"vision-report/internal/logging"
)

const featureTextDetection = "TEXT_DETECTION"

// ErrNoCredentials: не заданы ни ключ, ни файл сервисного аккаунта, ни адрес API.
var ErrNoCredentials = errors.New("no vision credentials configured")

// VisionConfig параметры подключения к Google Cloud Vision.
// Все учётные данные передаются явно, окружение процесса не читается.
type VisionConfig struct {
	CredentialsFile string        // JSON сервисного аккаунта
	APIKey          string        // альтернатива CredentialsFile
	Endpoint        string        // переопределение адреса API
	Timeout         time.Duration // ограничение на один запрос
	HTTPClient      *http.Client  // готовый клиент, отключает авторизацию
}

// VisionClient распознаёт текст через images:annotate с TEXT_DETECTION.
type VisionClient struct {
	svc     *visionapi.Service
	timeout time.Duration
	log     logrus.FieldLogger
}

// NewVisionClient создаёт клиента Cloud Vision.
func NewVisionClient(ctx context.Context, cfg VisionConfig, log logrus.FieldLogger) (*VisionClient, error) {
	var opts []option.ClientOption
	switch {
	case cfg.HTTPClient != nil:
		opts = append(opts, option.WithHTTPClient(cfg.HTTPClient))
	case cfg.CredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	case cfg.APIKey != "":
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	case cfg.Endpoint != "":
		// Локальный или проксирующий адрес без авторизации
		opts = append(opts, option.WithoutAuthentication())
	default:
		return nil, ErrNoCredentials
	}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}

	svc, err := visionapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create vision service: %w", err)
	}

	return &VisionClient{
		svc:     svc,
		timeout: cfg.Timeout,
		log:     logging.OrDiscard(log).WithField("ocr", "vision"),
	}, nil
}

// ExtractText отправляет исходные байты файла и возвращает полный текст документа.
func (c *VisionClient) ExtractText(ctx context.Context, imageData []byte) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req := &visionapi.BatchAnnotateImagesRequest{
		Requests: []*visionapi.AnnotateImageRequest{{
			Image:    &visionapi.Image{Content: base64.StdEncoding.EncodeToString(imageData)},
			Features: []*visionapi.Feature{{Type: featureTextDetection}},
		}},
	}

	started := time.Now()
	resp, err := c.svc.Images.Annotate(req).Context(ctx).Do()
	if err != nil {
		c.log.WithError(err).Error("text detection request failed")
		return "", entity.NewOCRServiceError("text detection request failed", err)
	}

	if len(resp.Responses) == 0 {
		return entity.NoTextFound, nil
	}

	text, err := textFromResponse(resp.Responses[0])
	if err != nil {
		c.log.WithError(err).Warn("text detection rejected the image")
		return "", err
	}

	c.log.WithFields(logrus.Fields{
		"bytes":    len(imageData),
		"chars":    len(text),
		"duration": time.Since(started),
	}).Debug("text detected")
	return text, nil
}

// textFromResponse возвращает первую аннотацию, в ней весь текст изображения.
func textFromResponse(r *visionapi.AnnotateImageResponse) (string, error) {
	if r == nil {
		return entity.NoTextFound, nil
	}
	if r.Error != nil && r.Error.Message != "" {
		return "", entity.NewOCRServiceError(r.Error.Message, nil)
	}
	if len(r.TextAnnotations) == 0 {
		return entity.NoTextFound, nil
	}
	return r.TextAnnotations[0].Description, nil
}

// Проверка реализации интерфейса
var _ port.TextExtractor = (*VisionClient)(nil)
