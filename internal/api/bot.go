package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	app "vision-report/internal/application"
	"vision-report/internal/domain/entity"
	"vision-report/internal/infrastructure/vision"
)

const (
	msgStart = `👋 Привет! Я извлекаю текст и фрагменты из изображений.

📸 Отправьте картинку (png, jpg, jpeg, gif) фото или файлом, и я пришлю HTML-отчёт.

📋 Команды:
/check — загрузить изображение
/history — последние отчёты
/last — повторить последний отчёт
/help — справка
/cancel — отменить текущую операцию`

	msgHelp = `ℹ️ Как пользоваться ботом:

1️⃣ Отправьте изображение
2️⃣ Бот распознает текст и разрежет картинку на фрагменты по контурам
3️⃣ Вы получите текст и файл output.html с фрагментами

📋 Команды:
/check — загрузить изображение
/history — последние отчёты
/last — повторить последний отчёт
/cancel — отменить операцию`

	msgAwaitingImage  = "📸 Отправьте изображение для обработки."
	msgCancelled      = "❌ Операция отменена. Отправьте /check для новой загрузки."
	msgSendImage      = "📸 Пожалуйста, отправьте изображение."
	msgUnknownCommand = "❓ Неизвестная команда. Используйте /help для справки."
	msgProcessing     = "⏳ Обрабатываю изображение..."
	msgBusy           = "⏳ Предыдущее изображение ещё обрабатывается."
	msgUnsupported    = "⚠️ Поддерживаются только файлы png, jpg, jpeg и gif."
	msgInvalidImage   = "⚠️ Не удалось прочитать изображение. Попробуйте другой файл."
	msgOCRFailed      = "⚠️ Сервис распознавания текста вернул ошибку. Попробуйте позже."
	msgWriteFailed    = "⚠️ Не удалось сохранить отчёт. Попробуйте ещё раз."
	msgInternalError  = "⚠️ Не удалось обработать изображение."
	msgNoHistory      = "📭 Отчётов пока нет."
	msgReportReady    = "✅ Готово: найдено фрагментов — %d. Сохраните output.html рядом с файлами сегментов."
	msgNoLastReport   = "📭 Последний отчёт не найден. Отправьте изображение."

	// Лимиты Telegram
	maxMessageRunes = 4096
	maxMediaGroup   = 10
	historyLimit    = 5
)

// Bot представляет Telegram-бота
type Bot struct {
	api        *tgbotapi.BotAPI
	users      *app.UserService
	reports    *app.ReportService
	uploadDir  string
	outputRoot string
	log        logrus.FieldLogger
	httpc      *http.Client
}

// NewBot создаёт нового бота
func NewBot(token string, users *app.UserService, reports *app.ReportService, uploadDir, outputRoot string, log logrus.FieldLogger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log = log.WithField("component", "telegram")
	log.Infof("Authorized on account %s", api.Self.UserName)

	return &Bot{
		api:        api,
		users:      users,
		reports:    reports,
		uploadDir:  uploadDir,
		outputRoot: outputRoot,
		log:        log,
		httpc:      &http.Client{Timeout: 60 * time.Second},
	}, nil
}

// Run запускает основной цикл обработки сообщений
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

// handleMessage обрабатывает входящее сообщение
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	// Сообщения каналов приходят без отправителя
	if msg.From == nil {
		return
	}

	// Обработка команд
	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}

	// Фото приходит сжатым JPEG
	if len(msg.Photo) > 0 {
		photo := msg.Photo[len(msg.Photo)-1]
		b.handleImage(ctx, msg, photo.FileID, ".jpg")
		return
	}

	// Изображение файлом сохраняет исходный формат
	if msg.Document != nil {
		if !vision.SupportedExtension(msg.Document.FileName) {
			b.sendMessage(msg.Chat.ID, msgUnsupported)
			return
		}
		ext := strings.ToLower(filepath.Ext(msg.Document.FileName))
		b.handleImage(ctx, msg, msg.Document.FileID, ext)
		return
	}

	b.sendMessage(msg.Chat.ID, msgSendImage)
}

// handleCommand обрабатывает команды бота
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	userID, chatID := msg.From.ID, msg.Chat.ID

	switch msg.Command() {
	case "start":
		b.setMenu(ctx, userID, chatID)
		b.sendMessage(chatID, msgStart)

	case "help":
		b.sendMessage(chatID, msgHelp)

	case "check":
		if _, err := b.users.BeginUpload(ctx, userID, chatID); err != nil {
			b.log.WithError(err).Error("begin upload")
		}
		b.sendMessage(chatID, msgAwaitingImage)

	case "cancel":
		b.setMenu(ctx, userID, chatID)
		b.sendMessage(chatID, msgCancelled)

	case "history":
		b.sendHistory(ctx, chatID)

	case "last":
		b.sendLastReport(ctx, userID, chatID)

	default:
		b.sendMessage(chatID, msgUnknownCommand)
	}
}

// handleImage скачивает изображение, строит отчёт и отправляет его пользователю
func (b *Bot) handleImage(ctx context.Context, msg *tgbotapi.Message, fileID, ext string) {
	userID, chatID := msg.From.ID, msg.Chat.ID
	log := b.log.WithField("chat_id", chatID)

	if _, err := b.users.StartProcessing(ctx, userID, chatID); err != nil {
		if errors.Is(err, app.ErrBusy) {
			b.sendMessage(chatID, msgBusy)
			return
		}
		log.WithError(err).Error("start processing")
		b.sendMessage(chatID, msgInternalError)
		return
	}

	documentPath := ""
	defer func() {
		if _, err := b.users.Finish(ctx, userID, chatID, documentPath); err != nil {
			log.WithError(err).Error("finish processing")
		}
	}()

	b.sendMessage(chatID, msgProcessing)

	imageData, err := b.downloadFile(ctx, fileID)
	if err != nil {
		log.WithError(err).Error("download image")
		b.sendMessage(chatID, msgInternalError)
		return
	}

	uploadPath, err := b.saveUpload(imageData, ext)
	if err != nil {
		log.WithError(err).Error("save upload")
		b.sendMessage(chatID, msgWriteFailed)
		return
	}
	log.WithFields(logrus.Fields{"path": uploadPath, "bytes": len(imageData)}).Info("image received")

	rep, err := b.reports.Generate(ctx, app.GenerateRequest{
		ImagePath: uploadPath,
		OutputDir: app.NewOutputDir(b.outputRoot),
		ChatID:    chatID,
	})
	if err != nil {
		log.WithError(err).Error("generate report")
		b.sendMessage(chatID, userMessage(err))
		return
	}
	documentPath = rep.DocumentPath

	for _, part := range splitText(rep.Text, maxMessageRunes) {
		b.sendMessage(chatID, part)
	}

	b.sendReport(chatID, rep.DocumentPath, rep.SegmentFiles)
}

// sendReport отправляет output.html и файлы сегментов, на которые он ссылается
func (b *Bot) sendReport(chatID int64, documentPath string, segmentFiles []string) {
	log := b.log.WithField("chat_id", chatID)

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FilePath(documentPath))
	doc.Caption = fmt.Sprintf(msgReportReady, len(segmentFiles))
	if _, err := b.api.Send(doc); err != nil {
		log.WithError(err).Error("send report document")
		return
	}

	for _, chunk := range chunkFiles(segmentFiles, maxMediaGroup) {
		// Альбом в Telegram требует минимум два файла
		if len(chunk) == 1 {
			if _, err := b.api.Send(tgbotapi.NewDocument(chatID, tgbotapi.FilePath(chunk[0]))); err != nil {
				log.WithError(err).WithField("path", chunk[0]).Error("send segment")
			}
			continue
		}

		media := make([]interface{}, 0, len(chunk))
		for _, path := range chunk {
			media = append(media, tgbotapi.NewInputMediaDocument(tgbotapi.FilePath(path)))
		}
		if _, err := b.api.SendMediaGroup(tgbotapi.NewMediaGroup(chatID, media)); err != nil {
			log.WithError(err).WithField("files", len(chunk)).Error("send segments")
		}
	}
}

// sendLastReport повторно отправляет последний отчёт пользователя
func (b *Bot) sendLastReport(ctx context.Context, userID, chatID int64) {
	user, err := b.users.Get(ctx, userID, chatID)
	if err != nil {
		b.log.WithError(err).WithField("chat_id", chatID).Error("load user")
		b.sendMessage(chatID, msgInternalError)
		return
	}

	if user.LastReport == "" {
		b.sendMessage(chatID, msgNoLastReport)
		return
	}
	if _, err := os.Stat(user.LastReport); err != nil {
		b.sendMessage(chatID, msgNoLastReport)
		return
	}

	b.sendReport(chatID, user.LastReport, segmentFilesOf(user.LastReport))
}

// saveUpload сохраняет загрузку под уникальным именем
func (b *Bot) saveUpload(data []byte, ext string) (string, error) {
	if err := os.MkdirAll(b.uploadDir, 0o755); err != nil {
		return "", entity.NewFilesystemError(b.uploadDir, err)
	}
	path := filepath.Join(b.uploadDir, uuid.NewString()+ext)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", entity.NewFilesystemError(path, err)
	}
	return path, nil
}

// sendHistory отправляет список последних отчётов чата
func (b *Bot) sendHistory(ctx context.Context, chatID int64) {
	records, err := b.reports.History(ctx, chatID, historyLimit)
	if err != nil {
		b.log.WithError(err).WithField("chat_id", chatID).Error("load history")
		b.sendMessage(chatID, msgInternalError)
		return
	}
	b.sendMessage(chatID, formatHistory(records))
}

func (b *Bot) setMenu(ctx context.Context, userID, chatID int64) {
	if _, err := b.users.Cancel(ctx, userID, chatID); err != nil {
		b.log.WithError(err).Error("reset user state")
	}
}

// downloadFile скачивает файл из Telegram
func (b *Bot) downloadFile(ctx context.Context, fileID string) ([]byte, error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, file.Link(b.api.Token), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := b.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download file: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return data, nil
}

// sendMessage отправляет текстовое сообщение
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.log.WithError(err).WithField("chat_id", chatID).Error("send message")
	}
}
