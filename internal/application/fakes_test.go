package app

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"vision-report/internal/domain/entity"
)

type fakeOCR struct {
	text  string
	err   error
	calls int
	seen  []byte
}

func (f *fakeOCR) ExtractText(ctx context.Context, imageData []byte) (string, error) {
	f.calls++
	f.seen = imageData
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

type fakeSegmenter struct {
	segments []entity.Segment
	err      error
	calls    int
	seen     image.Image
}

func (f *fakeSegmenter) Segment(img image.Image) ([]entity.Segment, error) {
	f.calls++
	f.seen = img
	return f.segments, f.err
}

// writePNG сохраняет белый холст с чёрными прямоугольниками.
func writePNG(t *testing.T, w, h int, rects ...image.Rectangle) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	for _, r := range rects {
		draw.Draw(img, r, &image.Uniform{C: color.Black}, image.Point{}, draw.Src)
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	path := filepath.Join(t.TempDir(), "upload.png")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}
