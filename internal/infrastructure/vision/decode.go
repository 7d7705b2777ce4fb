package vision

import (
	"bytes"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"vision-report/internal/domain/entity"
)

var supportedExtensions = map[string]struct{}{
	"png":  {},
	"jpg":  {},
	"jpeg": {},
	"gif":  {},
}

// SupportedExtension проверяет расширение загружаемого файла.
func SupportedExtension(name string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	_, ok := supportedExtensions[ext]
	return ok
}

// DecodeImage превращает байты файла в image.Image.
func DecodeImage(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, entity.NewInvalidImageError("empty input", nil)
	}
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, entity.NewInvalidImageError("failed to decode image", err)
	}
	if err := CheckImage(img); err != nil {
		return nil, err
	}
	return img, nil
}

// CheckImage отсекает nil и изображения нулевого размера.
func CheckImage(img image.Image) error {
	if img == nil {
		return entity.NewInvalidImageError("nil image", nil)
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return entity.NewInvalidImageError(fmt.Sprintf("zero dimensions (%dx%d)", b.Dx(), b.Dy()), nil)
	}
	return nil
}
