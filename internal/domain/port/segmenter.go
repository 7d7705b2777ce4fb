package port

import (
	"image"

	"vision-report/internal/domain/entity"
)

// Segmenter интерфейс разбиения изображения на фрагменты
type Segmenter interface {
	// Segment возвращает фрагменты по внешним контурам в порядке обнаружения
	Segment(img image.Image) ([]entity.Segment, error)
}
