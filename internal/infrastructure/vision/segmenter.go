package vision

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"vision-report/internal/domain/entity"
	"vision-report/internal/domain/port"
)

// ContourSegmenter режет изображение по внешним контурам карты границ.
// Вложенные и пересекающиеся рамки не объединяются.
type ContourSegmenter struct {
	Params EdgeParams
}

// NewContourSegmenter создаёт сегментатор с параметрами по умолчанию.
func NewContourSegmenter() *ContourSegmenter {
	return &ContourSegmenter{Params: DefaultEdgeParams()}
}

// Segment возвращает по одному сегменту на каждый внешний контур.
func (s *ContourSegmenter) Segment(img image.Image) ([]entity.Segment, error) {
	edges, err := ExtractEdges(img, s.Params)
	if err != nil {
		return nil, err
	}

	rects, err := FindExternalBoxes(edges)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	segments := make([]entity.Segment, 0, len(rects))
	for _, r := range rects {
		box := entity.BoxFromRect(r)
		if err := box.Validate(bounds.Dx(), bounds.Dy()); err != nil {
			return nil, fmt.Errorf("contour %d: %w", len(segments), err)
		}
		// imaging.Crop всегда копирует пиксели в новый *image.NRGBA.
		segments = append(segments, entity.Segment{
			Box:   box,
			Image: imaging.Crop(img, box.Rect().Add(bounds.Min)),
		})
	}

	return segments, nil
}

// Проверка реализации интерфейса
var _ port.Segmenter = (*ContourSegmenter)(nil)
