package entity

import (
	"fmt"
	"image"
)

// BoundingBox: минимальный прямоугольник вокруг найденного контура
type BoundingBox struct {
	X      int // координата X левого верхнего угла
	Y      int // координата Y левого верхнего угла
	Width  int // ширина области в пикселях
	Height int // высота области в пикселях
}

// BoxFromRect строит BoundingBox из прямоугольника в координатах изображения.
func BoxFromRect(r image.Rectangle) BoundingBox {
	return BoundingBox{X: r.Min.X, Y: r.Min.Y, Width: r.Dx(), Height: r.Dy()}
}

// Rect возвращает прямоугольник в координатах изображения
func (b BoundingBox) Rect() image.Rectangle {
	return image.Rect(b.X, b.Y, b.X+b.Width, b.Y+b.Height)
}

// Validate проверяет, что прямоугольник непустой и целиком лежит в кадре width x height.
func (b BoundingBox) Validate(width, height int) error {
	if b.X < 0 || b.Y < 0 || b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("bounding box %v is degenerate", b)
	}
	if b.X+b.Width > width || b.Y+b.Height > height {
		return fmt.Errorf("bounding box %v is outside %dx%d image", b, width, height)
	}
	return nil
}

// Segment: вырезанный фрагмент исходного изображения.
// Image принадлежит сегменту и не разделяет пиксели с исходником.
type Segment struct {
	Box   BoundingBox
	Image image.Image
}
