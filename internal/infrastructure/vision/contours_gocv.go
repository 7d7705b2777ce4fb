//go:build gocv
// +build gocv

package vision

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// FindExternalBoxes возвращает рамки внешних контуров в порядке FindContours.
func FindExternalBoxes(edges *image.Gray) ([]image.Rectangle, error) {
	if edges.Bounds().Empty() {
		return nil, nil
	}

	mat, err := gocv.ImageGrayToMatGray(edges)
	if err != nil {
		return nil, fmt.Errorf("edge map to mat: %w", err)
	}
	defer mat.Close()

	contours := gocv.FindContours(mat, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()

	boxes := make([]image.Rectangle, 0, contours.Size())
	for i := 0; i < contours.Size(); i++ {
		rect := gocv.BoundingRect(contours.At(i))
		if rect.Dx() == 0 || rect.Dy() == 0 {
			continue
		}
		boxes = append(boxes, rect)
	}
	return boxes, nil
}
