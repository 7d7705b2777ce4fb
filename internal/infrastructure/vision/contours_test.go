//go:build !gocv
// +build !gocv

package vision

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"
)

func setPixels(g *image.Gray, pts ...image.Point) {
	for _, p := range pts {
		g.Pix[g.PixOffset(p.X, p.Y)] = 255
	}
}

func drawOutline(g *image.Gray, r image.Rectangle) {
	for x := r.Min.X; x < r.Max.X; x++ {
		setPixels(g, image.Pt(x, r.Min.Y), image.Pt(x, r.Max.Y-1))
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		setPixels(g, image.Pt(r.Min.X, y), image.Pt(r.Max.X-1, y))
	}
}

func TestFindExternalBoxes_Empty(t *testing.T) {
	boxes, err := FindExternalBoxes(image.NewGray(image.Rect(0, 0, 20, 20)))
	require.NoError(t, err)
	require.Empty(t, boxes)
}

func TestFindExternalBoxes_SkipsHoleContents(t *testing.T) {
	g := image.NewGray(image.Rect(0, 0, 40, 40))
	drawOutline(g, image.Rect(10, 10, 31, 31))
	drawOutline(g, image.Rect(15, 15, 20, 20))
	setPixels(g, image.Pt(25, 25))

	boxes, err := FindExternalBoxes(g)
	require.NoError(t, err)
	require.Equal(t, []image.Rectangle{image.Rect(10, 10, 31, 31)}, boxes)
}

func TestFindExternalBoxes_RasterOrder(t *testing.T) {
	g := image.NewGray(image.Rect(0, 0, 50, 50))
	drawOutline(g, image.Rect(30, 5, 40, 15))
	drawOutline(g, image.Rect(2, 20, 12, 30))
	setPixels(g, image.Pt(45, 45))

	boxes, err := FindExternalBoxes(g)
	require.NoError(t, err)
	require.Equal(t, []image.Rectangle{
		image.Rect(30, 5, 40, 15),
		image.Rect(2, 20, 12, 30),
		image.Rect(45, 45, 46, 46),
	}, boxes)
}

func TestFindExternalBoxes_DiagonalIsConnected(t *testing.T) {
	g := image.NewGray(image.Rect(0, 0, 10, 10))
	setPixels(g, image.Pt(2, 2), image.Pt(3, 3), image.Pt(4, 4))

	boxes, err := FindExternalBoxes(g)
	require.NoError(t, err)
	require.Equal(t, []image.Rectangle{image.Rect(2, 2, 5, 5)}, boxes)
}

func TestFindExternalBoxes_OverlappingBoxesKept(t *testing.T) {
	// Г-образная линия и точка внутри её рамки, но не в дыре.
	g := image.NewGray(image.Rect(0, 0, 30, 30))
	for i := 5; i < 25; i++ {
		setPixels(g, image.Pt(5, i), image.Pt(i, 24))
	}
	setPixels(g, image.Pt(15, 10))

	boxes, err := FindExternalBoxes(g)
	require.NoError(t, err)
	require.Equal(t, []image.Rectangle{
		image.Rect(5, 5, 25, 25),
		image.Rect(15, 10, 16, 11),
	}, boxes)
}

func TestFindExternalBoxes_TouchesBorder(t *testing.T) {
	g := image.NewGray(image.Rect(0, 0, 10, 10))
	drawOutline(g, g.Bounds())

	boxes, err := FindExternalBoxes(g)
	require.NoError(t, err)
	require.Equal(t, []image.Rectangle{image.Rect(0, 0, 10, 10)}, boxes)
}
