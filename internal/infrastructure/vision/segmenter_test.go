package vision

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"

	"vision-report/internal/domain/entity"
)

// Допуск на положение границы после размытия и Canny.
const edgeTolerance = 3

func TestSegment_SingleShape(t *testing.T) {
	img := newCanvas(120, 100)
	shape := image.Rect(30, 20, 80, 70)
	fillRect(img, shape, black)

	segments, err := NewContourSegmenter().Segment(img)
	require.NoError(t, err)
	require.Len(t, segments, 1)

	box := segments[0].Box
	require.NoError(t, box.Validate(120, 100))
	require.InDelta(t, shape.Min.X, box.X, edgeTolerance)
	require.InDelta(t, shape.Min.Y, box.Y, edgeTolerance)
	require.InDelta(t, shape.Max.X, box.X+box.Width, edgeTolerance)
	require.InDelta(t, shape.Max.Y, box.Y+box.Height, edgeTolerance)

	require.Equal(t, box.Width, segments[0].Image.Bounds().Dx())
	require.Equal(t, box.Height, segments[0].Image.Bounds().Dy())
}

func TestSegment_BlankImageHasNoSegments(t *testing.T) {
	segments, err := NewContourSegmenter().Segment(newCanvas(64, 64))
	require.NoError(t, err)
	require.Empty(t, segments)
}

func TestSegment_NestedShapeIsNotReported(t *testing.T) {
	img := newCanvas(140, 140)
	fillRect(img, image.Rect(20, 20, 120, 120), black)
	fillRect(img, image.Rect(50, 50, 90, 90), white)

	segments, err := NewContourSegmenter().Segment(img)
	require.NoError(t, err)
	require.Len(t, segments, 1)
	require.InDelta(t, 20, segments[0].Box.X, edgeTolerance)
	require.InDelta(t, 100, segments[0].Box.Width, 2*edgeTolerance)
}

func TestSegment_SeparateShapes(t *testing.T) {
	img := newCanvas(160, 120)
	fillRect(img, image.Rect(10, 10, 50, 40), black)
	fillRect(img, image.Rect(90, 60, 140, 110), black)

	segments, err := NewContourSegmenter().Segment(img)
	require.NoError(t, err)
	require.Len(t, segments, 2)

	rects := []image.Rectangle{segments[0].Box.Rect(), segments[1].Box.Rect()}
	sortRects(rects)
	require.InDelta(t, 10, rects[0].Min.X, edgeTolerance)
	require.InDelta(t, 90, rects[1].Min.X, edgeTolerance)
}

func TestSegment_Deterministic(t *testing.T) {
	img := newCanvas(160, 120)
	fillRect(img, image.Rect(10, 10, 50, 40), black)
	fillRect(img, image.Rect(90, 60, 140, 110), black)
	fillRect(img, image.Rect(70, 15, 85, 30), black)

	s := NewContourSegmenter()
	first, err := s.Segment(img)
	require.NoError(t, err)
	second, err := s.Segment(img)
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		require.Equal(t, first[i].Box, second[i].Box)
	}
}

func TestSegment_CropIsIndependentCopy(t *testing.T) {
	img := newCanvas(100, 100)
	fillRect(img, image.Rect(20, 20, 60, 60), black)

	segments, err := NewContourSegmenter().Segment(img)
	require.NoError(t, err)
	require.Len(t, segments, 1)

	seg := segments[0]
	box := seg.Box
	before := seg.Image.At(box.Width/2, box.Height/2)
	require.Equal(t, img.At(box.X+box.Width/2, box.Y+box.Height/2), toRGBA(before))

	// Перекрашиваем исходник: сегмент не должен измениться.
	fillRect(img, img.Bounds(), white)
	require.Equal(t, before, seg.Image.At(box.Width/2, box.Height/2))
}

func TestSegment_ZeroSizeImage(t *testing.T) {
	_, err := NewContourSegmenter().Segment(image.NewRGBA(image.Rect(0, 0, 0, 0)))
	require.ErrorIs(t, err, entity.ErrInvalidImage)
}

func TestSegment_NonZeroOrigin(t *testing.T) {
	base := newCanvas(100, 100)
	fillRect(base, image.Rect(40, 40, 70, 70), black)
	sub := base.SubImage(image.Rect(20, 20, 100, 100))

	segments, err := NewContourSegmenter().Segment(sub)
	require.NoError(t, err)
	require.Len(t, segments, 1)
	require.InDelta(t, 20, segments[0].Box.X, edgeTolerance)
	require.InDelta(t, 20, segments[0].Box.Y, edgeTolerance)
}
