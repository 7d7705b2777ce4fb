package vision

import (
	"image"
	"image/color"
	"image/draw"
	"sort"
)

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.RGBA{A: 255}
)

func newCanvas(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: white}, image.Point{}, draw.Src)
	return img
}

func fillRect(img draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(img, r, &image.Uniform{C: c}, image.Point{}, draw.Src)
}

func sortRects(rs []image.Rectangle) {
	sort.Slice(rs, func(i, j int) bool {
		if rs[i].Min.Y != rs[j].Min.Y {
			return rs[i].Min.Y < rs[j].Min.Y
		}
		return rs[i].Min.X < rs[j].Min.X
	})
}

func toRGBA(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}
