//go:build !gocv
// +build !gocv

package vision

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/convolution"
	"github.com/disintegration/imaging"
)

// Ядра Гаусса, которые OpenCV использует при sigma <= 0 для малых размеров.
var smallGaussianTab = map[int][]float64{
	1: {1},
	3: {0.25, 0.5, 0.25},
	5: {0.0625, 0.25, 0.375, 0.25, 0.0625},
	7: {0.03125, 0.109375, 0.21875, 0.28125, 0.21875, 0.109375, 0.03125},
}

// ExtractEdges строит бинарную карту границ: серый -> размытие Гаусса -> Canny.
// Пиксели границ равны 255, остальные 0.
func ExtractEdges(img image.Image, p EdgeParams) (*image.Gray, error) {
	if err := CheckImage(img); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	gray := toGray(imaging.Grayscale(img))

	// Края как BORDER_REFLECT_101 в OpenCV, Bias 0.5 округляет результат.
	r := p.BlurKernel / 2
	blurred := convolution.Convolve(padReflect101(gray, r), gaussianKernel(p.BlurKernel, p.Sigma), &convolution.Options{
		Bias:      0.5,
		Wrap:      false,
		KeepAlpha: true,
	})

	w, h := gray.Bounds().Dx(), gray.Bounds().Dy()
	lum := make([]float64, w*h)
	for y := 0; y < h; y++ {
		row := blurred.Pix[(y+r)*blurred.Stride:]
		for x := 0; x < w; x++ {
			lum[y*w+x] = float64(row[(x+r)*4])
		}
	}

	return canny(lum, w, h, p.CannyLow, p.CannyHigh), nil
}

// toGray отбрасывает альфа-канал: яркость уже лежит в R.
func toGray(src *image.NRGBA) *image.Gray {
	b := src.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		row := src.Pix[y*src.Stride:]
		for x := 0; x < b.Dx(); x++ {
			dst.Pix[y*dst.Stride+x] = row[x*4]
		}
	}
	return dst
}

// padReflect101 расширяет кадр на r пикселей с каждой стороны зеркально,
// без повтора крайнего пикселя: ...|c b|a b c d|c b|...
func padReflect101(src *image.Gray, r int) *image.Gray {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	dst := image.NewGray(image.Rect(0, 0, w+2*r, h+2*r))
	for y := 0; y < h+2*r; y++ {
		sy := reflect101(y-r, h)
		for x := 0; x < w+2*r; x++ {
			dst.Pix[y*dst.Stride+x] = src.Pix[sy*src.Stride+reflect101(x-r, w)]
		}
	}
	return dst
}

func reflect101(i, n int) int {
	if n == 1 {
		return 0
	}
	for i < 0 || i >= n {
		if i < 0 {
			i = -i
		}
		if i >= n {
			i = 2*(n-1) - i
		}
	}
	return i
}

func gaussianKernel(size int, sigma float64) *convolution.Kernel {
	g := gaussianKernel1D(size, sigma)
	k := convolution.NewKernel(size, size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			k.Matrix[y*size+x] = g[y] * g[x]
		}
	}
	return k
}

func gaussianKernel1D(size int, sigma float64) []float64 {
	if sigma <= 0 {
		if tab, ok := smallGaussianTab[size]; ok {
			return append([]float64(nil), tab...)
		}
		sigma = 0.3*((float64(size)-1)*0.5-1) + 0.8
	}

	out := make([]float64, size)
	scale := -0.5 / (sigma * sigma)
	var sum float64
	for i := range out {
		x := float64(i - (size-1)/2)
		out[i] = math.Exp(scale * x * x)
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}
