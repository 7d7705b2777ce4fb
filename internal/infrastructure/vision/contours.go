//go:build !gocv
// +build !gocv

package vision

import "image"

// FindExternalBoxes возвращает рамки внешних контуров карты границ.
//
// Контур: 8-связная компонента ненулевых пикселей. Компоненты, лежащие
// внутри дыр других компонент, отбрасываются (аналог RETR_EXTERNAL).
// Порядок: по первому пикселю компоненты при построчном обходе.
func FindExternalBoxes(edges *image.Gray) ([]image.Rectangle, error) {
	b := edges.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil, nil
	}

	fg := make([]bool, w*h)
	for y := 0; y < h; y++ {
		row := edges.Pix[y*edges.Stride:]
		for x := 0; x < w; x++ {
			fg[y*w+x] = row[x] != 0
		}
	}

	outside := floodBackground(fg, w, h)

	visited := make([]bool, w*h)
	var boxes []image.Rectangle
	queue := make([]int, 0, 64)
	for start := range fg {
		if !fg[start] || visited[start] {
			continue
		}

		minX, minY := w, h
		maxX, maxY := -1, -1
		external := false

		visited[start] = true
		queue = append(queue[:0], start)
		for len(queue) > 0 {
			i := queue[0]
			queue = queue[1:]
			x, y := i%w, i/w

			minX, minY = min(minX, x), min(minY, y)
			maxX, maxY = max(maxX, x), max(maxY, y)

			if !external {
				external = x == 0 || y == 0 || x == w-1 || y == h-1 ||
					outside[i-1] || outside[i+1] || outside[i-w] || outside[i+w]
			}

			for ny := y - 1; ny <= y+1; ny++ {
				for nx := x - 1; nx <= x+1; nx++ {
					if nx < 0 || ny < 0 || nx >= w || ny >= h {
						continue
					}
					j := ny*w + nx
					if fg[j] && !visited[j] {
						visited[j] = true
						queue = append(queue, j)
					}
				}
			}
		}

		if external {
			boxes = append(boxes, image.Rect(minX, minY, maxX+1, maxY+1))
		}
	}

	return boxes, nil
}

// floodBackground помечает фон, 4-связно достижимый с края кадра.
func floodBackground(fg []bool, w, h int) []bool {
	outside := make([]bool, w*h)
	queue := make([]int, 0, 2*(w+h))
	mark := func(i int) {
		if !fg[i] && !outside[i] {
			outside[i] = true
			queue = append(queue, i)
		}
	}

	for x := 0; x < w; x++ {
		mark(x)
		mark((h-1)*w + x)
	}
	for y := 0; y < h; y++ {
		mark(y * w)
		mark(y*w + w - 1)
	}

	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		x, y := i%w, i/w
		if x > 0 {
			mark(i - 1)
		}
		if x < w-1 {
			mark(i + 1)
		}
		if y > 0 {
			mark(i - w)
		}
		if y < h-1 {
			mark(i + w)
		}
	}
	return outside
}
