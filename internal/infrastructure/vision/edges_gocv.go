//go:build gocv
// +build gocv

package vision

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"vision-report/internal/domain/entity"
)

// ExtractEdges строит карту границ через OpenCV: серый -> GaussianBlur -> Canny.
func ExtractEdges(img image.Image, p EdgeParams) (*image.Gray, error) {
	if err := CheckImage(img); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	mat, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return nil, entity.NewInvalidImageError("failed to convert image", err)
	}
	defer mat.Close()

	if mat.Empty() {
		return nil, entity.NewInvalidImageError("empty image", nil)
	}

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(mat, &gray, gocv.ColorBGRToGray)

	blur := gocv.NewMat()
	defer blur.Close()
	gocv.GaussianBlur(gray, &blur, image.Pt(p.BlurKernel, p.BlurKernel), p.Sigma, p.Sigma, gocv.BorderDefault)

	edges := gocv.NewMat()
	defer edges.Close()
	gocv.Canny(blur, &edges, float32(p.CannyLow), float32(p.CannyHigh))

	out, err := edges.ToImage()
	if err != nil {
		return nil, fmt.Errorf("edge map to image: %w", err)
	}
	g, ok := out.(*image.Gray)
	if !ok {
		return nil, fmt.Errorf("unexpected edge map type %T", out)
	}
	return g, nil
}
