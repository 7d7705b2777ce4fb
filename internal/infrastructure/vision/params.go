package vision

import (
	"errors"
	"fmt"
)

// EdgeParams параметры построения карты границ.
type EdgeParams struct {
	BlurKernel int     // сторона ядра Гаусса, нечётная
	Sigma      float64 // 0: вывести из размера ядра, как это делает OpenCV
	CannyLow   float64 // нижний порог гистерезиса
	CannyHigh  float64 // верхний порог гистерезиса
}

// DefaultEdgeParams возвращает параметры 5x5 / 50 / 150.
func DefaultEdgeParams() EdgeParams {
	return EdgeParams{
		BlurKernel: 5,
		Sigma:      0,
		CannyLow:   50,
		CannyHigh:  150,
	}
}

// Validate проверяет параметры перед запуском.
func (p EdgeParams) Validate() error {
	if p.BlurKernel <= 0 || p.BlurKernel%2 == 0 {
		return fmt.Errorf("blur kernel must be a positive odd number, got %d", p.BlurKernel)
	}
	if p.Sigma < 0 {
		return errors.New("blur sigma must not be negative")
	}
	if p.CannyLow < 0 || p.CannyHigh < p.CannyLow {
		return fmt.Errorf("invalid canny thresholds %.1f/%.1f", p.CannyLow, p.CannyHigh)
	}
	return nil
}
