// pkg/render/color.go
package render

import "image/color"

// BoardColors — цвета статичного задника: фон, клетки поля и дорожка.
type BoardColors struct {
	Background  color.RGBA
	Cell        color.RGBA
	CellLine    color.RGBA
	Lane        color.RGBA
	LaneEdge    color.RGBA
	StrokeWidth float32
}

// DarkenColor приглушает цвет наполовину (недоступные кнопки, пауза).
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LightenColor поднимает каналы на add с насыщением.
func LightenColor(c color.RGBA, add int) color.RGBA {
	return color.RGBA{
		R: uint8(min(255, int(c.R)+add)),
		G: uint8(min(255, int(c.G)+add)),
		B: uint8(min(255, int(c.B)+add)),
		A: c.A,
	}
}

// FadeColor умножает все каналы на k в [0, 1]. Каналы цвета
// премультиплицированы, поэтому альфу недостаточно трогать отдельно.
func FadeColor(c color.RGBA, k float64) color.RGBA {
	if k < 0 {
		k = 0
	}
	if k > 1 {
		k = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: uint8(float64(c.A) * k),
	}
}

// BlendColors линейно смешивает a и b по t (0 — чистый a, 1 — чистый b).
func BlendColors(a, b color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{
		R: lerp(a.R, b.R),
		G: lerp(a.G, b.G),
		B: lerp(a.B, b.B),
		A: lerp(a.A, b.A),
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
