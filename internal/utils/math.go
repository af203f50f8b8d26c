// internal/utils/math.go
package utils

// Lerp выполняет линейную интерполяцию между a и b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp ограничивает значение v отрезком [min, max]
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
