// component/movement.go
package component

// Position — компонент позиции
type Position struct {
	X, Y float64
}

// Velocity — компонент скорости
type Velocity struct {
	Speed float64
}

// PathProgress — пройденная дистанция вдоль дорожки врагов
type PathProgress struct {
	Dist float64
}
