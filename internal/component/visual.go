// internal/component/visual.go
package component

import "image/color"

// DamageFlash указывает, что сущность должна быть отрисована цветом урона.
type DamageFlash struct {
	Timer    float64 // Сколько времени эффект уже активен
	Duration float64 // Общая продолжительность эффекта
}

// FloatingText — всплывающий текст (награда, крит, сообщение серии).
// Поднимается вверх и гаснет по истечении Duration.
type FloatingText struct {
	Value     string
	Color     color.RGBA
	Timer     float64 // Сколько времени текст уже живёт
	Duration  float64 // Общая продолжительность
	RiseSpeed float64 // Скорость подъёма, пикселей в секунду
}

// Shockwave — расходящееся кольцо от ультимативного удара. Радиус
// растёт от нуля до MaxRadius за Duration, кольцо по пути гаснет.
type Shockwave struct {
	MaxRadius float64
	Timer     float64 // Сколько времени кольцо уже расходится
	Duration  float64 // Время жизни кольца
}
