// internal/component/projectile.go
package component

import (
	"image/color"

	"merge-defense/internal/types"
)

// Projectile представляет летящий снаряд. Снаряд самонаводящийся:
// каждый тик доворачивает на живую позицию цели.
type Projectile struct {
	TargetID types.EntityID
	Speed    float64
	Damage   int
	Crit     bool // Был ли выстрел критическим (для попапа урона)
	Color    color.RGBA
}
