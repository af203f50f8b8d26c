// internal/component/turret.go
package component

import "merge-defense/internal/types"

// Turret поворачивает ствол защитника к цели. Компонент чисто
// визуальный: снаряды самонаводящиеся и от угла ствола не зависят.
type Turret struct {
	// CurrentAngle - текущий угол ствола в радианах.
	CurrentAngle float64
	// TargetAngle - угол, к которому ствол стремится.
	TargetAngle float64
	// TurnSpeed - скорость поворота в радианах в секунду.
	TurnSpeed float64
	// TargetID - враг, которого ведёт ствол. Обнуляется, когда цель умирает.
	TargetID types.EntityID
}
