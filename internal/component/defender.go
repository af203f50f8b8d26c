// component/defender.go
package component

import "merge-defense/pkg/grid"

// Defender — защитник на клетке поля.
type Defender struct {
	Tier int       // Тир 1..5
	Cell grid.Cell // Клетка, на которой стоит защитник
}
