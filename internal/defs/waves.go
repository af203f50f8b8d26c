// internal/defs/waves.go
package defs

// ClassWeight — вес класса врага при выборе очередного спавна.
type ClassWeight struct {
	Class  EnemyClass `json:"class"`
	Weight int        `json:"weight"`
}

// DefaultClassWeights — таблица выбора класса для обычных спавнов.
// Элитные враги и боссы катаются отдельно (шанс элиты растёт с волной,
// босс выходит последним в каждой пятой волне).
var DefaultClassWeights = []ClassWeight{
	{Class: ClassBasic, Weight: 6},
	{Class: ClassFast, Weight: 3},
	{Class: ClassTank, Weight: 2},
}
