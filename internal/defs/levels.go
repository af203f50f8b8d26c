// internal/defs/levels.go
package defs

import "merge-defense/pkg/grid"

// LevelDefinition описывает уровень: количество волн, стартовые ресурсы
// и дорожку врагов в мировых координатах.
type LevelDefinition struct {
	Level         int          `json:"level"`
	Name          string       `json:"name"`
	Waves         int          `json:"waves"`
	Lives         int          `json:"lives"`
	StartingCoins int64        `json:"starting_coins"`
	Waypoints     []grid.Point `json:"waypoints"`
}

// LevelLibrary — таблица уровней. Дорожки идут по верхней части экрана,
// поле защитников стоит ниже.
var LevelLibrary = map[int]LevelDefinition{
	1: {
		Level: 1, Name: "Outskirts", Waves: 10, Lives: 20, StartingCoins: 100,
		Waypoints: []grid.Point{
			{X: -40, Y: 140}, {X: 900, Y: 140}, {X: 900, Y: 300},
			{X: 300, Y: 300}, {X: 300, Y: 460}, {X: 1240, Y: 460},
		},
	},
	2: {
		Level: 2, Name: "Riverbend", Waves: 15, Lives: 18, StartingCoins: 120,
		Waypoints: []grid.Point{
			{X: -40, Y: 100}, {X: 1000, Y: 100}, {X: 1000, Y: 260},
			{X: 200, Y: 260}, {X: 200, Y: 420}, {X: 1000, Y: 420},
			{X: 1000, Y: 520}, {X: 1240, Y: 520},
		},
	},
	3: {
		Level: 3, Name: "Citadel", Waves: 20, Lives: 15, StartingCoins: 150,
		Waypoints: []grid.Point{
			{X: 600, Y: -40}, {X: 600, Y: 180}, {X: 150, Y: 180},
			{X: 150, Y: 360}, {X: 1050, Y: 360}, {X: 1050, Y: 500},
			{X: 90, Y: 500}, {X: 90, Y: 940},
		},
	},
}

// Stars — число звёзд за пройденный уровень по остатку жизней:
// три звезды от двух третей, две от одной трети, иначе одна.
func Stars(livesLeft, livesStart int) int {
	if livesStart <= 0 || livesLeft <= 0 {
		return 0
	}
	switch {
	case livesLeft*3 >= livesStart*2:
		return 3
	case livesLeft*3 >= livesStart:
		return 2
	default:
		return 1
	}
}
