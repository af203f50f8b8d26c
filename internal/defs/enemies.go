// internal/defs/enemies.go
package defs

import "image/color"

// EnemyDefinition holds all the static data for a specific class of enemy.
// Health is the base value for wave 1; the spawner scales it per wave.
type EnemyDefinition struct {
	Class      EnemyClass `json:"class"`
	Name       string     `json:"name"`
	Health     int        `json:"health"`
	Speed      float64    `json:"speed"`
	Reward     int        `json:"reward"`
	ScoreValue int        `json:"score_value"`
	GemBonus   int        `json:"gem_bonus"`
	Visuals    Visuals    `json:"visuals"`
}

// EnemyClasses is the library of all enemy definitions, keyed by class.
var EnemyClasses = map[EnemyClass]EnemyDefinition{
	ClassBasic: {Class: ClassBasic, Name: "Grunt", Health: 30, Speed: 70, Reward: 5, ScoreValue: 10,
		Visuals: Visuals{Color: color.RGBA{200, 200, 210, 255}, RadiusFactor: 0.22}},
	ClassFast: {Class: ClassFast, Name: "Runner", Health: 18, Speed: 120, Reward: 6, ScoreValue: 12,
		Visuals: Visuals{Color: color.RGBA{110, 220, 190, 255}, RadiusFactor: 0.18}},
	ClassTank: {Class: ClassTank, Name: "Brute", Health: 80, Speed: 45, Reward: 10, ScoreValue: 20,
		Visuals: Visuals{Color: color.RGBA{150, 120, 90, 255}, RadiusFactor: 0.30}},
	ClassElite: {Class: ClassElite, Name: "Warlord", Health: 140, Speed: 60, Reward: 25, ScoreValue: 50, GemBonus: 1,
		Visuals: Visuals{Color: color.RGBA{230, 180, 40, 255}, RadiusFactor: 0.28, StrokeWidth: 2}},
	ClassBoss: {Class: ClassBoss, Name: "Colossus", Health: 600, Speed: 38, Reward: 100, ScoreValue: 250, GemBonus: 5,
		Visuals: Visuals{Color: color.RGBA{200, 40, 60, 255}, RadiusFactor: 0.46, StrokeWidth: 3}},
}
