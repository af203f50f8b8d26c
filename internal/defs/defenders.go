// internal/defs/defenders.go
package defs

import "image/color"

// DefenderDefinition holds all the static data for one defender tier.
type DefenderDefinition struct {
	Tier     int     `json:"tier"`
	Name     string  `json:"name"`
	Damage   int     `json:"damage"`
	FireRate float64 `json:"fire_rate"` // Shots per second
	Range    float64 `json:"range"`     // World units
	Visuals  Visuals `json:"visuals"`
}

// DefenderTiers is the library of defender definitions, keyed by tier (1..5).
// Defaults below are overridden by LoadDefenderDefinitions when a data file
// is provided.
var DefenderTiers = map[int]DefenderDefinition{
	1: {Tier: 1, Name: "Scout", Damage: 8, FireRate: 1.0, Range: 230,
		Visuals: Visuals{Color: color.RGBA{120, 200, 120, 255}, RadiusFactor: 0.30, StrokeWidth: 2}},
	2: {Tier: 2, Name: "Gunner", Damage: 18, FireRate: 1.1, Range: 250,
		Visuals: Visuals{Color: color.RGBA{80, 160, 230, 255}, RadiusFactor: 0.33, StrokeWidth: 2}},
	3: {Tier: 3, Name: "Ranger", Damage: 40, FireRate: 1.2, Range: 270,
		Visuals: Visuals{Color: color.RGBA{180, 100, 230, 255}, RadiusFactor: 0.36, StrokeWidth: 2}},
	4: {Tier: 4, Name: "Sniper", Damage: 90, FireRate: 1.3, Range: 290,
		Visuals: Visuals{Color: color.RGBA{240, 160, 60, 255}, RadiusFactor: 0.39, StrokeWidth: 2}},
	5: {Tier: 5, Name: "Champion", Damage: 200, FireRate: 1.5, Range: 320,
		Visuals: Visuals{Color: color.RGBA{240, 70, 70, 255}, RadiusFactor: 0.42, StrokeWidth: 3}},
}
