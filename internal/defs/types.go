// internal/defs/types.go
package defs

import "image/color"

// EnemyClass defines the category of an enemy.
type EnemyClass string

const (
	ClassBasic EnemyClass = "BASIC"
	ClassFast  EnemyClass = "FAST"
	ClassTank  EnemyClass = "TANK"
	ClassElite EnemyClass = "ELITE"
	ClassBoss  EnemyClass = "BOSS"
)

// Visuals contains parameters for rendering an entity.
type Visuals struct {
	Color        color.RGBA `json:"color"`
	RadiusFactor float64    `json:"radius_factor"`
	StrokeWidth  float64    `json:"stroke_width"`
}
