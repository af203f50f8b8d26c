// internal/defs/powerups.go
package defs

// Идентификаторы усилений.
const (
	PowerUpFreeze      = "FREEZE"
	PowerUpDoubleCoins = "DOUBLE_COINS"
)

// PowerUpDefinition describes a purchasable timed power-up.
type PowerUpDefinition struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	GemCost  int     `json:"gem_cost"`
	Duration float64 `json:"duration"` // Seconds
}

// PowerUpLibrary is the library of power-up definitions, keyed by ID.
var PowerUpLibrary = map[string]PowerUpDefinition{
	PowerUpFreeze:      {ID: PowerUpFreeze, Name: "Flash Freeze", GemCost: 3, Duration: 5},
	PowerUpDoubleCoins: {ID: PowerUpDoubleCoins, Name: "Gold Rush", GemCost: 2, Duration: 20},
}
