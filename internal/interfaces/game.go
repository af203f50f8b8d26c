// internal/interfaces/game.go
package interfaces

import "merge-defense/internal/component"

// GameView — читающий срез игрового фасада для виджетов и панелей.
// Экраны держат сам фасад, виджетам хватает этого среза.
type GameView interface {
	Phase() component.Phase
	Level() int
	LevelName() string
	LevelWaves() int
	CurrentWave() int
	WavesCleared() int
	IntermissionRemaining() float64
	Lives() int
	LevelLives() int
	Score() int
	ComboCount() int
	StreakCount() int
	FeverState() (float64, bool)
	UltimateState() (float64, bool)
	CoinBalance() int64
	GemBalance() int
	GetGameTime() float64
}
