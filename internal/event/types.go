// internal/event/types.go
package event

import (
	"merge-defense/internal/defs"
	"merge-defense/internal/types"
	"merge-defense/pkg/grid"
)

const (
	EnemySpawned EventType = "EnemySpawned" // Враг вышел на дорожку
	EnemyKilled  EventType = "EnemyKilled"  // Враг убит (здоровье <= 0)
	EnemyLeaked  EventType = "EnemyLeaked"  // Враг дошёл до конца дорожки
	EnemyRemoved EventType = "EnemyRemoved" // Сущность врага удалена из ECS (после убийства или утечки)

	DefenderPlaced EventType = "DefenderPlaced" // Защитник поставлен на клетку
	DefenderMerged EventType = "DefenderMerged" // Два защитника слиты в тир выше

	WaveStarted    EventType = "WaveStarted"
	WaveCompleted  EventType = "WaveCompleted" // Все заспавнены и все убраны с поля
	LevelCompleted EventType = "LevelCompleted"
	GameOver       EventType = "GameOver"

	FeverStarted  EventType = "FeverStarted"
	FeverEnded    EventType = "FeverEnded"
	UltimateReady EventType = "UltimateReady"
	UltimateUsed  EventType = "UltimateUsed"

	PowerUpActivated EventType = "PowerUpActivated"
	PowerUpExpired   EventType = "PowerUpExpired"
	StreakMessage    EventType = "StreakMessage" // Серия убийств пересекла порог

	AchievementUnlocked EventType = "AchievementUnlocked"
	QuestCompleted      EventType = "QuestCompleted"
	DailyRewardClaimed  EventType = "DailyRewardClaimed"
	GachaPulled         EventType = "GachaPulled"
)

// EnemySpawnedPayload — данные события EnemySpawned.
type EnemySpawnedPayload struct {
	ID    types.EntityID
	Class defs.EnemyClass
	Wave  int
}

// EnemyKilledPayload — данные события EnemyKilled. Позиция нужна
// подписчикам презентации (всплывающий текст на месте смерти).
type EnemyKilledPayload struct {
	ID         types.EntityID
	Class      defs.EnemyClass
	Reward     int
	ScoreValue int
	GemBonus   int
	X, Y       float64
}

// EnemyLeakedPayload — данные события EnemyLeaked.
type EnemyLeakedPayload struct {
	ID        types.EntityID
	LivesLeft int
}

// DefenderPlacedPayload — данные события DefenderPlaced.
type DefenderPlacedPayload struct {
	ID   types.EntityID
	Cell grid.Cell
	Tier int
}

// DefenderMergedPayload — данные события DefenderMerged. Kept — сущность,
// получившая тир выше (вторая выбранная), Removed удалена.
type DefenderMergedPayload struct {
	Kept    types.EntityID
	Removed types.EntityID
	NewTier int
}

// WavePayload — данные событий WaveStarted / WaveCompleted.
type WavePayload struct {
	Number int
}

// LevelCompletedPayload — данные события LevelCompleted.
type LevelCompletedPayload struct {
	Level int
	Stars int
	Score int
}

// GameOverPayload — данные события GameOver.
type GameOverPayload struct {
	Level int
	Wave  int
	Score int
}

// StreakMessagePayload — данные события StreakMessage.
type StreakMessagePayload struct {
	Count int
	Label string
}

// PowerUpPayload — данные событий PowerUpActivated / PowerUpExpired.
type PowerUpPayload struct {
	ID string
}

// GachaPulledPayload — данные события GachaPulled.
type GachaPulledPayload struct {
	ItemID string
}

// MetaPayload — данные событий достижений, заданий и ежедневных наград.
type MetaPayload struct {
	ID          string
	RewardCoins int64
	RewardGems  int
}
