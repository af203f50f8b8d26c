// internal/defs/achievements.go
package defs

// Ключи пожизненных счётчиков профиля. Ими оперируют и достижения,
// и трекер статистики.
const (
	CounterKills         = "kills"
	CounterBossKills     = "boss_kills"
	CounterMerges        = "merges"
	CounterMaxTier       = "max_tier"
	CounterWavesCleared  = "waves_cleared"
	CounterLevelsCleared = "levels_cleared"
	CounterUltimates     = "ultimates"
)

// AchievementDefinition describes a one-time lifetime achievement.
type AchievementDefinition struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Counter     string `json:"counter"`
	Threshold   int64  `json:"threshold"`
	RewardCoins int64  `json:"reward_coins"`
	RewardGems  int    `json:"reward_gems"`
}

// AchievementLibrary is the achievement set, keyed by ID.
var AchievementLibrary = map[string]AchievementDefinition{
	"ACH_FIRST_BLOOD": {ID: "ACH_FIRST_BLOOD", Name: "First Blood", Counter: CounterKills, Threshold: 1, RewardCoins: 50},
	"ACH_KILLS_1000":  {ID: "ACH_KILLS_1000", Name: "Thousand Cuts", Counter: CounterKills, Threshold: 1000, RewardCoins: 500, RewardGems: 5},
	"ACH_BOSS_10":     {ID: "ACH_BOSS_10", Name: "Giant Slayer", Counter: CounterBossKills, Threshold: 10, RewardGems: 10},
	"ACH_MERGE_100":   {ID: "ACH_MERGE_100", Name: "Master Smith", Counter: CounterMerges, Threshold: 100, RewardCoins: 300},
	"ACH_TIER_5":      {ID: "ACH_TIER_5", Name: "Champion Maker", Counter: CounterMaxTier, Threshold: 5, RewardGems: 5},
	"ACH_WAVES_100":   {ID: "ACH_WAVES_100", Name: "Unbroken Line", Counter: CounterWavesCleared, Threshold: 100, RewardCoins: 400},
	"ACH_LEVELS_3":    {ID: "ACH_LEVELS_3", Name: "Conqueror", Counter: CounterLevelsCleared, Threshold: 3, RewardGems: 15},
}
