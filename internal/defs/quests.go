// internal/defs/quests.go
package defs

// QuestKind — вид цели ежедневного задания.
type QuestKind string

const (
	QuestKills     QuestKind = "KILLS"
	QuestMerges    QuestKind = "MERGES"
	QuestWaves     QuestKind = "WAVES"
	QuestUltimates QuestKind = "ULTIMATES"
)

// QuestDefinition describes one daily quest.
type QuestDefinition struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Kind        QuestKind `json:"kind"`
	Target      int       `json:"target"`
	RewardCoins int64     `json:"reward_coins"`
	RewardGems  int       `json:"reward_gems"`
}

// QuestLibrary is the daily quest set, keyed by ID.
var QuestLibrary = map[string]QuestDefinition{
	"Q_KILLS_50":    {ID: "Q_KILLS_50", Name: "Exterminator", Kind: QuestKills, Target: 50, RewardCoins: 100},
	"Q_MERGES_10":   {ID: "Q_MERGES_10", Name: "Combiner", Kind: QuestMerges, Target: 10, RewardCoins: 80, RewardGems: 1},
	"Q_WAVES_5":     {ID: "Q_WAVES_5", Name: "Defender", Kind: QuestWaves, Target: 5, RewardCoins: 120},
	"Q_ULTIMATES_2": {ID: "Q_ULTIMATES_2", Name: "Overcharged", Kind: QuestUltimates, Target: 2, RewardGems: 2},
}
