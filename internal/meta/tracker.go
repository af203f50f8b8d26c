// internal/meta/tracker.go
package meta

import (
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"merge-defense/internal/defs"
	"merge-defense/internal/economy"
	"merge-defense/internal/event"
	"merge-defense/internal/save"
	"merge-defense/internal/utils"
)

const dayLayout = "2006-01-02"

// Tracker навешивает мета-прогресс на игровые события: пожизненные
// счётчики, достижения, ежедневные задания, рекорды. Он только мутирует
// профиль в памяти, запись в хранилище делает Flush.
type Tracker struct {
	profile         *save.Profile
	store           save.Store
	wallet          economy.Wallet
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	now             func() time.Time
	log             zerolog.Logger
}

// NewTracker создаёт трекер и подписывает его на игровые события.
func NewTracker(profile *save.Profile, store save.Store, wallet economy.Wallet, dispatcher *event.Dispatcher, rng *utils.PRNGService, log zerolog.Logger) *Tracker {
	t := &Tracker{
		profile:         profile,
		store:           store,
		wallet:          wallet,
		eventDispatcher: dispatcher,
		rng:             rng,
		now:             time.Now,
		log:             log,
	}
	dispatcher.Subscribe(event.EnemyKilled, t)
	dispatcher.Subscribe(event.DefenderMerged, t)
	dispatcher.Subscribe(event.WaveCompleted, t)
	dispatcher.Subscribe(event.LevelCompleted, t)
	dispatcher.Subscribe(event.UltimateUsed, t)
	dispatcher.Subscribe(event.GameOver, t)
	return t
}

// Profile возвращает отслеживаемый профиль.
func (t *Tracker) Profile() *save.Profile {
	return t.profile
}

// OnEvent реализует event.Listener.
func (t *Tracker) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		payload, ok := e.Data.(event.EnemyKilledPayload)
		if !ok {
			return
		}
		t.bumpCounter(defs.CounterKills, 1)
		if payload.Class == defs.ClassBoss {
			t.bumpCounter(defs.CounterBossKills, 1)
		}
		t.bumpQuests(defs.QuestKills, 1)

	case event.DefenderMerged:
		payload, ok := e.Data.(event.DefenderMergedPayload)
		if !ok {
			return
		}
		t.bumpCounter(defs.CounterMerges, 1)
		t.maxCounter(defs.CounterMaxTier, int64(payload.NewTier))
		t.bumpQuests(defs.QuestMerges, 1)

	case event.WaveCompleted:
		t.bumpCounter(defs.CounterWavesCleared, 1)
		t.bumpQuests(defs.QuestWaves, 1)

	case event.UltimateUsed:
		t.bumpCounter(defs.CounterUltimates, 1)
		t.bumpQuests(defs.QuestUltimates, 1)

	case event.LevelCompleted:
		payload, ok := e.Data.(event.LevelCompletedPayload)
		if !ok {
			return
		}
		t.bumpCounter(defs.CounterLevelsCleared, 1)
		if err := t.profile.RecordStars(payload.Level, payload.Stars); err != nil {
			t.log.Error().Err(err).Int("level", payload.Level).Msg("Failed to record level stars")
		}
		t.profile.RecordScore(payload.Score)

	case event.GameOver:
		payload, ok := e.Data.(event.GameOverPayload)
		if !ok {
			return
		}
		t.profile.RecordScore(payload.Score)
	}
}

func (t *Tracker) bumpCounter(key string, delta int64) {
	value, err := t.profile.AddCounter(key, delta)
	if err != nil {
		t.log.Error().Err(err).Str("counter", key).Msg("Failed to bump counter")
		return
	}
	t.checkAchievements(key, value)
}

func (t *Tracker) maxCounter(key string, value int64) {
	best, err := t.profile.SetCounterMax(key, value)
	if err != nil {
		t.log.Error().Err(err).Str("counter", key).Msg("Failed to raise counter")
		return
	}
	t.checkAchievements(key, best)
}

// checkAchievements открывает достижения по счётчику, до которых профиль
// дорос. Порядок по ID, чтобы пачка открытий была стабильной.
func (t *Tracker) checkAchievements(counter string, value int64) {
	ids := make([]string, 0, len(defs.AchievementLibrary))
	for id, def := range defs.AchievementLibrary {
		if def.Counter == counter && value >= def.Threshold {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	for _, id := range ids {
		unlocked, err := t.profile.UnlockAchievement(id)
		if err != nil {
			t.log.Error().Err(err).Str("achievementId", id).Msg("Failed to unlock achievement")
			continue
		}
		if !unlocked {
			continue
		}
		def := defs.AchievementLibrary[id]
		t.wallet.AddCoins(def.RewardCoins)
		t.wallet.AddGems(def.RewardGems)
		t.eventDispatcher.Emit(event.AchievementUnlocked, event.MetaPayload{
			ID:          id,
			RewardCoins: def.RewardCoins,
			RewardGems:  def.RewardGems,
		})
		t.log.Info().Str("achievementId", id).Str("name", def.Name).Msg("Achievement unlocked")
	}
}

func (t *Tracker) today() string {
	return t.now().Format(dayLayout)
}

// bumpQuests продвигает задания указанного вида. Прогресс чужого дня
// сбрасывается перед начислением.
func (t *Tracker) bumpQuests(kind defs.QuestKind, delta int) {
	ids := make([]string, 0, len(defs.QuestLibrary))
	for id, def := range defs.QuestLibrary {
		if def.Kind == kind {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	today := t.today()
	states, err := t.profile.QuestStates()
	if err != nil {
		t.log.Error().Err(err).Msg("Failed to read quest states")
		return
	}
	for _, id := range ids {
		def := defs.QuestLibrary[id]
		qs := states[id]
		if qs.Day != today {
			qs = save.QuestState{Day: today}
		}
		if qs.Done {
			continue
		}
		qs.Progress += delta
		if qs.Progress >= def.Target {
			qs.Progress = def.Target
			qs.Done = true
			t.eventDispatcher.Emit(event.QuestCompleted, event.MetaPayload{
				ID:          id,
				RewardCoins: def.RewardCoins,
				RewardGems:  def.RewardGems,
			})
			t.log.Info().Str("questId", id).Msg("Quest completed")
		}
		if err := t.profile.SetQuestState(id, qs); err != nil {
			t.log.Error().Err(err).Str("questId", id).Msg("Failed to store quest state")
		}
	}
}

// QuestBoard возвращает сегодняшнее состояние всех заданий для экрана
// меты. Прогресс чужого дня показывается нулевым.
func (t *Tracker) QuestBoard() map[string]save.QuestState {
	board := make(map[string]save.QuestState, len(defs.QuestLibrary))
	states, err := t.profile.QuestStates()
	if err != nil {
		t.log.Error().Err(err).Msg("Failed to read quest states")
		states = map[string]save.QuestState{}
	}
	today := t.today()
	for id := range defs.QuestLibrary {
		qs := states[id]
		if qs.Day != today {
			qs = save.QuestState{Day: today}
		}
		board[id] = qs
	}
	return board
}

// ClaimQuest выдаёт награду выполненного задания. Повторная выдача и
// выдача за невыполненное задание отклоняются.
func (t *Tracker) ClaimQuest(id string) (defs.QuestDefinition, bool) {
	def, ok := defs.QuestLibrary[id]
	if !ok {
		t.log.Warn().Str("questId", id).Msg("Unknown quest claim")
		return defs.QuestDefinition{}, false
	}
	states, err := t.profile.QuestStates()
	if err != nil {
		t.log.Error().Err(err).Msg("Failed to read quest states")
		return def, false
	}
	qs := states[id]
	if qs.Day != t.today() || !qs.Done || qs.Claimed {
		return def, false
	}
	qs.Claimed = true
	if err := t.profile.SetQuestState(id, qs); err != nil {
		t.log.Error().Err(err).Str("questId", id).Msg("Failed to store quest state")
		return def, false
	}
	t.wallet.AddCoins(def.RewardCoins)
	t.wallet.AddGems(def.RewardGems)
	t.log.Info().Str("questId", id).Int64("coins", def.RewardCoins).Int("gems", def.RewardGems).Msg("Quest reward claimed")
	return def, true
}

// CanClaimDaily сообщает, доступна ли сегодня ежедневная награда.
func (t *Tracker) CanClaimDaily() bool {
	state, err := t.profile.DailyStatus()
	if err != nil {
		return false
	}
	return state.LastClaimDay != t.today()
}

// ClaimDaily выдаёт награду текущего слота семидневного цикла. Второй
// вызов за день отклоняется, пропущенный день сбрасывает серию.
func (t *Tracker) ClaimDaily() (defs.DailyReward, bool) {
	state, err := t.profile.DailyStatus()
	if err != nil {
		t.log.Error().Err(err).Msg("Failed to read daily state")
		return defs.DailyReward{}, false
	}
	today := t.today()
	if state.LastClaimDay == today {
		return defs.DailyReward{}, false
	}
	idx := state.NextIndex
	yesterday := t.now().AddDate(0, 0, -1).Format(dayLayout)
	if state.LastClaimDay != yesterday {
		idx = 0
	}
	if idx < 0 || idx >= len(defs.DailyCycle) {
		idx = 0
	}
	reward := defs.DailyCycle[idx]
	next := save.DailyState{LastClaimDay: today, NextIndex: (idx + 1) % len(defs.DailyCycle)}
	if err := t.profile.SetDailyStatus(next); err != nil {
		t.log.Error().Err(err).Msg("Failed to store daily state")
		return defs.DailyReward{}, false
	}
	t.wallet.AddCoins(reward.Coins)
	t.wallet.AddGems(reward.Gems)
	t.eventDispatcher.Emit(event.DailyRewardClaimed, event.MetaPayload{
		ID:          fmt.Sprintf("DAY_%d", idx+1),
		RewardCoins: reward.Coins,
		RewardGems:  reward.Gems,
	})
	t.log.Info().Int("day", idx+1).Msg("Daily reward claimed")
	return reward, true
}

// PullGacha тратит кристаллы на одну крутку. Монеты и кристаллы
// зачисляются сразу, заряды и ваучеры уходят в инвентарь профиля.
func (t *Tracker) PullGacha() (defs.GachaItem, bool) {
	if !t.wallet.SpendGems(defs.GachaPullCost) {
		t.log.Debug().Int("cost", defs.GachaPullCost).Msg("Gacha pull rejected, not enough gems")
		return defs.GachaItem{}, false
	}
	itemID := t.rng.ChooseWeighted(defs.GachaTable)
	item, ok := defs.GachaItems[itemID]
	if !ok {
		// Таблица выпадения ссылается на неизвестный предмет.
		t.wallet.AddGems(defs.GachaPullCost)
		t.log.Error().Str("itemId", itemID).Msg("Gacha table references unknown item")
		return defs.GachaItem{}, false
	}
	switch item.Kind {
	case defs.GachaCoins:
		t.wallet.AddCoins(item.Coins)
	case defs.GachaGems:
		t.wallet.AddGems(item.Gems)
	default:
		if err := t.profile.AddItem(item.ID, 1); err != nil {
			t.log.Error().Err(err).Str("itemId", item.ID).Msg("Failed to store gacha item")
		}
	}
	t.eventDispatcher.Emit(event.GachaPulled, event.GachaPulledPayload{ItemID: item.ID})
	t.log.Info().Str("itemId", item.ID).Str("kind", string(item.Kind)).Msg("Gacha pulled")
	return item, true
}

// ConsumeItem списывает один предмет инвентаря (заряд силы или ваучер).
func (t *Tracker) ConsumeItem(id string) bool {
	if t.profile.ItemCount(id) <= 0 {
		return false
	}
	if err := t.profile.AddItem(id, -1); err != nil {
		t.log.Error().Err(err).Str("itemId", id).Msg("Failed to consume item")
		return false
	}
	return true
}

// Flush переносит баланс кошелька в профиль и пишет его в хранилище.
func (t *Tracker) Flush() error {
	t.profile.Coins = t.wallet.Coins()
	t.profile.Gems = t.wallet.Gems()
	if err := t.store.Save(t.profile); err != nil {
		return fmt.Errorf("failed to flush profile: %w", err)
	}
	return nil
}

// Autosave пишет профиль на диск, ошибка только логируется. Вызывается
// на переходах экранов, финальный Flush при выходе её повторит.
func (t *Tracker) Autosave() {
	if err := t.Flush(); err != nil {
		t.log.Error().Err(err).Msg("Autosave failed")
	}
}
