// internal/save/model.go
package save

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Profile — персистентный профиль игрока. Валюты и рекорды лежат
// отдельными колонками, состояние меты — JSON-колонками.
type Profile struct {
	gorm.Model
	ProfileID    string `gorm:"size:36;uniqueIndex"`
	Coins        int64
	Gems         int
	HighestLevel int
	BestScore    int
	LevelStars   datatypes.JSON // map[string]int: уровень -> лучшие звёзды
	Counters     datatypes.JSON // map[string]int64: пожизненные счётчики
	Achievements datatypes.JSON // []string: ID открытых достижений
	Quests       datatypes.JSON // map[string]QuestState
	Daily        datatypes.JSON // DailyState
	Items        datatypes.JSON // map[string]int: инвентарь гачи
	Settings     datatypes.JSON // SettingsState
}

// QuestState — прогресс одного ежедневного задания. Done выставляется
// при достижении цели, Claimed — после выдачи награды.
type QuestState struct {
	Day      string `json:"day"` // YYYY-MM-DD, прогресс другого дня сбрасывается
	Progress int    `json:"progress"`
	Done     bool   `json:"done"`
	Claimed  bool   `json:"claimed"`
}

// DailyState — состояние цикла ежедневных наград.
type DailyState struct {
	LastClaimDay string `json:"last_claim_day"` // YYYY-MM-DD
	NextIndex    int    `json:"next_index"`     // Следующий слот семидневного цикла
}

// SettingsState — пользовательские настройки клиента.
type SettingsState struct {
	SoundOn bool `json:"sound_on"`
	MusicOn bool `json:"music_on"`
}

// NewProfile создаёт чистый профиль. Пустой profileID заменяется
// свежим UUID.
func NewProfile(profileID string) Profile {
	if profileID == "" {
		profileID = uuid.New().String()
	}
	return Profile{
		ProfileID:    profileID,
		LevelStars:   datatypes.JSON("{}"),
		Counters:     datatypes.JSON("{}"),
		Achievements: datatypes.JSON("[]"),
		Quests:       datatypes.JSON("{}"),
		Daily:        datatypes.JSON("{}"),
		Items:        datatypes.JSON("{}"),
		Settings:     datatypes.JSON(`{"sound_on":true,"music_on":true}`),
	}
}

func decodeColumn(column datatypes.JSON, out interface{}) error {
	if len(column) == 0 {
		return nil
	}
	if err := json.Unmarshal(column, out); err != nil {
		return fmt.Errorf("failed to decode profile column: %w", err)
	}
	return nil
}

func encodeColumn(v interface{}) (datatypes.JSON, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode profile column: %w", err)
	}
	return datatypes.JSON(raw), nil
}

// StarsByLevel возвращает лучшие звёзды по уровням.
func (p *Profile) StarsByLevel() (map[int]int, error) {
	raw := map[string]int{}
	if err := decodeColumn(p.LevelStars, &raw); err != nil {
		return nil, err
	}
	out := make(map[int]int, len(raw))
	for k, v := range raw {
		var level int
		if _, err := fmt.Sscanf(k, "%d", &level); err == nil {
			out[level] = v
		}
	}
	return out, nil
}

// RecordStars запоминает результат уровня, ухудшение игнорируется.
func (p *Profile) RecordStars(level, stars int) error {
	byLevel, err := p.StarsByLevel()
	if err != nil {
		return err
	}
	if stars <= byLevel[level] {
		return nil
	}
	byLevel[level] = stars

	raw := make(map[string]int, len(byLevel))
	for k, v := range byLevel {
		raw[fmt.Sprintf("%d", k)] = v
	}
	encoded, err := encodeColumn(raw)
	if err != nil {
		return err
	}
	p.LevelStars = encoded
	if level > p.HighestLevel {
		p.HighestLevel = level
	}
	return nil
}

// Counter возвращает значение пожизненного счётчика.
func (p *Profile) Counter(key string) int64 {
	counters := map[string]int64{}
	if err := decodeColumn(p.Counters, &counters); err != nil {
		return 0
	}
	return counters[key]
}

// AddCounter наращивает пожизненный счётчик и возвращает новое значение.
func (p *Profile) AddCounter(key string, delta int64) (int64, error) {
	counters := map[string]int64{}
	if err := decodeColumn(p.Counters, &counters); err != nil {
		return 0, err
	}
	counters[key] += delta
	encoded, err := encodeColumn(counters)
	if err != nil {
		return 0, err
	}
	p.Counters = encoded
	return counters[key], nil
}

// SetCounterMax поднимает счётчик до значения, если оно больше текущего.
func (p *Profile) SetCounterMax(key string, value int64) (int64, error) {
	counters := map[string]int64{}
	if err := decodeColumn(p.Counters, &counters); err != nil {
		return 0, err
	}
	if value > counters[key] {
		counters[key] = value
		encoded, err := encodeColumn(counters)
		if err != nil {
			return 0, err
		}
		p.Counters = encoded
	}
	return counters[key], nil
}

// HasAchievement проверяет, открыто ли достижение.
func (p *Profile) HasAchievement(id string) bool {
	var unlocked []string
	if err := decodeColumn(p.Achievements, &unlocked); err != nil {
		return false
	}
	for _, a := range unlocked {
		if a == id {
			return true
		}
	}
	return false
}

// UnlockAchievement добавляет достижение. Возвращает false, если оно
// уже было открыто.
func (p *Profile) UnlockAchievement(id string) (bool, error) {
	var unlocked []string
	if err := decodeColumn(p.Achievements, &unlocked); err != nil {
		return false, err
	}
	for _, a := range unlocked {
		if a == id {
			return false, nil
		}
	}
	unlocked = append(unlocked, id)
	encoded, err := encodeColumn(unlocked)
	if err != nil {
		return false, err
	}
	p.Achievements = encoded
	return true, nil
}

// QuestStates возвращает состояние заданий по ID.
func (p *Profile) QuestStates() (map[string]QuestState, error) {
	states := map[string]QuestState{}
	if err := decodeColumn(p.Quests, &states); err != nil {
		return nil, err
	}
	return states, nil
}

func (p *Profile) SetQuestState(id string, state QuestState) error {
	states, err := p.QuestStates()
	if err != nil {
		return err
	}
	states[id] = state
	encoded, err := encodeColumn(states)
	if err != nil {
		return err
	}
	p.Quests = encoded
	return nil
}

// DailyStatus возвращает состояние цикла ежедневных наград.
func (p *Profile) DailyStatus() (DailyState, error) {
	var state DailyState
	if err := decodeColumn(p.Daily, &state); err != nil {
		return DailyState{}, err
	}
	return state, nil
}

func (p *Profile) SetDailyStatus(state DailyState) error {
	encoded, err := encodeColumn(state)
	if err != nil {
		return err
	}
	p.Daily = encoded
	return nil
}

// ItemCount возвращает количество предмета в инвентаре.
func (p *Profile) ItemCount(id string) int {
	items := map[string]int{}
	if err := decodeColumn(p.Items, &items); err != nil {
		return 0
	}
	return items[id]
}

// AddItem кладёт предметы в инвентарь (delta может быть отрицательной
// при расходе заряда). Количество не уходит ниже нуля.
func (p *Profile) AddItem(id string, delta int) error {
	items := map[string]int{}
	if err := decodeColumn(p.Items, &items); err != nil {
		return err
	}
	items[id] += delta
	if items[id] <= 0 {
		delete(items, id)
	}
	encoded, err := encodeColumn(items)
	if err != nil {
		return err
	}
	p.Items = encoded
	return nil
}

// ClientSettings возвращает настройки клиента.
func (p *Profile) ClientSettings() (SettingsState, error) {
	state := SettingsState{SoundOn: true, MusicOn: true}
	if err := decodeColumn(p.Settings, &state); err != nil {
		return SettingsState{}, err
	}
	return state, nil
}

func (p *Profile) SetClientSettings(state SettingsState) error {
	encoded, err := encodeColumn(state)
	if err != nil {
		return err
	}
	p.Settings = encoded
	return nil
}

// RecordScore поднимает лучший счёт, если новый выше.
func (p *Profile) RecordScore(score int) {
	if score > p.BestScore {
		p.BestScore = score
	}
}
