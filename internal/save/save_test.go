// internal/save/save_test.go
package save

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFileStore(t *testing.T) (*SqliteStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profiles.db")
	store, err := NewSqliteStore(path, zerolog.Nop())
	require.NoError(t, err)
	return store, path
}

func TestSqliteStoreFirstLoadCreatesProfile(t *testing.T) {
	store, _ := newFileStore(t)
	defer store.Close()

	profile, err := store.Load("p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", profile.ProfileID)
	assert.EqualValues(t, 0, profile.Coins)
	assert.Equal(t, 0, profile.Gems)
	assert.NotZero(t, profile.ID, "профиль должен быть записан в базу")

	again, err := store.Load("p1")
	require.NoError(t, err)
	assert.Equal(t, profile.ID, again.ID, "повторная загрузка не плодит записи")
}

func TestSqliteStoreGeneratesProfileID(t *testing.T) {
	store, _ := newFileStore(t)
	defer store.Close()

	profile, err := store.Load("")
	require.NoError(t, err)
	_, parseErr := uuid.Parse(profile.ProfileID)
	assert.NoError(t, parseErr, "пустой ID заменяется на UUID")
}

func TestSqliteStoreLoadDefault(t *testing.T) {
	store, path := newFileStore(t)

	first, err := store.LoadDefault()
	require.NoError(t, err)
	_, parseErr := uuid.Parse(first.ProfileID)
	require.NoError(t, parseErr)

	first.Coins = 250
	require.NoError(t, store.Save(first))
	require.NoError(t, store.Close())

	// Повторное открытие находит тот же профиль, а не плодит новые
	store, err = NewSqliteStore(path, zerolog.Nop())
	require.NoError(t, err)
	defer store.Close()

	again, err := store.LoadDefault()
	require.NoError(t, err)
	assert.Equal(t, first.ProfileID, again.ProfileID)
	assert.EqualValues(t, 250, again.Coins)
}

func TestSqliteStoreRoundTrip(t *testing.T) {
	store, path := newFileStore(t)

	profile, err := store.Load("p1")
	require.NoError(t, err)
	profile.Coins = 500
	profile.Gems = 7
	profile.RecordScore(1234)
	require.NoError(t, profile.RecordStars(2, 3))
	_, err = profile.AddCounter("kills", 42)
	require.NoError(t, err)
	unlocked, err := profile.UnlockAchievement("FIRST_BLOOD")
	require.NoError(t, err)
	require.True(t, unlocked)
	require.NoError(t, profile.AddItem("FREEZE_CHARGE", 2))
	require.NoError(t, profile.SetDailyStatus(DailyState{LastClaimDay: "2026-08-25", NextIndex: 3}))
	require.NoError(t, profile.SetQuestState("Q_KILLS", QuestState{Day: "2026-08-25", Progress: 5, Done: false}))
	require.NoError(t, store.Save(profile))
	require.NoError(t, store.Close())

	reopened, err := NewSqliteStore(path, zerolog.Nop())
	require.NoError(t, err)
	defer reopened.Close()

	loaded, err := reopened.Load("p1")
	require.NoError(t, err)
	assert.EqualValues(t, 500, loaded.Coins)
	assert.Equal(t, 7, loaded.Gems)
	assert.Equal(t, 1234, loaded.BestScore)
	assert.Equal(t, 2, loaded.HighestLevel)

	stars, err := loaded.StarsByLevel()
	require.NoError(t, err)
	assert.Equal(t, 3, stars[2])
	assert.EqualValues(t, 42, loaded.Counter("kills"))
	assert.True(t, loaded.HasAchievement("FIRST_BLOOD"))
	assert.Equal(t, 2, loaded.ItemCount("FREEZE_CHARGE"))

	daily, err := loaded.DailyStatus()
	require.NoError(t, err)
	assert.Equal(t, DailyState{LastClaimDay: "2026-08-25", NextIndex: 3}, daily)

	quests, err := loaded.QuestStates()
	require.NoError(t, err)
	assert.Equal(t, QuestState{Day: "2026-08-25", Progress: 5, Done: false}, quests["Q_KILLS"])
}

func TestSqliteStoreInMemory(t *testing.T) {
	store, err := NewSqliteStore("", zerolog.Nop())
	require.NoError(t, err)
	defer store.Close()

	profile, err := store.Load("mem")
	require.NoError(t, err)
	profile.Coins = 99
	require.NoError(t, store.Save(profile))

	loaded, err := store.Load("mem")
	require.NoError(t, err)
	assert.EqualValues(t, 99, loaded.Coins)
}

func TestMemoryStoreCopiesProfiles(t *testing.T) {
	store := NewMemoryStore()

	profile, err := store.Load("p1")
	require.NoError(t, err)
	profile.Coins = 100

	// Без Save мутация не видна следующей загрузке.
	reloaded, err := store.Load("p1")
	require.NoError(t, err)
	assert.EqualValues(t, 0, reloaded.Coins)

	require.NoError(t, store.Save(profile))
	saved, err := store.Load("p1")
	require.NoError(t, err)
	assert.EqualValues(t, 100, saved.Coins)
}

func TestMemoryStoreLoadDefault(t *testing.T) {
	store := NewMemoryStore()

	created, err := store.LoadDefault()
	require.NoError(t, err)

	again, err := store.LoadDefault()
	require.NoError(t, err)
	assert.Equal(t, created.ProfileID, again.ProfileID)
}

func TestProfileRecordStarsKeepsBest(t *testing.T) {
	profile := NewProfile("p1")
	require.NoError(t, profile.RecordStars(1, 3))
	require.NoError(t, profile.RecordStars(1, 2))
	require.NoError(t, profile.RecordStars(4, 1))

	stars, err := profile.StarsByLevel()
	require.NoError(t, err)
	assert.Equal(t, 3, stars[1])
	assert.Equal(t, 1, stars[4])
	assert.Equal(t, 4, profile.HighestLevel)
}

func TestProfileCounters(t *testing.T) {
	profile := NewProfile("p1")

	v, err := profile.AddCounter("kills", 3)
	require.NoError(t, err)
	assert.EqualValues(t, 3, v)
	v, err = profile.AddCounter("kills", 2)
	require.NoError(t, err)
	assert.EqualValues(t, 5, v)
	assert.EqualValues(t, 5, profile.Counter("kills"))

	v, err = profile.SetCounterMax("max_tier", 4)
	require.NoError(t, err)
	assert.EqualValues(t, 4, v)
	v, err = profile.SetCounterMax("max_tier", 2)
	require.NoError(t, err)
	assert.EqualValues(t, 4, v, "меньшее значение не затирает рекорд")
}

func TestProfileAchievements(t *testing.T) {
	profile := NewProfile("p1")

	unlocked, err := profile.UnlockAchievement("FIRST_BLOOD")
	require.NoError(t, err)
	assert.True(t, unlocked)

	unlocked, err = profile.UnlockAchievement("FIRST_BLOOD")
	require.NoError(t, err)
	assert.False(t, unlocked, "повторное открытие не считается")
	assert.True(t, profile.HasAchievement("FIRST_BLOOD"))
	assert.False(t, profile.HasAchievement("GODLIKE"))
}

func TestProfileItems(t *testing.T) {
	profile := NewProfile("p1")

	require.NoError(t, profile.AddItem("FREEZE_CHARGE", 2))
	assert.Equal(t, 2, profile.ItemCount("FREEZE_CHARGE"))

	require.NoError(t, profile.AddItem("FREEZE_CHARGE", -1))
	assert.Equal(t, 1, profile.ItemCount("FREEZE_CHARGE"))

	require.NoError(t, profile.AddItem("FREEZE_CHARGE", -1))
	assert.Equal(t, 0, profile.ItemCount("FREEZE_CHARGE"))
}

func TestProfileSettingsDefaults(t *testing.T) {
	profile := NewProfile("p1")

	settings, err := profile.ClientSettings()
	require.NoError(t, err)
	assert.True(t, settings.SoundOn)
	assert.True(t, settings.MusicOn)

	settings.MusicOn = false
	require.NoError(t, profile.SetClientSettings(settings))
	settings, err = profile.ClientSettings()
	require.NoError(t, err)
	assert.True(t, settings.SoundOn)
	assert.False(t, settings.MusicOn)
}

func TestProfileDailyDefaults(t *testing.T) {
	profile := NewProfile("p1")

	daily, err := profile.DailyStatus()
	require.NoError(t, err)
	assert.Equal(t, DailyState{}, daily)
}
