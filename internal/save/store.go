// internal/save/store.go
package save

import (
	"errors"
	"fmt"
	"sort"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Store — хранилище профилей. Load всегда возвращает профиль: для
// нового ID создаётся чистая запись. LoadDefault отдаёт самый старый
// профиль базы, это путь одиночной игры без настроенного ID.
type Store interface {
	Load(profileID string) (*Profile, error)
	LoadDefault() (*Profile, error)
	Save(profile *Profile) error
	Close() error
}

// SqliteStore держит профили в локальной SQLite-базе.
type SqliteStore struct {
	db  *gorm.DB
	log zerolog.Logger
}

// NewSqliteStore открывает базу по пути. Пустой путь даёт базу в
// памяти, удобно для тестов и headless-прогонов.
func NewSqliteStore(path string, log zerolog.Logger) (*SqliteStore, error) {
	dsn := path
	if dsn == "" {
		dsn = "file::memory:?cache=shared"
	}
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
		CreateBatchSize:        2000,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}

	// Файл сохранений маленький, но терять его при падении нельзя,
	// поэтому WAL вместо агрессивных журнальных режимов.
	if err := db.Exec("PRAGMA journal_mode = WAL;").Error; err != nil {
		return nil, fmt.Errorf("error setting journal_mode PRAGMA: %w", err)
	}
	if err := db.Exec("PRAGMA synchronous = NORMAL;").Error; err != nil {
		return nil, fmt.Errorf("error setting synchronous PRAGMA: %w", err)
	}
	if err := db.AutoMigrate(&Profile{}); err != nil {
		return nil, fmt.Errorf("failed to migrate profiles: %w", err)
	}

	if path == "" {
		log.Info().Msg("Profile store using in-memory sqlite db")
	} else {
		log.Info().Str("path", path).Msg("Profile store opened")
	}
	return &SqliteStore{db: db, log: log}, nil
}

func (s *SqliteStore) Load(profileID string) (*Profile, error) {
	var profile Profile
	err := s.db.Where("profile_id = ?", profileID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = NewProfile(profileID)
		if err := s.db.Create(&profile).Error; err != nil {
			return nil, fmt.Errorf("failed to create profile %s: %w", profileID, err)
		}
		s.log.Info().Str("profileId", profile.ProfileID).Msg("Created new profile")
		return &profile, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profile %s: %w", profileID, err)
	}
	return &profile, nil
}

func (s *SqliteStore) LoadDefault() (*Profile, error) {
	var profile Profile
	err := s.db.Order("id").First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = NewProfile("")
		if err := s.db.Create(&profile).Error; err != nil {
			return nil, fmt.Errorf("failed to create default profile: %w", err)
		}
		s.log.Info().Str("profileId", profile.ProfileID).Msg("Created new profile")
		return &profile, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load default profile: %w", err)
	}
	return &profile, nil
}

func (s *SqliteStore) Save(profile *Profile) error {
	if err := s.db.Save(profile).Error; err != nil {
		return fmt.Errorf("failed to save profile %s: %w", profile.ProfileID, err)
	}
	return nil
}

func (s *SqliteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql db: %w", err)
	}
	return sqlDB.Close()
}

// MemoryStore — хранилище без базы для тестов игровой логики.
type MemoryStore struct {
	profiles map[string]Profile
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{profiles: make(map[string]Profile)}
}

func (s *MemoryStore) Load(profileID string) (*Profile, error) {
	if p, ok := s.profiles[profileID]; ok {
		copied := p
		return &copied, nil
	}
	profile := NewProfile(profileID)
	s.profiles[profile.ProfileID] = profile
	copied := profile
	return &copied, nil
}

func (s *MemoryStore) LoadDefault() (*Profile, error) {
	ids := make([]string, 0, len(s.profiles))
	for id := range s.profiles {
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return s.Load("")
	}
	sort.Strings(ids)
	return s.Load(ids[0])
}

func (s *MemoryStore) Save(profile *Profile) error {
	s.profiles[profile.ProfileID] = *profile
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
