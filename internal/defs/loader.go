// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadDefenderDefinitions reads the defender configuration file and replaces
// the DefenderTiers library. The file holds an array of definitions.
func LoadDefenderDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read defender definitions file: %w", err)
	}

	var defenderDefs []DefenderDefinition
	if err := json.Unmarshal(file, &defenderDefs); err != nil {
		return fmt.Errorf("failed to unmarshal defender definitions: %w", err)
	}

	DefenderTiers = make(map[int]DefenderDefinition)
	for _, def := range defenderDefs {
		DefenderTiers[def.Tier] = def
	}

	return nil
}

// LoadEnemyDefinitions reads the enemy configuration file and replaces the
// EnemyClasses library.
func LoadEnemyDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(file, &enemyDefs); err != nil {
		return fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	EnemyClasses = make(map[EnemyClass]EnemyDefinition)
	for _, def := range enemyDefs {
		EnemyClasses[def.Class] = def
	}

	return nil
}

// LoadLevelDefinitions reads the level configuration file and replaces the
// LevelLibrary.
func LoadLevelDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read level definitions file: %w", err)
	}

	var levelDefs []LevelDefinition
	if err := json.Unmarshal(file, &levelDefs); err != nil {
		return fmt.Errorf("failed to unmarshal level definitions: %w", err)
	}

	LevelLibrary = make(map[int]LevelDefinition)
	for _, def := range levelDefs {
		LevelLibrary[def.Level] = def
	}

	return nil
}
