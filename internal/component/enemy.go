package component

import "merge-defense/internal/defs"

// Enemy представляет вражескую сущность. Награды резолвятся из defs
// в момент спавна, чтобы убийство не зависело от горячей перезагрузки таблиц.
type Enemy struct {
	Class      defs.EnemyClass // Класс из таблицы врагов
	Reward     int             // Базовая награда монетами за убийство
	ScoreValue int             // Очки за убийство
	GemBonus   int             // Кристаллы за убийство (элитные и боссы)
	ReachedEnd bool            // Достиг ли враг конца дорожки
}
