// internal/config/config.go
package config

import (
	"image/color"
	"math"
)

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06

	BoardCols    = 7
	BoardRows    = 4
	CellSize     = 72.0
	BoardOffsetX = 348.0 // (ScreenWidth - BoardCols*CellSize) / 2
	BoardOffsetY = 560.0

	ClickCooldown = 300 // миллисекунды между кликами по одной кнопке

	MaxTier      = 5
	DefenderCost = 20 // Стоимость спавна защитника первого тира, монеты

	// Спавн волн. Интервал фиксирован внутри волны и сжимается с номером.
	InitialSpawnInterval = 1.2
	MinSpawnInterval     = 0.35
	SpawnIntervalStep    = 0.05
	EnemiesBase          = 3
	EnemiesPerWave       = 2
	BossWaveEvery        = 5
	InterWaveDelay       = 3.0

	EliteChanceBase    = 0.10
	EliteChancePerWave = 0.02
	EliteChanceMax     = 0.50

	HealthGrowthPerWave = 0.15 // Рост максимального здоровья врагов за волну

	CritChanceBase    = 0.10
	CritChancePerTier = 0.05
	CritMultiplier    = 2.0

	ProjectileSpeed     = 420.0 // pixels per second
	ProjectileRadius    = 5.0   // pixels
	ProjectileHitRadius = 12.0  // Порог засчитывания попадания, дистанция а не пересечение форм

	LeakDamage = 1 // Жизней за одного дошедшего врага, класс не важен

	ComboWindow   = 2.0 // Окно комбо: убийство позже сбрасывает счётчик
	ComboCoinStep = 0.01

	FeverMax      = 100.0
	FeverFillBase = 5.0 // Прирост шкалы за убийство: base + combo
	FeverDuration = 10.0
	FeverCoinMult = 2.0

	UltimateMax           = 100.0
	UltimateChargePerKill = 5.0
	UltimateDamage        = 9999 // Летальный для любого врага на любой волне

	StreakWindow = 3.0

	DoubleCoinsMult = 2.0

	DamageFlashDuration   = 0.15
	FloatingTextDuration  = 0.9
	FloatingTextRiseSpeed = 45.0

	TurretTurnSpeed = 9.0 // Радиан в секунду, ствол успевает за любым врагом

	ShockwaveDuration = 0.55
	ShockwaveRadius   = 780.0 // Накрывает дорожку из центра экрана

	IndicatorOffsetX = 30
	IndicatorRadius  = 10.0
	SpeedButtonY     = 30
	SpeedButtonSize  = 18.0
)

// EnemiesForWave — количество врагов в волне: 3 + 2*wave.
func EnemiesForWave(wave int) int {
	return EnemiesBase + EnemiesPerWave*wave
}

// SpawnIntervalForWave — интервал спавна волны, не меньше минимального.
func SpawnIntervalForWave(wave int) float64 {
	interval := InitialSpawnInterval - SpawnIntervalStep*float64(wave-1)
	return math.Max(MinSpawnInterval, interval)
}

// EliteChanceForWave — шанс элитного врага на каждый небоссовый спавн.
func EliteChanceForWave(wave int) float64 {
	chance := EliteChanceBase + EliteChancePerWave*float64(wave)
	return math.Min(EliteChanceMax, chance)
}

// CritChanceForTier — шанс крита защитника: 0.10 + 0.05*tier.
func CritChanceForTier(tier int) float64 {
	return CritChanceBase + CritChancePerTier*float64(tier)
}

// StreakThresholds — пороги серии убийств с их сообщениями.
var StreakThresholds = []struct {
	Count int
	Label string
}{
	{3, "TRIPLE KILL"},
	{5, "RAMPAGE"},
	{7, "UNSTOPPABLE"},
	{10, "DOMINATING"},
	{15, "GODLIKE"},
	{20, "LEGENDARY"},
}

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	BoardLineColor  = color.RGBA{55, 60, 80, 255}
	BoardCellColor  = color.RGBA{32, 34, 48, 255}
	LaneColor       = color.RGBA{70, 100, 120, 220}
	LaneEdgeColor   = color.RGBA{100, 140, 165, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDarkColor   = color.RGBA{20, 20, 30, 255}
	StrokeColor     = color.RGBA{255, 255, 255, 255}
	CritTextColor   = color.RGBA{255, 120, 60, 255}
	RewardTextColor = color.RGBA{255, 215, 0, 255}
	StreakTextColor = color.RGBA{255, 80, 80, 255}
	FeverBarColor   = color.RGBA{255, 100, 40, 255}
	UltReadyColor   = color.RGBA{120, 220, 255, 255}
	UltChargeColor  = color.RGBA{60, 110, 140, 255}
	PausedDimColor  = color.RGBA{0, 0, 0, 160}
	WaveTextColor   = color.RGBA{120, 170, 220, 255}
	BossWaveColor   = color.RGBA{220, 60, 60, 255}
	PhasePlayColor  = color.RGBA{90, 200, 90, 255}
	PhaseWaitColor  = color.RGBA{230, 200, 60, 255}

	// Цвета защитников по тирам, индекс 0 не используется.
	TierColors = []color.RGBA{
		{0, 0, 0, 0},
		{120, 200, 120, 255}, // T1
		{80, 160, 230, 255},  // T2
		{180, 100, 230, 255}, // T3
		{240, 160, 60, 255},  // T4
		{240, 70, 70, 255},   // T5
	}

	SpeedButtonColors = []color.RGBA{
		{70, 130, 180, 220},  // x1
		{220, 60, 60, 220},   // x2
		{194, 178, 128, 255}, // x4
	}
)
