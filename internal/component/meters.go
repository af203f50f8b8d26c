// internal/component/meters.go
package component

// Meters — синглтон боевых шкал сессии: комбо, фивер, ульта, серия
// убийств и таймеры активных усилений. Все значения обнуляются при
// рестарте уровня.
type Meters struct {
	Combo      int     // Текущее комбо
	ComboTimer float64 // Оставшееся окно комбо; по истечении комбо сбрасывается

	Fever       float64 // Шкала фивера 0..100
	FeverActive bool    // Во время фивера шкала только тратится

	UltimateCharge float64 // Шкала ульты 0..100
	UltimateReady  bool    // Выставляется один раз при достижении 100

	Streak      int     // Серия убийств
	StreakTimer float64 // Окно серии

	DoubleCoinsTimer float64 // Остаток усиления x2 монет
	FreezeTimer      float64 // Остаток глобальной заморозки (действует и на новые спавны)
}
