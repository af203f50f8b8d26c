// internal/component/wave.go
package component

// Wave — синглтон активной волны.
type Wave struct {
	Number         int     // Номер волны, с единицы
	EnemiesToSpawn int     // Сколько врагов ещё не заспавнено
	SpawnTimer     float64 // Таймер до следующего спавна
	SpawnInterval  float64 // Интервал спавна, постоянный внутри волны
	BossQueued     bool    // Последним в волне выходит босс
}
