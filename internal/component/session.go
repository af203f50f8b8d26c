// internal/component/session.go
package component

// Phase — фаза игровой сессии.
type Phase int

const (
	PhaseIdle Phase = iota // Уровень ещё не запущен
	PhasePlaying
	PhaseIntermission // Пауза между волнами, тикает обратный отсчёт
	PhaseLevelComplete
	PhaseGameOver // Терминальная фаза, выставляется ровно один раз
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhaseIntermission:
		return "intermission"
	case PhaseLevelComplete:
		return "level_complete"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Session — синглтон состояния сессии на уровне.
type Session struct {
	Phase             Phase
	Level             int
	Lives             int
	Score             int
	WavesCleared      int
	IntermissionTimer float64 // Обратный отсчёт до старта следующей волны
}
