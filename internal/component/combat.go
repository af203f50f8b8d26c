package component

// Health — компонент здоровья. Пока сущность жива, 0 <= Value <= Max.
type Health struct {
	Value int
	Max   int
}

// Combat — боевое состояние защитника. Статы (урон, дальность,
// скорострельность) берутся из defs по тиру.
type Combat struct {
	FireCooldown float64 // Оставшееся время до следующего выстрела
}
