// internal/defs/daily.go
package defs

// DailyReward — награда одного дня семидневного цикла.
type DailyReward struct {
	Coins int64 `json:"coins"`
	Gems  int   `json:"gems"`
}

// DailyCycle — нарастающий семидневный цикл ежедневных наград.
// Пропущенный день сбрасывает серию на первый слот.
var DailyCycle = [7]DailyReward{
	{Coins: 50},
	{Coins: 75},
	{Coins: 100, Gems: 1},
	{Coins: 150},
	{Coins: 200, Gems: 2},
	{Coins: 300},
	{Coins: 500, Gems: 5},
}
