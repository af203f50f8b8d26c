// internal/economy/wallet.go
package economy

// Wallet — кошелёк сессии: мягкая валюта (монеты) и твёрдая (кристаллы).
// Симуляция потребляет интерфейс, чтобы клиент мог подставить кошелёк,
// синхронизированный с профилем.
type Wallet interface {
	AddCoins(amount int64)
	SpendCoins(amount int64) bool
	CanAffordCoins(amount int64) bool
	Coins() int64

	AddGems(amount int)
	SpendGems(amount int) bool
	CanAffordGems(amount int) bool
	Gems() int
}

// wallet — стандартная реализация в памяти. Симуляция однопоточная,
// синхронизация не нужна.
type wallet struct {
	coins int64
	gems  int
}

// NewWallet создаёт кошелёк со стартовым балансом.
func NewWallet(coins int64, gems int) Wallet {
	return &wallet{coins: coins, gems: gems}
}

func (w *wallet) AddCoins(amount int64) {
	if amount <= 0 {
		return
	}
	w.coins += amount
}

func (w *wallet) SpendCoins(amount int64) bool {
	if amount < 0 || w.coins < amount {
		return false
	}
	w.coins -= amount
	return true
}

func (w *wallet) CanAffordCoins(amount int64) bool {
	return w.coins >= amount
}

func (w *wallet) Coins() int64 {
	return w.coins
}

func (w *wallet) AddGems(amount int) {
	if amount <= 0 {
		return
	}
	w.gems += amount
}

func (w *wallet) SpendGems(amount int) bool {
	if amount < 0 || w.gems < amount {
		return false
	}
	w.gems -= amount
	return true
}

func (w *wallet) CanAffordGems(amount int) bool {
	return w.gems >= amount
}

func (w *wallet) Gems() int {
	return w.gems
}
