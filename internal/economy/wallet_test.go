// internal/economy/wallet_test.go
package economy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWalletCoins(t *testing.T) {
	w := NewWallet(100, 0)

	assert.Equal(t, int64(100), w.Coins())
	assert.True(t, w.CanAffordCoins(100))
	assert.False(t, w.CanAffordCoins(101))

	assert.True(t, w.SpendCoins(20))
	assert.Equal(t, int64(80), w.Coins())

	// нельзя уйти в минус
	assert.False(t, w.SpendCoins(81))
	assert.Equal(t, int64(80), w.Coins())

	w.AddCoins(5)
	assert.Equal(t, int64(85), w.Coins())

	// отрицательные суммы игнорируются
	w.AddCoins(-50)
	assert.Equal(t, int64(85), w.Coins())
	assert.False(t, w.SpendCoins(-1))
}

func TestWalletGems(t *testing.T) {
	w := NewWallet(0, 3)

	assert.Equal(t, 3, w.Gems())
	assert.True(t, w.SpendGems(3))
	assert.False(t, w.SpendGems(1))
	assert.Equal(t, 0, w.Gems())

	w.AddGems(2)
	assert.True(t, w.CanAffordGems(2))
	assert.False(t, w.CanAffordGems(3))
}
