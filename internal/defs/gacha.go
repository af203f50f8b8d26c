// internal/defs/gacha.go
package defs

// LootEntry представляет одну запись в таблице выпадения.
// ItemID — это ID предмета, а Weight — его относительный шанс выпадения.
type LootEntry struct {
	ItemID string `json:"item_id"`
	Weight int    `json:"weight"`
}

// GachaItemKind — вид содержимого капсулы.
type GachaItemKind string

const (
	GachaCoins   GachaItemKind = "COINS"
	GachaGems    GachaItemKind = "GEMS"
	GachaPowerUp GachaItemKind = "POWERUP"
	GachaVoucher GachaItemKind = "VOUCHER" // Бесплатный защитник первого тира
)

// GachaItem описывает, что именно игрок получает из капсулы.
type GachaItem struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Kind      GachaItemKind `json:"kind"`
	Coins     int64         `json:"coins,omitempty"`
	Gems      int           `json:"gems,omitempty"`
	PowerUpID string        `json:"power_up_id,omitempty"`
}

// GachaPullCost — стоимость одной крутки в кристаллах.
const GachaPullCost = 5

// GachaItems — справочник предметов гачи.
var GachaItems = map[string]GachaItem{
	"COINS_SMALL": {ID: "COINS_SMALL", Name: "Coin Pouch", Kind: GachaCoins, Coins: 50},
	"COINS_BIG":   {ID: "COINS_BIG", Name: "Coin Chest", Kind: GachaCoins, Coins: 250},
	"GEMS_SMALL":  {ID: "GEMS_SMALL", Name: "Gem Shard", Kind: GachaGems, Gems: 2},
	"GEMS_BIG":    {ID: "GEMS_BIG", Name: "Gem Cluster", Kind: GachaGems, Gems: 8},
	"FREEZE_CHARGE": {ID: "FREEZE_CHARGE", Name: "Freeze Charge", Kind: GachaPowerUp,
		PowerUpID: PowerUpFreeze},
	"DOUBLE_CHARGE": {ID: "DOUBLE_CHARGE", Name: "Gold Rush Charge", Kind: GachaPowerUp,
		PowerUpID: PowerUpDoubleCoins},
	"DEFENDER_VOUCHER": {ID: "DEFENDER_VOUCHER", Name: "Recruit Voucher", Kind: GachaVoucher},
}

// ChargeItemID возвращает ID предмета-заряда для усиления, пустую строку
// если такого предмета в гаче нет.
func ChargeItemID(powerUpID string) string {
	for id, item := range GachaItems {
		if item.Kind == GachaPowerUp && item.PowerUpID == powerUpID {
			return id
		}
	}
	return ""
}

// GachaTable — таблица выпадения. Веса относительные.
var GachaTable = []LootEntry{
	{ItemID: "COINS_SMALL", Weight: 35},
	{ItemID: "COINS_BIG", Weight: 10},
	{ItemID: "GEMS_SMALL", Weight: 20},
	{ItemID: "GEMS_BIG", Weight: 5},
	{ItemID: "FREEZE_CHARGE", Weight: 10},
	{ItemID: "DOUBLE_CHARGE", Weight: 10},
	{ItemID: "DEFENDER_VOUCHER", Weight: 10},
}
