// internal/app/placement.go
package app

import (
	"math"

	"merge-defense/internal/component"
	"merge-defense/internal/config"
	"merge-defense/internal/defs"
	"merge-defense/internal/event"
	"merge-defense/internal/types"
	"merge-defense/pkg/grid"
)

// PlaceResult — статус попытки поставить защитника.
type PlaceResult int

const (
	PlaceOK PlaceResult = iota
	PlaceOutOfBounds
	PlaceOccupied
	PlaceBadTier
)

func (r PlaceResult) String() string {
	switch r {
	case PlaceOK:
		return "ok"
	case PlaceOutOfBounds:
		return "out_of_bounds"
	case PlaceOccupied:
		return "occupied"
	case PlaceBadTier:
		return "bad_tier"
	default:
		return "unknown"
	}
}

// MergeResult — статус попытки слить двух защитников.
type MergeResult int

const (
	MergeOK MergeResult = iota
	MergeSelf
	MergeEmptyCell
	MergeTierMismatch
	MergeMaxTier
)

func (r MergeResult) String() string {
	switch r {
	case MergeOK:
		return "ok"
	case MergeSelf:
		return "self_merge"
	case MergeEmptyCell:
		return "empty_cell"
	case MergeTierMismatch:
		return "tier_mismatch"
	case MergeMaxTier:
		return "max_tier"
	default:
		return "unknown"
	}
}

// TryPlaceDefender ставит защитника указанного тира на клетку (x, y).
// Отказ возвращается статусом, паник и ошибок здесь нет.
func (g *Game) TryPlaceDefender(x, y, tier int) (types.EntityID, PlaceResult) {
	if tier < 1 || tier > config.MaxTier {
		g.log.Warn().Int("tier", tier).Msg("Place rejected: tier out of range")
		return 0, PlaceBadTier
	}

	cell := grid.Cell{X: x, Y: y}
	if !g.Grid.InBounds(cell) {
		g.log.Debug().Int("x", x).Int("y", y).Msg("Place rejected: out of bounds")
		return 0, PlaceOutOfBounds
	}
	if g.Grid.At(cell) != 0 {
		g.log.Debug().Int("x", x).Int("y", y).Msg("Place rejected: cell occupied")
		return 0, PlaceOccupied
	}

	id := g.createDefenderEntity(cell, tier)
	g.Grid.Place(cell, id)
	g.EventDispatcher.Emit(event.DefenderPlaced, event.DefenderPlacedPayload{ID: id, Cell: cell, Tier: tier})
	return id, PlaceOK
}

// TryMerge сливает защитников с клеток cellA и cellB в тир выше.
// Выживает второй выбранный (cellB), первый снимается с поля.
func (g *Game) TryMerge(cellA, cellB grid.Cell) (int, MergeResult) {
	if cellA == cellB {
		g.log.Debug().Msg("Merge rejected: same cell selected twice")
		return 0, MergeSelf
	}

	firstID := g.Grid.At(cellA)
	secondID := g.Grid.At(cellB)
	if firstID == 0 || secondID == 0 {
		g.log.Debug().Msg("Merge rejected: empty cell")
		return 0, MergeEmptyCell
	}

	first := g.ECS.Defenders[firstID]
	second := g.ECS.Defenders[secondID]
	if first == nil || second == nil {
		g.log.Error().Msg("Merge rejected: grid occupancy desynced from ECS")
		return 0, MergeEmptyCell
	}
	if first.Tier != second.Tier {
		g.log.Debug().Int("tierA", first.Tier).Int("tierB", second.Tier).Msg("Merge rejected: tier mismatch")
		return 0, MergeTierMismatch
	}
	if second.Tier >= config.MaxTier {
		g.log.Debug().Msg("Merge rejected: already at max tier")
		return 0, MergeMaxTier
	}

	newTier := second.Tier + 1
	second.Tier = newTier
	g.applyDefenderTier(secondID, newTier)

	g.removeDefenderEntity(firstID)
	g.Grid.Remove(cellA)

	g.EventDispatcher.Emit(event.DefenderMerged, event.DefenderMergedPayload{
		Kept:    secondID,
		Removed: firstID,
		NewTier: newTier,
	})
	return newTier, MergeOK
}

// SpawnDefender покупает защитника первого тира и ставит его на случайную
// свободную клетку. Возвращает false, если не хватает монет или места.
func (g *Game) SpawnDefender() (types.EntityID, bool) {
	free := g.Grid.FreeCells()
	if len(free) == 0 {
		g.log.Debug().Msg("Spawn rejected: no free cells")
		return 0, false
	}
	if !g.Wallet.SpendCoins(config.DefenderCost) {
		g.log.Debug().Int64("coins", g.Wallet.Coins()).Msg("Spawn rejected: not enough coins")
		return 0, false
	}

	cell := free[g.Rng.Intn(len(free))]
	id, result := g.TryPlaceDefender(cell.X, cell.Y, 1)
	if result != PlaceOK {
		// Свободная клетка из списка не может быть занята, но деньги
		// в любом случае не должны сгореть.
		g.Wallet.AddCoins(config.DefenderCost)
		return 0, false
	}
	return id, true
}

// SpawnDefenderFree ставит защитника первого тира бесплатно. Путь для
// ваучера из гачи, монеты не списываются.
func (g *Game) SpawnDefenderFree() (types.EntityID, bool) {
	free := g.Grid.FreeCells()
	if len(free) == 0 {
		return 0, false
	}
	cell := free[g.Rng.Intn(len(free))]
	id, result := g.TryPlaceDefender(cell.X, cell.Y, 1)
	return id, result == PlaceOK
}

// CanSpawnDefender — хватает ли монет и есть ли куда ставить.
func (g *Game) CanSpawnDefender() bool {
	return g.Wallet.CanAffordCoins(config.DefenderCost) && len(g.Grid.FreeCells()) > 0
}

// DefenderAt возвращает защитника на клетке, если он там есть.
func (g *Game) DefenderAt(cell grid.Cell) (types.EntityID, *component.Defender, bool) {
	id := g.Grid.At(cell)
	if id == 0 {
		return 0, nil, false
	}
	defender, ok := g.ECS.Defenders[id]
	if !ok {
		return 0, nil, false
	}
	return id, defender, true
}

func (g *Game) createDefenderEntity(cell grid.Cell, tier int) types.EntityID {
	id := g.ECS.NewEntity()
	x, y := g.Grid.CellCenter(cell)
	g.ECS.Positions[id] = &component.Position{X: x, Y: y}
	g.ECS.Defenders[id] = &component.Defender{Tier: tier, Cell: cell}
	g.ECS.Combats[id] = &component.Combat{}
	// Ствол смотрит вверх, на дорожку, пока не появится первая цель
	g.ECS.Turrets[id] = &component.Turret{
		CurrentAngle: -math.Pi / 2,
		TargetAngle:  -math.Pi / 2,
		TurnSpeed:    config.TurretTurnSpeed,
	}
	g.applyDefenderTier(id, tier)
	return id
}

// applyDefenderTier обновляет визуал защитника по таблице тиров.
func (g *Game) applyDefenderTier(id types.EntityID, tier int) {
	def, ok := defs.DefenderTiers[tier]
	if !ok {
		return
	}
	g.ECS.Renderables[id] = &component.Renderable{
		Color:     def.Visuals.Color,
		Radius:    float32(config.CellSize * def.Visuals.RadiusFactor),
		HasStroke: def.Visuals.StrokeWidth > 0,
	}
}

func (g *Game) removeDefenderEntity(id types.EntityID) {
	delete(g.ECS.Positions, id)
	delete(g.ECS.Renderables, id)
	delete(g.ECS.Combats, id)
	delete(g.ECS.Turrets, id)
	delete(g.ECS.Defenders, id)
}
