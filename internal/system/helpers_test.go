// internal/system/helpers_test.go
package system

import (
	"github.com/rs/zerolog"

	"merge-defense/internal/component"
	"merge-defense/internal/defs"
	"merge-defense/internal/entity"
	"merge-defense/internal/event"
	"merge-defense/internal/types"
	"merge-defense/internal/utils"
	"merge-defense/pkg/grid"
)

// eventRecorder копит все доставленные события для проверок.
type eventRecorder struct {
	events []event.Event
}

func (r *eventRecorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *eventRecorder) count(eventType event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == eventType {
			n++
		}
	}
	return n
}

func (r *eventRecorder) last(eventType event.EventType) (event.Event, bool) {
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].Type == eventType {
			return r.events[i], true
		}
	}
	return event.Event{}, false
}

// testPath — прямая горизонтальная дорожка длиной 1000.
func testPath() *grid.Path {
	return grid.NewPath([]grid.Point{{X: 0, Y: 0}, {X: 1000, Y: 0}})
}

func testRng() *utils.PRNGService {
	return utils.NewPRNGService(42)
}

func nopLogger() zerolog.Logger {
	return zerolog.Nop()
}

// addEnemy кладёт в ECS базового врага на позиции (x, y) со здоровьем hp.
func addEnemy(ecs *entity.ECS, x, y float64, hp int) types.EntityID {
	id := ecs.NewEntity()
	def := defs.EnemyClasses[defs.ClassBasic]
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Velocities[id] = &component.Velocity{Speed: def.Speed}
	ecs.PathProgress[id] = &component.PathProgress{}
	ecs.Healths[id] = &component.Health{Value: hp, Max: hp}
	ecs.Enemies[id] = &component.Enemy{
		Class:      def.Class,
		Reward:     def.Reward,
		ScoreValue: def.ScoreValue,
		GemBonus:   def.GemBonus,
	}
	return id
}

// addDefender кладёт в ECS защитника указанного тира на позиции (x, y).
func addDefender(ecs *entity.ECS, x, y float64, tier int) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Defenders[id] = &component.Defender{Tier: tier}
	ecs.Combats[id] = &component.Combat{}
	return id
}
