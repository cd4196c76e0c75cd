package system

import (
	"testing"

	"go-drone-defense/internal/component"
	"go-drone-defense/internal/config"
	"go-drone-defense/internal/defs"
	"go-drone-defense/internal/entity"
	"go-drone-defense/internal/event"
	"go-drone-defense/internal/types"
	"go-drone-defense/pkg/gridmap"
)

// world: минимальный мир для тестов систем
type world struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	lib        *defs.Library
	events     []event.Event
}

func newWorld(t *testing.T) *world {
	t.Helper()
	lib, err := defs.LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault() error = %v", err)
	}
	ecs := entity.NewECS()
	ecs.Base = &component.Base{
		Position:  component.Position{X: 720, Y: 400},
		Size:      64,
		Health:    config.BaseHealth,
		MaxHealth: config.BaseHealth,
	}
	return &world{ecs: ecs, dispatcher: event.NewDispatcher(), lib: lib}
}

// record сохраняет события указанных типов в w.events
func (w *world) record(eventTypes ...event.EventType) {
	w.dispatcher.Subscribe(event.ListenerFunc(func(e event.Event) {
		w.events = append(w.events, e)
	}), eventTypes...)
}

func (w *world) count(t event.EventType) int {
	n := 0
	for _, e := range w.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func (w *world) addEnemy(typ defs.EnemyType, x, y, health float64) types.EntityID {
	id := w.ecs.NewEntity()
	w.ecs.Positions[id] = &component.Position{X: x, Y: y}
	w.ecs.Velocities[id] = &component.Velocity{Speed: 10}
	w.ecs.Healths[id] = &component.Health{Value: health, Max: health}
	w.ecs.Renderables[id] = &component.Renderable{Radius: 6}
	w.ecs.Enemies[id] = &component.Enemy{Type: typ, Size: 12, Value: config.EnemyReward, HitTime: -1}
	return id
}

func (w *world) addTower(t *testing.T, defID string, x, y float64) (types.EntityID, *component.Tower) {
	t.Helper()
	def, ok := w.lib.Towers[defID]
	if !ok {
		t.Fatalf("tower %q not defined", defID)
	}
	tower := component.NewTower(def, gridmap.Cell{})
	id := w.ecs.NewEntity()
	w.ecs.Positions[id] = &component.Position{X: x, Y: y}
	w.ecs.Towers[id] = tower
	w.ecs.Renderables[id] = &component.Renderable{Color: def.Visuals.Color, Radius: 8}
	return id, tower
}

func (w *world) health(id types.EntityID) float64 {
	if h, ok := w.ecs.Healths[id]; ok {
		return h.Value
	}
	return -1
}

func almostEqual(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
