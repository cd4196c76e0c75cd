// internal/system/render.go
package system

import (
	"image/color"
	"math"

	"go-drone-defense/internal/component"
	"go-drone-defense/internal/config"
	"go-drone-defense/internal/entity"
	"go-drone-defense/internal/utils"
	"go-drone-defense/pkg/gridmap"
	"go-drone-defense/pkg/render"
	putils "go-drone-defense/pkg/utils"
)

// RenderSystem рисует игровое поле и сущности
type RenderSystem struct {
	ecs  *entity.ECS
	grid *gridmap.Grid
}

func NewRenderSystem(ecs *entity.ECS, grid *gridmap.Grid) *RenderSystem {
	return &RenderSystem{ecs: ecs, grid: grid}
}

func (s *RenderSystem) Draw(canvas render.Canvas) {
	s.drawGrid(canvas)
	s.drawBase(canvas)
	s.drawTowers(canvas)
	s.drawEnemies(canvas)
	s.drawProjectiles(canvas)
	s.drawEffects(canvas)
}

func (s *RenderSystem) drawGrid(canvas render.Canvas) {
	w, h := canvas.Size()
	canvas.FillRect(0, 0, float64(w), float64(h), config.BackgroundColor)

	size := s.grid.CellSize
	for cell, tile := range s.grid.Tiles {
		if !tile.Buildable {
			x, y := float64(cell.Col)*size, float64(cell.Row)*size
			canvas.FillRect(x, y, size, size, config.ReservedCellColor)
		}
	}
	for col := 0; col <= s.grid.Cols; col++ {
		x := float64(col) * size
		canvas.Line(x, 0, x, float64(s.grid.Rows)*size, 1, config.GridLineColor)
	}
	for row := 0; row <= s.grid.Rows; row++ {
		y := float64(row) * size
		canvas.Line(0, y, float64(s.grid.Cols)*size, y, 1, config.GridLineColor)
	}
}

func (s *RenderSystem) drawBase(canvas render.Canvas) {
	base := s.ecs.Base
	if base == nil {
		return
	}
	// Чем меньше здоровья, тем краснее база
	fraction := float64(base.Health) / float64(max(base.MaxHealth, 1))
	clr := render.LerpColor(config.BaseDamagedColor, config.BaseColor, fraction)

	half := base.Size / 2
	canvas.FillRect(base.X-half, base.Y-half, base.Size, base.Size, clr)
	canvas.StrokeRect(base.X-half, base.Y-half, base.Size, base.Size, config.TowerStrokeSize, config.TowerStrokeColor)
	drawHealthBar(canvas, base.X-half, base.Y-half-config.HealthBarHeight*2, base.Size, fraction)
}

func (s *RenderSystem) drawTowers(canvas render.Canvas) {
	selected := s.ecs.GameState.SelectedTower
	for _, id := range s.ecs.TowerIDs() {
		if id == s.ecs.BaseTowerID {
			continue
		}
		tower := s.ecs.Towers[id]
		pos, hasPos := s.ecs.Positions[id]
		rnd, hasRender := s.ecs.Renderables[id]
		if !hasPos || !hasRender {
			continue
		}

		if cone, ok := tower.Behavior.(*component.Cone); ok && cone.TargetID != 0 {
			half := cone.ConeDegrees * math.Pi / 180 / 2
			canvas.FillSector(pos.X, pos.Y, tower.Range, cone.DisplayFacing-half, cone.DisplayFacing+half, config.ConeColor)
		}
		if id == selected {
			canvas.StrokeCircle(pos.X, pos.Y, tower.Range, 1, config.RangeColor)
		}

		radius := float64(rnd.Radius)
		if rnd.HasStroke {
			canvas.FillCircle(pos.X, pos.Y, radius+config.TowerStrokeSize, config.TowerStrokeColor)
		}
		canvas.FillCircle(pos.X, pos.Y, radius, rnd.Color)

		// Уровень башни отмечаем точками под ней
		for lvl := 1; lvl < tower.Level; lvl++ {
			canvas.FillCircle(pos.X-radius+float64(lvl-1)*5, pos.Y+radius+4, 1.5, config.TowerStrokeColor)
		}
	}
}

func (s *RenderSystem) drawEnemies(canvas render.Canvas) {
	gs := s.ecs.GameState
	for _, id := range s.ecs.EnemyIDs() {
		enemy := s.ecs.Enemies[id]
		pos, hasPos := s.ecs.Positions[id]
		rnd, hasRender := s.ecs.Renderables[id]
		if !hasPos || !hasRender {
			continue
		}

		clr := rnd.Color
		if _, flashing := s.ecs.DamageFlashes[id]; flashing {
			clr = config.HitFlashColor
		}
		radius := float64(rnd.Radius)
		canvas.FillCircle(pos.X, pos.Y, radius, clr)

		if gs.TargetingMode {
			width := 1.0
			if id == gs.SelectedEnemy {
				width = 2
			}
			canvas.StrokeCircle(pos.X, pos.Y, radius+3, width, config.TargetingColor)
		}

		if health, ok := s.ecs.Healths[id]; ok && health.Value < health.Max {
			barWidth := max(enemy.Size, 8)
			drawHealthBar(canvas, pos.X-barWidth/2, pos.Y-radius-config.HealthBarHeight-2, barWidth, health.Fraction())
		}
	}
}

func (s *RenderSystem) drawProjectiles(canvas render.Canvas) {
	for id, trail := range s.ecs.MissileTrails {
		for i := 1; i < len(trail.Points); i++ {
			a, b := trail.Points[i-1], trail.Points[i]
			alpha := uint8(float64(config.TrailColor.A) * float64(i) / float64(len(trail.Points)))
			canvas.Line(a.X, a.Y, b.X, b.Y, 2, render.WithAlpha(config.TrailColor, alpha))
		}
		if pos, ok := s.ecs.Positions[id]; ok && len(trail.Points) > 0 {
			last := trail.Points[len(trail.Points)-1]
			canvas.Line(last.X, last.Y, pos.X, pos.Y, 2, config.TrailColor)
		}
	}

	for _, id := range s.ecs.ProjectileIDs() {
		pos, hasPos := s.ecs.Positions[id]
		rnd, hasRender := s.ecs.Renderables[id]
		if hasPos && hasRender {
			canvas.FillCircle(pos.X, pos.Y, float64(rnd.Radius), rnd.Color)
		}
	}
}

func (s *RenderSystem) drawEffects(canvas render.Canvas) {
	for _, beam := range s.ecs.Beams {
		canvas.Line(beam.FromX, beam.FromY, beam.ToX, beam.ToY, 3, fade(beam.Color, beam.Timer, beam.Duration))
	}

	for _, effect := range s.ecs.JammingEffects {
		pos, ok := s.ecs.Positions[effect.TargetID]
		enemy, alive := s.ecs.Enemies[effect.TargetID]
		if !ok || !alive {
			continue
		}
		canvas.StrokeCircle(pos.X, pos.Y, enemy.Size/2+4, 2, fade(config.JammingColor, effect.Timer, effect.Duration))
	}

	for _, explosion := range s.ecs.Explosions {
		clr := fade(config.ExplosionColor, explosion.Timer, explosion.Duration)
		for _, p := range explosion.Particles {
			canvas.FillCircle(p.X, p.Y, max(utils.Lerp(p.Size, 0, explosion.Progress()), 0.5), clr)
		}
	}
}

func drawHealthBar(canvas render.Canvas, x, y, width, fraction float64) {
	canvas.FillRect(x, y, width, config.HealthBarHeight, config.HealthBarBackColor)
	canvas.FillRect(x, y, width*putils.Clamp(fraction, 0, 1), config.HealthBarHeight, config.HealthBarColor)
}

// fade линейно гасит альфу по мере истечения таймера
func fade(c color.RGBA, timer, duration float64) color.RGBA {
	if duration <= 0 {
		return c
	}
	left := max(0, 1-timer/duration)
	return render.WithAlpha(c, uint8(float64(c.A)*left))
}
