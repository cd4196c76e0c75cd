package system

import (
	"math"
	"testing"

	"go-drone-defense/internal/component"
	"go-drone-defense/internal/defs"
	"go-drone-defense/internal/event"
	"go-drone-defense/internal/types"
)

func TestApplyDamageKillsOnce(t *testing.T) {
	w := newWorld(t)
	w.record(event.EnemyKilled)
	id := w.addEnemy(defs.EnemyFPV, 100, 100, 10)

	if ApplyDamage(w.ecs, w.dispatcher, id, 4) {
		t.Fatal("ApplyDamage(4) killed a 10 hp enemy")
	}
	if got := w.health(id); got != 6 {
		t.Errorf("health = %v, want 6", got)
	}
	if _, ok := w.ecs.DamageFlashes[id]; !ok {
		t.Error("hit did not start a damage flash")
	}
	if w.ecs.Enemies[id].HitTime != w.ecs.GameTime {
		t.Error("HitTime not updated")
	}

	if !ApplyDamage(w.ecs, w.dispatcher, id, 100) {
		t.Fatal("overkill did not kill")
	}
	if ApplyDamage(w.ecs, w.dispatcher, id, 100) {
		t.Error("damage to a removed enemy reported a kill")
	}

	gs := w.ecs.GameState
	if gs.Money != 15 || gs.Stats.Kills != 1 || w.count(event.EnemyKilled) != 1 {
		t.Errorf("money=%d kills=%d events=%d, want reward credited once", gs.Money, gs.Stats.Kills, w.count(event.EnemyKilled))
	}
}

func TestApplyDamageIgnoresNonPositive(t *testing.T) {
	w := newWorld(t)
	id := w.addEnemy(defs.EnemyFPV, 0, 0, 10)
	ApplyDamage(w.ecs, w.dispatcher, id, 0)
	ApplyDamage(w.ecs, w.dispatcher, id, -5)
	if got := w.health(id); got != 10 {
		t.Errorf("health = %v, want 10", got)
	}
}

func TestSplashFalloff(t *testing.T) {
	tests := []struct {
		damage, distance, radius float64
		want                     float64
	}{
		{10, 0, 50, 10},
		{10, 30, 50, 4},
		{10, 50, 50, 0},
		{10, 60, 50, 0},
		{10, 10, 0, 0},
	}
	for _, tt := range tests {
		if got := SplashFalloff(tt.damage, tt.distance, tt.radius); !almostEqual(got, tt.want) {
			t.Errorf("SplashFalloff(%v, %v, %v) = %v, want %v", tt.damage, tt.distance, tt.radius, got, tt.want)
		}
	}
}

func TestInCone(t *testing.T) {
	tower := &component.Tower{Range: 100}
	deg := math.Pi / 180
	at := func(angleDeg, dist float64) (float64, float64) {
		return dist * math.Cos(angleDeg*deg), dist * math.Sin(angleDeg*deg)
	}

	tests := []struct {
		name     string
		facing   float64
		angle    float64
		distance float64
		want     bool
	}{
		{"inside half angle", 0, 40, 50, true},
		{"outside half angle", 0, 50, 50, false},
		{"negative side", 0, -44, 50, true},
		{"out of range", 0, 0, 120, false},
		{"wraps around pi", math.Pi, -170, 50, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := at(tt.angle, tt.distance)
			if got := InCone(0, 0, tt.facing, 90, tower, x, y); got != tt.want {
				t.Errorf("InCone() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSelectTarget(t *testing.T) {
	w := newWorld(t)
	cs := NewCombatSystem(w.ecs, w.dispatcher)
	_, tower := w.addTower(t, "sniper", 0, 0)
	pos := &component.Position{}

	strong := w.addEnemy(defs.EnemyGroup3, 100, 0, 30)
	near := w.addEnemy(defs.EnemyFPV, 50, 0, 10)
	w.addEnemy(defs.EnemyFPV, 0, 50, 10)       // такой же близкий, но появился позже
	w.addEnemy(defs.EnemyGroup3, 200, 0, 30)   // такой же крепкий, но появился позже
	w.addEnemy(defs.EnemyGroup5, 300, 0, 1000) // ровно на границе радиуса
	w.addEnemy(defs.EnemyGroup5, 400, 0, 1000) // вне радиуса

	if got := cs.SelectTarget(tower, pos, defs.TargetClosest); got != near {
		t.Errorf("closest = %d, want %d", got, near)
	}
	if got := cs.SelectTarget(tower, pos, defs.TargetHighestHealth); got != strong {
		t.Errorf("highest health = %d, want %d", got, strong)
	}
}

func TestProjectileWeaponCooldown(t *testing.T) {
	w := newWorld(t)
	cs := NewCombatSystem(w.ecs, w.dispatcher)
	w.addTower(t, "rapid", 100, 100)
	w.addEnemy(defs.EnemyFPV, 130, 100, 10)

	steps := []struct {
		now  float64
		want int
	}{
		{0, 1},
		{0.2, 1},
		{0.31, 2},
	}
	for _, s := range steps {
		w.ecs.GameTime = s.now
		cs.Update(0.1)
		if got := len(w.ecs.Projectiles); got != s.want {
			t.Errorf("t=%v: projectiles = %d, want %d", s.now, got, s.want)
		}
	}
}

func TestProjectileHomesAndHits(t *testing.T) {
	w := newWorld(t)
	cs := NewCombatSystem(w.ecs, w.dispatcher)
	ps := NewProjectileSystem(w.ecs, w.dispatcher)
	w.addTower(t, "rapid", 100, 100)
	enemy := w.addEnemy(defs.EnemyFPV, 130, 100, 10)

	cs.Update(0.1)
	ps.Update(0.1)
	if len(w.ecs.Projectiles) != 1 || w.health(enemy) != 10 {
		t.Fatalf("projectile hit too early: projectiles=%d health=%v", len(w.ecs.Projectiles), w.health(enemy))
	}
	ps.Update(0.1)
	if len(w.ecs.Projectiles) != 0 {
		t.Errorf("projectile not removed after hit")
	}
	if got := w.health(enemy); got != 8 {
		t.Errorf("health = %v, want 8", got)
	}
}

func TestProjectileDroppedWhenTargetGone(t *testing.T) {
	w := newWorld(t)
	cs := NewCombatSystem(w.ecs, w.dispatcher)
	ps := NewProjectileSystem(w.ecs, w.dispatcher)
	w.addTower(t, "rapid", 100, 100)
	target := w.addEnemy(defs.EnemyFPV, 130, 100, 10)

	cs.Update(0.1)
	other := w.addEnemy(defs.EnemyFPV, 101, 100, 10)
	RemoveEnemy(w.ecs, target)
	ps.Update(0.1)

	if len(w.ecs.Projectiles) != 0 {
		t.Error("orphaned projectile still in flight")
	}
	if got := w.health(other); got != 10 {
		t.Errorf("orphaned projectile damaged another enemy: health = %v", got)
	}
}

func TestSplashProjectilesSameTickCreditKillOnce(t *testing.T) {
	w := newWorld(t)
	w.record(event.EnemyKilled)
	ps := NewProjectileSystem(w.ecs, w.dispatcher)
	target := w.addEnemy(defs.EnemyFPV, 100, 100, 10)
	bystander := w.addEnemy(defs.EnemyFixedWing, 110, 100, 100)

	// Оба снаряда уже у цели и попадают в одном тике
	for range 2 {
		id := w.ecs.NewEntity()
		w.ecs.Positions[id] = &component.Position{X: 100, Y: 100}
		w.ecs.Projectiles[id] = &component.Projectile{
			TargetID:     target,
			Speed:        100,
			Size:         4,
			Damage:       20,
			SplashRadius: 50,
		}
	}
	ps.Update(0.016)

	gs := w.ecs.GameState
	if w.ecs.IsEnemyAlive(target) {
		t.Fatal("target survived two splash hits")
	}
	if gs.Stats.Kills != 1 || gs.Money != 15 || gs.Stats.MoneyEarned != 15 || w.count(event.EnemyKilled) != 1 {
		t.Errorf("kills=%d money=%d earned=%d events=%d, want one credited kill",
			gs.Stats.Kills, gs.Money, gs.Stats.MoneyEarned, w.count(event.EnemyKilled))
	}
	// Второй снаряд потерял цель и исчез без взрыва
	if got := w.health(bystander); !almostEqual(got, 100-SplashFalloff(20, 10, 50)) {
		t.Errorf("bystander health = %v, want one splash hit", got)
	}
	if len(w.ecs.Projectiles) != 0 {
		t.Errorf("projectiles left = %d", len(w.ecs.Projectiles))
	}
}

func TestBeamDamagesImmediately(t *testing.T) {
	w := newWorld(t)
	cs := NewCombatSystem(w.ecs, w.dispatcher)
	w.addTower(t, "laser", 0, 0)
	enemy := w.addEnemy(defs.EnemyGroup3, 100, 0, 20)

	cs.Update(0.1)
	if got := w.health(enemy); got != 12 {
		t.Errorf("health = %v, want 12", got)
	}
	if len(w.ecs.Beams) != 1 {
		t.Fatalf("beams = %d, want 1", len(w.ecs.Beams))
	}
	for _, b := range w.ecs.Beams {
		if b.ToX != 100 || b.ToY != 0 {
			t.Errorf("beam ends at (%v, %v), want (100, 0)", b.ToX, b.ToY)
		}
	}

	w.ecs.GameTime = 1
	cs.Update(0.1)
	if got := w.health(enemy); got != 12 {
		t.Errorf("laser fired during cooldown: health = %v", got)
	}
}

func TestJammerPersistentTargets(t *testing.T) {
	w := newWorld(t)
	cs := NewCombatSystem(w.ecs, w.dispatcher)
	_, tower := w.addTower(t, "jammer", 0, 0)
	jammer := tower.Behavior.(*component.Jammer)

	fixedWing := w.addEnemy(defs.EnemyFixedWing, 50, 0, 10)
	group := w.addEnemy(defs.EnemyGroup3, 60, 0, 10)
	fpv := w.addEnemy(defs.EnemyFPV, 200, 0, 10)

	cs.Update(0.1)
	if len(jammer.Targets) != 1 || jammer.Targets[0] != fixedWing {
		t.Fatalf("Targets = %v, want [%d]", jammer.Targets, fixedWing)
	}
	if w.health(fixedWing) != 9 || w.health(group) != 10 {
		t.Errorf("health fixed_wing=%v group_3=%v, want 9 and 10", w.health(fixedWing), w.health(group))
	}
	if len(w.ecs.JammingEffects) != 1 {
		t.Errorf("jamming effects = %d, want 1", len(w.ecs.JammingEffects))
	}

	// Новая цель добавляется сразу, но урон ждёт кулдауна
	w.ecs.Positions[fpv].X = 100
	w.ecs.GameTime = 0.1
	cs.Update(0.1)
	if len(jammer.Targets) != 2 || w.health(fpv) != 10 {
		t.Errorf("after entering range: targets=%v fpv health=%v", jammer.Targets, w.health(fpv))
	}

	w.ecs.GameTime = 0.4
	cs.Update(0.1)
	if w.health(fixedWing) != 8 || w.health(fpv) != 9 {
		t.Errorf("after cooldown: fixed_wing=%v fpv=%v, want 8 and 9", w.health(fixedWing), w.health(fpv))
	}

	w.ecs.Positions[fixedWing].X = 500
	w.ecs.GameTime = 0.5
	cs.Update(0.1)
	if len(jammer.Targets) != 1 || jammer.Targets[0] != fpv {
		t.Errorf("Targets = %v, want [%d] after fixed_wing left range", jammer.Targets, fpv)
	}
}

func TestJammerKillsWholeSet(t *testing.T) {
	w := newWorld(t)
	cs := NewCombatSystem(w.ecs, w.dispatcher)
	_, tower := w.addTower(t, "jammer", 0, 0)
	w.addEnemy(defs.EnemyFixedWing, 50, 0, 1)
	w.addEnemy(defs.EnemyFPV, 60, 0, 1)

	cs.Update(0.1)
	if len(w.ecs.Enemies) != 0 {
		t.Errorf("enemies left = %d, want 0", len(w.ecs.Enemies))
	}
	if got := len(tower.Behavior.(*component.Jammer).Targets); got != 0 {
		t.Errorf("jammer still holds %d dead targets", got)
	}
	if got := w.ecs.GameState.Money; got != 30 {
		t.Errorf("money = %d, want 30", got)
	}
	if len(w.ecs.JammingEffects) != 0 {
		t.Error("jamming effects outlived their targets")
	}
}

func TestConeDamagesSector(t *testing.T) {
	w := newWorld(t)
	cs := NewCombatSystem(w.ecs, w.dispatcher)
	_, tower := w.addTower(t, "hpm", 0, 0)
	cone := tower.Behavior.(*component.Cone)

	target := w.addEnemy(defs.EnemyFPV, 50, 0, 20)
	flank := w.addEnemy(defs.EnemyFPV, 60, 30, 20)
	side := w.addEnemy(defs.EnemyFPV, 0, 60, 20)
	behind := w.addEnemy(defs.EnemyFPV, -70, 0, 20)

	cs.Update(0.1)
	if cone.TargetID != target {
		t.Errorf("TargetID = %d, want %d", cone.TargetID, target)
	}
	want := map[types.EntityID]float64{target: 15, flank: 15, side: 20, behind: 20}
	for id, hp := range want {
		if got := w.health(id); got != hp {
			t.Errorf("enemy %d health = %v, want %v", id, got, hp)
		}
	}

	// Цель сохраняется, пока жива и в радиусе, даже если появился кто-то ближе
	w.addEnemy(defs.EnemyFPV, 20, 0, 20)
	w.ecs.GameTime = 0.1
	cs.Update(0.1)
	if cone.TargetID != target {
		t.Errorf("cone switched target to %d while %d is still valid", cone.TargetID, target)
	}
}

func TestLaunchMissile(t *testing.T) {
	w := newWorld(t)
	w.record(event.MissileLaunched, event.MissileExploded)
	cs := NewCombatSystem(w.ecs, w.dispatcher)
	ps := NewProjectileSystem(w.ecs, w.dispatcher)

	baseTower, _ := w.addTower(t, "missile", 720, 400)
	w.ecs.BaseTowerID = baseTower
	w.ecs.GameState.Missiles = 1

	target := w.addEnemy(defs.EnemyGroup5, 100, 100, 100)
	bystander := w.addEnemy(defs.EnemyGroup5, 130, 100, 100)

	if cs.LaunchMissile(9999) {
		t.Error("LaunchMissile() accepted a missing target")
	}
	if !cs.LaunchMissile(target) {
		t.Fatal("LaunchMissile() = false")
	}
	if w.ecs.GameState.Missiles != 0 || w.ecs.GameState.Stats.MissilesFired != 1 {
		t.Errorf("missiles=%d fired=%d", w.ecs.GameState.Missiles, w.ecs.GameState.Stats.MissilesFired)
	}
	if cs.LaunchMissile(target) {
		t.Error("LaunchMissile() succeeded with an empty stock")
	}

	var missile *component.Projectile
	for id, p := range w.ecs.Projectiles {
		missile = p
		if _, ok := w.ecs.MissileTrails[id]; !ok {
			t.Error("missile has no trail")
		}
		// Ставим ракету прямо на цель
		w.ecs.Positions[id].X, w.ecs.Positions[id].Y = 100, 100
	}
	if missile == nil || !missile.IsMissile || missile.Damage != 60 {
		t.Fatalf("missile = %+v, want IsMissile with 60 damage", missile)
	}

	ps.Update(0.01)
	if got := w.health(target); got != 40 {
		t.Errorf("target health = %v, want 40", got)
	}
	if got := w.health(bystander); !almostEqual(got, 76) {
		t.Errorf("bystander health = %v, want 76", got)
	}
	if len(w.ecs.Explosions) != 1 {
		t.Errorf("explosions = %d, want 1", len(w.ecs.Explosions))
	}
	if w.count(event.MissileLaunched) != 1 || w.count(event.MissileExploded) != 1 {
		t.Errorf("events = %v", w.events)
	}
}

func TestRemoveEnemyClearsReferences(t *testing.T) {
	w := newWorld(t)
	cs := NewCombatSystem(w.ecs, w.dispatcher)
	_, jt := w.addTower(t, "jammer", 0, 0)
	_, ct := w.addTower(t, "hpm", 0, 0)
	id := w.addEnemy(defs.EnemyFPV, 50, 0, 100)

	cs.Update(0.1)
	w.ecs.GameState.TargetingMode = true
	w.ecs.GameState.SelectedEnemy = id

	RemoveEnemy(w.ecs, id)

	if w.ecs.IsEnemyAlive(id) {
		t.Error("enemy still alive")
	}
	if len(jt.Behavior.(*component.Jammer).Targets) != 0 {
		t.Error("jammer kept removed target")
	}
	if c := ct.Behavior.(*component.Cone); c.TargetID != 0 || len(c.Affected) != 0 {
		t.Errorf("cone kept removed target: %+v", c)
	}
	if w.ecs.GameState.SelectedEnemy != 0 || w.ecs.GameState.TargetingMode {
		t.Error("removing the selected enemy must clear the selection and exit targeting mode")
	}
	if len(w.ecs.JammingEffects) != 0 {
		t.Error("jamming effect kept for removed target")
	}
}
