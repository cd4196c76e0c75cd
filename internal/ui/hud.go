// internal/ui/hud.go
package ui

import (
	"fmt"
	"strings"

	"go-drone-defense/internal/component"
	"go-drone-defense/internal/config"
	"go-drone-defense/internal/defs"
	"go-drone-defense/pkg/render"
)

const (
	ButtonStartWave     = "start"
	ButtonBuyMissile    = "buy"
	ButtonBuyBundle     = "bundle"
	ButtonTargeting     = "target"
	ButtonSpeed         = "speed"
	ButtonUpgrade       = "upgrade"
	towerButtonPrefix   = "tower:"
	hudSpeedButtonWidth = 60
)

// TowerButtonID: ID кнопки палитры для башни
func TowerButtonID(defID string) string {
	return towerButtonPrefix + defID
}

// TowerFromButton возвращает ID башни, если кнопка из палитры
func TowerFromButton(id string) (string, bool) {
	return strings.CutPrefix(id, towerButtonPrefix)
}

// HUDData: снимок состояния, который показывает HUD
type HUDData struct {
	Money         int
	Missiles      int
	MissilePrice  int
	Wave          int
	MaxWaves      int
	WaveActive    bool
	BaseHealth    int
	BaseMaxHealth int
	Phase         component.Phase
	Targeting     bool
	SelectedTower string
	Message       string
}

// HUD: верхняя строка состояния и две строки кнопок внизу экрана
type HUD struct {
	Palette    []*Button
	StartWave  *Button
	BuyMissile *Button
	BuyBundle  *Button
	Targeting  *Button
	Speed      *SpeedButton
	Wave       *WaveIndicator
	State      *StateIndicator
	BaseHealth *BaseHealthIndicator
	Info       *InfoPanel

	costs map[string]int
}

func NewHUD(lib *defs.Library) *HUD {
	h := &HUD{costs: make(map[string]int)}

	step := float64(config.ButtonWidth + config.ButtonSpacing)
	paletteY := float64(config.ScreenHeight - config.ButtonHeight - config.HUDMargin)
	for i, id := range lib.Palette {
		def := lib.Towers[id]
		h.costs[id] = def.Cost
		label := fmt.Sprintf("%s %s $%d", def.Hotkey, def.Name, def.Cost)
		h.Palette = append(h.Palette, NewButton(TowerButtonID(id), config.HUDMargin+float64(i)*step, paletteY, config.ButtonWidth, config.ButtonHeight, label))
	}

	actionY := paletteY - config.ButtonHeight - config.ButtonSpacing
	x := float64(config.HUDMargin)
	next := func(id, label string) *Button {
		b := NewButton(id, x, actionY, config.ButtonWidth, config.ButtonHeight, label)
		x += step
		return b
	}
	h.StartWave = next(ButtonStartWave, "Start wave [W]")
	h.BuyMissile = next(ButtonBuyMissile, "")
	h.BuyBundle = next(ButtonBuyBundle, "")
	h.Targeting = next(ButtonTargeting, "Target [Space]")
	h.Speed = NewSpeedButton(x, actionY, hudSpeedButtonWidth, config.ButtonHeight, []float64{1, 2, 3})

	h.Wave = NewWaveIndicator(config.ScreenWidth/2, config.HUDMargin)
	h.State = NewStateIndicator(config.ScreenWidth-config.HUDMargin-8, config.HUDMargin+8, 8)
	h.BaseHealth = NewBaseHealthIndicator(config.HUDMargin, config.HUDMargin+2*config.HUDLineHeight)
	h.Info = NewInfoPanel()
	return h
}

// Buttons: все кнопки в порядке проверки кликов
func (h *HUD) Buttons() []*Button {
	buttons := []*Button{h.StartWave, h.BuyMissile, h.BuyBundle, h.Targeting, h.Speed.Button}
	if h.Info.IsVisible {
		buttons = append(buttons, h.Info.UpgradeButton)
	}
	return append(buttons, h.Palette...)
}

// ButtonAt возвращает кнопку под точкой или nil
func (h *HUD) ButtonAt(x, y float64) *Button {
	for _, b := range h.Buttons() {
		if b.Contains(x, y) {
			return b
		}
	}
	return nil
}

// Contains: точка над любым элементом HUD, который перехватывает клики
func (h *HUD) Contains(x, y float64) bool {
	return h.ButtonAt(x, y) != nil || h.Info.Contains(x, y)
}

// Refresh обновляет подписи и состояния кнопок
func (h *HUD) Refresh(d HUDData) {
	building := !d.Phase.Ended()
	for _, b := range h.Palette {
		id, _ := TowerFromButton(b.ID)
		switch {
		case id == d.SelectedTower:
			b.State = ButtonActive
		case !building || d.Money < h.costs[id]:
			b.State = ButtonLocked
		default:
			b.State = ButtonNormal
		}
	}

	h.StartWave.State = ButtonNormal
	if d.WaveActive || !building {
		h.StartWave.State = ButtonLocked
	}

	h.BuyMissile.Label = fmt.Sprintf("Missile $%d [B]", d.MissilePrice)
	h.BuyBundle.Label = fmt.Sprintf("%dx $%d [N]", config.MissileBundle, d.MissilePrice*config.MissileBundle)
	// Ракеты продаются только между волнами
	shop := building && !d.WaveActive
	h.BuyMissile.State = lockedUnless(shop && d.Money >= d.MissilePrice)
	h.BuyBundle.State = lockedUnless(shop && d.Money >= d.MissilePrice*config.MissileBundle)

	switch {
	case d.Targeting:
		h.Targeting.State = ButtonActive
	case d.Missiles <= 0 || !building:
		h.Targeting.State = ButtonLocked
	default:
		h.Targeting.State = ButtonNormal
	}
}

func lockedUnless(ok bool) ButtonState {
	if ok {
		return ButtonNormal
	}
	return ButtonLocked
}

func (h *HUD) Draw(c render.Canvas, d HUDData, info TowerInfo) {
	x, y := float64(config.HUDMargin), float64(config.HUDMargin)
	c.Text(x, y, fmt.Sprintf("$%d", d.Money), config.TextLightColor)
	missileColor := config.TextLightColor
	if d.Missiles == 0 {
		missileColor = config.TextWarningColor
	}
	c.Text(x, y+config.HUDLineHeight, fmt.Sprintf("Missiles: %d", d.Missiles), missileColor)

	h.BaseHealth.Draw(c, d.BaseHealth, d.BaseMaxHealth)
	h.Wave.Draw(c, d.Wave, d.MaxWaves)
	h.State.Draw(c, d.Phase)

	if d.Targeting {
		msg := "TARGETING: click a drone to launch a missile"
		tw, _ := c.MeasureText(msg)
		c.Text((config.ScreenWidth-tw)/2, config.HUDMargin+config.HUDLineHeight, msg, config.TargetingColor)
	}
	if d.Message != "" {
		tw, _ := c.MeasureText(d.Message)
		c.Text((config.ScreenWidth-tw)/2, config.HUDMargin+2*config.HUDLineHeight, d.Message, config.TextWarningColor)
	}

	for _, b := range h.Buttons() {
		if b != h.Info.UpgradeButton {
			b.Draw(c)
		}
	}
	h.Info.Draw(c, info)
}
