// internal/ui/info_panel.go
package ui

import (
	"fmt"

	"go-drone-defense/internal/config"
	"go-drone-defense/internal/types"
	"go-drone-defense/pkg/render"
)

const (
	panelWidth     = 200
	panelHeight    = 118
	panelMargin    = 8
	animationSpeed = 900.0 // пикселей в секунду
	lineHeight     = 16
)

// TowerInfo: данные выбранной башни для панели
type TowerInfo struct {
	Name        string
	Level       int
	Damage      float64
	Range       float64
	Unlimited   bool
	AttackSpeed float64
	UpgradeCost int
	CanUpgrade  bool
}

// InfoPanel выезжает сверху и показывает выбранную башню.
type InfoPanel struct {
	IsVisible     bool
	TargetEntity  types.EntityID
	X             float64
	currentY      float64
	targetY       float64
	UpgradeButton *Button
}

// NewInfoPanel creates a new information panel.
func NewInfoPanel() *InfoPanel {
	x := float64(config.ScreenWidth - panelWidth - config.HUDMargin)
	p := &InfoPanel{
		X:        x,
		currentY: -panelHeight,
		targetY:  -panelHeight,
	}
	p.UpgradeButton = NewButton(ButtonUpgrade, x+panelMargin, 0, panelWidth-2*panelMargin, config.ButtonHeight, "")
	p.placeButton()
	return p
}

func (p *InfoPanel) SetTarget(entityID types.EntityID) {
	p.TargetEntity = entityID
	p.IsVisible = true
	p.targetY = config.HUDMargin + 44
}

func (p *InfoPanel) Hide() {
	p.targetY = -panelHeight
}

// Update двигает панель к целевой позиции
func (p *InfoPanel) Update(deltaTime float64) {
	step := animationSpeed * deltaTime
	diff := p.targetY - p.currentY
	switch {
	case diff > step:
		p.currentY += step
	case diff < -step:
		p.currentY -= step
	default:
		p.currentY = p.targetY
	}
	if p.currentY <= -panelHeight {
		p.IsVisible = false
		p.TargetEntity = 0
	}
	p.placeButton()
}

// Contains: точка над панелью
func (p *InfoPanel) Contains(x, y float64) bool {
	return p.IsVisible && x >= p.X && x < p.X+panelWidth && y >= p.currentY && y < p.currentY+panelHeight
}

func (p *InfoPanel) placeButton() {
	p.UpgradeButton.Y = p.currentY + panelHeight - config.ButtonHeight - panelMargin
}

func (p *InfoPanel) Draw(c render.Canvas, info TowerInfo) {
	if !p.IsVisible {
		return
	}
	c.FillRect(p.X, p.currentY, panelWidth, panelHeight, config.OverlayColor)
	c.StrokeRect(p.X, p.currentY, panelWidth, panelHeight, 1, config.ButtonColor)

	x, y := p.X+panelMargin, p.currentY+panelMargin
	c.Text(x, y, fmt.Sprintf("%s  lvl %d", info.Name, info.Level), config.TextLightColor)
	y += lineHeight
	c.Text(x, y, fmt.Sprintf("Damage: %.1f", info.Damage), config.TextLightColor)
	y += lineHeight
	rangeText := fmt.Sprintf("Range: %.0f", info.Range)
	if info.Unlimited {
		rangeText = "Range: unlimited"
	}
	c.Text(x, y, rangeText, config.TextLightColor)
	y += lineHeight
	c.Text(x, y, fmt.Sprintf("Cooldown: %.2fs", info.AttackSpeed), config.TextLightColor)

	p.UpgradeButton.Label = fmt.Sprintf("Upgrade $%d [U]", info.UpgradeCost)
	p.UpgradeButton.State = ButtonNormal
	if !info.CanUpgrade {
		p.UpgradeButton.State = ButtonLocked
	}
	p.UpgradeButton.Draw(c)
}
