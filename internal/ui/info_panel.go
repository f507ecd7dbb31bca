// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"selection-issue/internal/config"
	"selection-issue/internal/pick"
	"selection-issue/internal/selection"
	"selection-issue/internal/utils"
)

const (
	panelMargin    = 5
	animationRate  = 0.25
	columnSpacing  = 360
)

// InfoPanel: выезжающая снизу панель с данными о драйвере и последнем выборе.
type InfoPanel struct {
	IsVisible     bool
	fontFace      font.Face
	titleFontFace font.Face
	currentY      float64
	targetY       float64
	screenHeight  int

	Vendor   string
	Renderer string
	Quirk    string
	Strategy string

	last    *pick.Result
	lastErr error
}

// NewInfoPanel creates a new information panel.
func NewInfoPanel(font, titleFont font.Face, screenHeight int) *InfoPanel {
	return &InfoPanel{
		fontFace:      font,
		titleFontFace: titleFont,
		currentY:      float64(screenHeight),
		targetY:       float64(screenHeight),
		screenHeight:  screenHeight,
	}
}

func (p *InfoPanel) Show() {
	p.IsVisible = true
	p.targetY = float64(p.screenHeight - config.PanelHeight)
}

func (p *InfoPanel) Hide() {
	p.targetY = float64(p.screenHeight)
}

func (p *InfoPanel) Toggle() {
	if p.IsVisible && p.targetY < float64(p.screenHeight) {
		p.Hide()
		return
	}
	p.Show()
}

// Resize переносит панель к новому нижнему краю без анимации.
func (p *InfoPanel) Resize(screenHeight int) {
	shown := p.IsVisible && p.targetY < float64(p.screenHeight)
	p.screenHeight = screenHeight
	p.targetY = float64(screenHeight)
	if shown {
		p.targetY = float64(screenHeight - config.PanelHeight)
	}
	p.currentY = p.targetY
}

func (p *InfoPanel) SetResult(res pick.Result, err error) {
	p.last = &res
	p.lastErr = err
}

// Contains сообщает, лежит ли точка экрана на видимой части панели.
func (p *InfoPanel) Contains(x, y int) bool {
	return p.IsVisible && float64(y) >= p.currentY
}

func (p *InfoPanel) Update() {
	if p.currentY == p.targetY {
		return
	}
	p.currentY = utils.Approach(p.currentY, p.targetY, animationRate, 0.5)
	if p.currentY >= float64(p.screenHeight) {
		p.IsVisible = false
	}
}

// Lines возвращает две колонки текста панели.
func (p *InfoPanel) Lines() (left, right []string) {
	left = []string{
		fmt.Sprintf("Vendor: %s", p.Vendor),
		fmt.Sprintf("Renderer: %s", p.Renderer),
		fmt.Sprintf("Quirk: %s   Strategy: %s", p.Quirk, p.Strategy),
	}
	if p.last == nil {
		right = []string{"Click a circle to pick it"}
		return left, right
	}
	selected := "none"
	if p.last.Selected != selection.None {
		selected = fmt.Sprintf("circle %d", p.last.Selected)
	}
	right = []string{
		fmt.Sprintf("Click: %d,%d  ->  pick: %d,%d", p.last.Device.X, p.last.Device.Y, p.last.PickPoint.X, p.last.PickPoint.Y),
		fmt.Sprintf("Hits: %d   Selected: %s", p.last.Hits, selected),
	}
	if p.lastErr != nil {
		right = append(right, fmt.Sprintf("Error: %v", p.lastErr))
	}
	return left, right
}

func (p *InfoPanel) Draw(screen *ebiten.Image) {
	if !p.IsVisible && p.currentY >= float64(p.screenHeight) {
		return
	}
	w := screen.Bounds().Dx()
	panelRect := image.Rect(
		panelMargin,
		int(p.currentY)+panelMargin,
		w-panelMargin,
		int(p.currentY)+config.PanelHeight-panelMargin,
	)

	vector.DrawFilledRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), config.PanelColor, true)
	vector.StrokeRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), float32(config.UIBorderWidth), config.UIBorderColor, true)

	left, right := p.Lines()
	x := panelRect.Min.X + config.PanelPadding
	y := panelRect.Min.Y + config.PanelPadding + config.TitleFontSize
	for i, line := range left {
		face := p.fontFace
		if i == 0 {
			face = p.titleFontFace
		}
		text.Draw(screen, line, face, x, y+i*config.PanelLineHeight+i*2, config.TextLightColor)
	}
	for i, line := range right {
		text.Draw(screen, line, p.fontFace, x+columnSpacing, y+i*config.PanelLineHeight+i*2, config.TextDimColor)
	}
}
