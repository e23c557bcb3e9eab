// internal/ui/shop_panel.go
package ui

import (
	"image"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"hex-defense/internal/config"
	"hex-defense/internal/shop"
	"hex-defense/pkg/hexmap"
	"hex-defense/pkg/render"
)

// ShopPanel рисует витрину магазина вдоль нижнего края экрана и кнопку
// переброса справа от неё.
type ShopPanel struct {
	Slots    []image.Rectangle
	Reroll   *Button
	Selected int // -1: ничего не выбрано
	fontFace font.Face
}

func NewShopPanel(fontFace font.Face) *ShopPanel {
	p := &ShopPanel{Selected: -1, fontFace: fontFace}
	total := config.ShopSlots*config.ShopSlotSize + (config.ShopSlots-1)*config.ShopSlotGap
	x := (config.ScreenWidth - total) / 2
	y := config.ScreenHeight - config.ShopSlotSize - config.HUDMarginY
	for i := 0; i < config.ShopSlots; i++ {
		p.Slots = append(p.Slots, image.Rect(x, y, x+config.ShopSlotSize, y+config.ShopSlotSize))
		x += config.ShopSlotSize + config.ShopSlotGap
	}
	p.Reroll = NewButton(image.Rect(x, y+config.ShopSlotSize/4, x+config.ShopSlotSize, y+config.ShopSlotSize*3/4),
		"Reroll "+strconv.Itoa(config.RerollCost)+"g", fontFace)
	return p
}

// SlotAt returns the slot under a screen point.
func (p *ShopPanel) SlotAt(x, y int) (int, bool) {
	pt := image.Pt(x, y)
	for i, r := range p.Slots {
		if pt.In(r) {
			return i, true
		}
	}
	return -1, false
}

// Contains reports whether a screen point is on the shop.
func (p *ShopPanel) Contains(x, y int) bool {
	_, ok := p.SlotAt(x, y)
	return ok || p.Reroll.Contains(x, y)
}

// Toggle selects slot i, or clears the selection when i is already selected.
func (p *ShopPanel) Toggle(i int) {
	if p.Selected == i {
		p.Selected = -1
		return
	}
	p.Selected = i
}

func (p *ShopPanel) Draw(screen *ebiten.Image, renderer *render.HexRenderer, items []shop.Item, gold, mouseX, mouseY int) {
	preview := hexmap.NewLayout(config.ShopPreviewSize, 0, 0)
	for i, r := range p.Slots {
		border := color.RGBA{80, 80, 100, 255}
		if i == p.Selected {
			border = config.ChainColor
		}
		vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), color.RGBA{20, 24, 40, 230}, false)
		vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 2, border, false)
		if i >= len(items) {
			continue
		}

		cx := float64(r.Min.X + r.Dx()/2)
		cy := float64(r.Min.Y + r.Dy()/2 - 6)
		for _, c := range items[i].Cells {
			ox, oy := preview.HexToPixel(c.Offset)
			renderer.DrawHexFillAt(screen, cx+ox, cy+oy, config.ShopPreviewSize-1, config.TurretColors[c.Type.Index()])
		}

		priceColor := config.TextLightColor
		if items[i].Cost > gold {
			priceColor = config.EndColor
		}
		price := strconv.Itoa(items[i].Cost) + "g"
		text.Draw(screen, price, p.fontFace, r.Min.X+6, r.Max.Y-6, priceColor)
	}
	p.Reroll.Disabled = gold < config.RerollCost
	p.Reroll.Draw(screen, mouseX, mouseY)
}
