// internal/state/game_state.go
package state

import (
	"image/color"
	"log/slog"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"hex-defense/internal/app"
	"hex-defense/internal/config"
	"hex-defense/internal/defs"
	"hex-defense/internal/event"
	"hex-defense/internal/ui"
	"hex-defense/internal/utils"
	"hex-defense/pkg/hexmap"
	"hex-defense/pkg/render"
)

// GameState — состояние игры
type GameState struct {
	sm        *StateMachine
	opts      app.Options
	session   *app.Session
	layout    hexmap.Layout
	renderer  *render.HexRenderer
	fontFace  font.Face
	hud       *ui.HUD
	shopPanel *ui.ShopPanel
	infoPanel *ui.InfoPanel
	indicator *ui.StateIndicator
	speed     *ui.SpeedButton
	hover     hexmap.Hex
	dragFrom  hexmap.Hex
	dragging  bool
	gameOver  bool
}

func NewGameState(sm *StateMachine, opts app.Options) *GameState {
	session := app.NewSession(opts)
	fontFace := basicfont.Face7x13

	mapColors := &render.MapColors{
		BackgroundColor: config.BackgroundColor,
		EmptyColor:      config.EmptyColor,
		PathColor:       config.PathColor,
		WallColor:       config.WallColor,
		TurretColor:     config.EmptyColor,
		StartColor:      config.StartColor,
		EndColor:        config.EndColor,
		TextLightColor:  config.TextLightColor,
		StrokeWidth:     float32(config.StrokeWidth),
	}
	layout := hexmap.NewLayout(config.HexSize, float64(config.ScreenWidth)/2, float64(config.ScreenHeight)/2-config.ShopSlotSize/2)
	library := opts.Library
	if library == nil {
		library = defs.DefaultLibrary()
	}

	gs := &GameState{
		sm:        sm,
		opts:      opts,
		session:   session,
		layout:    layout,
		renderer:  render.NewHexRenderer(layout, config.ScreenWidth, config.ScreenHeight, fontFace, mapColors),
		fontFace:  fontFace,
		hud:       ui.NewHUD(fontFace),
		shopPanel: ui.NewShopPanel(fontFace),
		infoPanel: ui.NewInfoPanel(fontFace, library),
		indicator: ui.NewStateIndicator(float32(config.ScreenWidth-config.HUDMarginX*3), float32(config.HUDMarginY*3), 14),
		speed:     ui.NewSpeedButton(float32(config.ScreenWidth-config.HUDMarginX*7), float32(config.HUDMarginY*3), 10,
			[]color.RGBA{config.TextLightColor, config.ChainColor, config.SellHoldColor}),
	}

	session.Subscribe(event.GridChanged, event.ListenerFunc(func(event.Event) {
		gs.renderer.Invalidate()
	}))
	session.Subscribe(event.GameOver, event.ListenerFunc(func(event.Event) {
		gs.gameOver = true
	}))
	return gs
}

func (g *GameState) Enter() {}

func (g *GameState) Exit() {}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g, "PAUSED"))
		return
	}

	x, y := ebiten.CursorPosition()
	g.hover = g.layout.PixelToHex(float64(x), float64(y))
	g.session.PointerMoved(g.hover)

	g.handleKeys()
	g.handleMouse(x, y)

	g.session.Update(deltaTime * g.speed.Multiplier())
	g.infoPanel.Update()

	if g.gameOver {
		slog.Info("game finished", "session", g.session.ID.String(), "score", g.session.Score())
		g.sm.SetState(NewPauseState(g.sm, g, "GAME OVER"))
	}
}

func (g *GameState) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Reroll()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.CommitChain()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.speed.ToggleState()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		g.session.CancelChain()
		g.shopPanel.Selected = -1
	}
	for i, key := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3} {
		if i < config.ShopSlots && inpututil.IsKeyJustPressed(key) {
			g.shopPanel.Toggle(i)
		}
	}
}

func (g *GameState) handleMouse(x, y int) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		switch {
		case g.speed.Contains(x, y):
			g.speed.ToggleState()
		case g.shopPanel.Reroll.Contains(x, y):
			g.session.Reroll()
		case g.shopPanel.Contains(x, y):
			if i, ok := g.shopPanel.SlotAt(x, y); ok {
				g.shopPanel.Toggle(i)
			}
		case g.infoPanel.Contains(x, y):
		default:
			g.handleBoardClick(g.hover)
		}
	}

	// Перенос: отпустить левую кнопку над другой клеткой.
	if g.dragging && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.dragging = false
		if g.hover != g.dragFrom {
			g.session.MoveTurret(g.dragFrom, g.hover)
		}
	}

	// Продажа: удерживать правую кнопку над башней.
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.session.BeginSellHold(g.hover)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight) {
		g.session.ReleaseSellHold()
	}
}

func (g *GameState) handleBoardClick(hex hexmap.Hex) {
	if !g.session.Grid().Contains(hex) {
		g.infoPanel.Hide()
		return
	}
	if slot := g.shopPanel.Selected; slot >= 0 {
		if g.session.Buy(slot, hex) {
			g.shopPanel.Selected = -1
		}
		return
	}

	turret, ok := g.session.TurretAt(hex)
	if !ok {
		g.session.CancelChain()
		g.infoPanel.Hide()
		return
	}
	g.infoPanel.SetTarget(turret.ID)
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		if !g.session.ExtendChain(hex) {
			g.session.BeginChain(hex)
		}
		return
	}
	g.dragFrom, g.dragging = hex, true
}

func (g *GameState) Draw(screen *ebiten.Image) {
	snap := g.session.Snapshot()
	g.renderer.DrawBoard(screen, snap.Cells, snap.Start, snap.End)

	g.drawPlacementGhost(screen, snap)
	g.drawTurrets(screen, snap)
	g.drawEnemies(screen, snap)
	for _, shot := range snap.Shots {
		g.renderer.DrawBeam(screen, shot.From, shot.To, config.ChainColor)
	}

	x, y := ebiten.CursorPosition()
	g.hud.Draw(screen, snap)
	g.indicator.Draw(screen, snap.Wave.Phase)
	g.speed.Draw(screen)
	g.shopPanel.Draw(screen, g.renderer, snap.Shop, snap.Gold, x, y)
	g.infoPanel.Draw(screen, snap.Turrets)
}

// rangePixels converts a cube-space range to screen pixels.
func (g *GameState) rangePixels(r float64) float32 {
	return float32(r * math.Sqrt(3) / math.Sqrt2 * g.layout.Size)
}

func (g *GameState) drawTurrets(screen *ebiten.Image, snap app.Snapshot) {
	radius := float32(config.HexSize * config.TurretRadiusFactor)
	for _, t := range snap.Turrets {
		c := config.TurretColors[t.Type.Index()]
		g.renderer.DrawDisc(screen, t.Hex.Frac(), radius, c)
		if t.Hex == g.hover || t.ID == g.infoPanel.TargetTurret {
			g.renderer.DrawRing(screen, t.Hex, g.rangePixels(t.Range), render.WithAlpha(c, 160))
		}
	}
	for _, h := range snap.Chain {
		g.renderer.DrawHexOutline(screen, h, g.layout.Size-2, config.ChainColor, 3)
	}
	if g.dragging && g.hover != g.dragFrom {
		if t, ok := g.session.TurretAt(g.dragFrom); ok {
			c := config.TurretColors[t.Type.Index()]
			if !hexmap.CanMove(g.session.Grid(), g.dragFrom, g.hover) {
				c = render.DarkenColor(c)
			}
			g.renderer.DrawDisc(screen, g.hover.Frac(), radius, render.WithAlpha(c, 140))
		}
	}
	if hex, progress, ok := g.session.SellHoldProgress(); ok {
		x, y := g.layout.HexToPixel(hex)
		vector.StrokeCircle(screen, float32(x), float32(y), radius+4, 3, config.SellHoldColor, true)
		g.renderer.DrawDisc(screen, hex.Frac(), utils.Lerp(0, float32(radius), float32(progress)), config.SellHoldColor)
	}
}

func (g *GameState) drawEnemies(screen *ebiten.Image, snap app.Snapshot) {
	radius := float32(config.HexSize * config.EnemyRadiusFactor)
	barW := radius * 2
	for _, e := range snap.Enemies {
		g.renderer.DrawDisc(screen, e.Pos, radius, config.EnemyColor)
		x, y := g.layout.FracToPixel(e.Pos)
		bx, by := float32(x)-radius, float32(y)-radius-6
		vector.DrawFilledRect(screen, bx, by, barW, 3, config.HPBackColor, false)
		vector.DrawFilledRect(screen, bx, by, utils.Lerp(0, barW, float32(e.HPFraction)), 3, config.HPFrontColor, false)
	}
}

func (g *GameState) drawPlacementGhost(screen *ebiten.Image, snap app.Snapshot) {
	slot := g.shopPanel.Selected
	if slot < 0 || slot >= len(snap.Shop) || !g.session.Grid().Contains(g.hover) {
		return
	}
	ok := g.session.CanBuy(slot, g.hover)
	for _, c := range snap.Shop[slot].Cells {
		base := config.TurretColors[c.Type.Index()]
		if !ok {
			base = render.DarkenColor(base)
		}
		fill := render.WithAlpha(base, 140)
		g.renderer.DrawHexFill(screen, g.hover.Add(c.Offset), g.layout.Size-3, fill)
	}
}
