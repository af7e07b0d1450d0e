package safezone

import (
	"fmt"

	"github.com/vovakirdan/safezone/internal/core"
)

// Visual characters for rendering
const (
	IslandChar  = '·'
	ShoreChar   = '∙'
	HitboxChar  = '░'
	PlayerGlyph = '@'
)

// view maps arena pixels to screen cells. Row 0 is reserved for the HUD.
type view struct {
	sx, sy float64
}

func newView(dst *core.Screen, arenaW, arenaH float64) view {
	rows := max(dst.Height()-1, 1)
	return view{
		sx: float64(dst.Width()) / arenaW,
		sy: float64(rows) / arenaH,
	}
}

func (v view) col(x float64) int { return int(x * v.sx) }
func (v view) row(y float64) int { return 1 + int(y*v.sy) }

// arena returns the arena coordinates of the center of a cell.
func (v view) arena(col, row int) (float64, float64) {
	return (float64(col) + 0.5) / v.sx, (float64(row-1) + 0.5) / v.sy
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.machine == nil {
		return
	}

	st := g.machine.State()
	cfg := g.machine.Config()

	if !st.ArenaVisible {
		g.drawTitle(dst)
		return
	}

	v := newView(dst, cfg.Arena.Width, cfg.Arena.Height)
	g.drawSafeZone(dst, v)

	if g.layer.Visible() {
		if g.runtime.ShowHitboxes {
			for _, a := range g.layer.Members() {
				g.drawHitbox(dst, v, a)
			}
		}
		for _, a := range g.layer.Members() {
			g.drawAgent(dst, v, a)
		}
	}

	// HUD
	dst.DrawText(1, 0, "Time to last: "+FormatTime(st.Display), core.ColorBrightWhite)
	lives := fmt.Sprintf("Lives: %d", st.Lives)
	dst.DrawText(dst.Width()-len(lives)-1, 0, lives, core.ColorBrightWhite)

	switch st.Banner {
	case BannerReady:
		drawCenteredMessage(dst,
			fmt.Sprintf("Last for %d seconds", int(cfg.Timing.Timer().Seconds())),
			fmt.Sprintf("Lives left: %d  |  Good luck!", st.Lives))
	case BannerDead:
		drawCenteredMessage(dst, "You died", fmt.Sprintf("Lives left: %d", st.Lives))
	case BannerWon:
		sub := ""
		if cfg.Session.WonConfirm {
			sub = "Press ENTER to continue"
		}
		drawCenteredMessage(dst, "You won!", sub)
	case BannerGameOver:
		drawCenteredMessage(dst, "Game over", "")
	}

	if st.Paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

func (g *Game) drawTitle(dst *core.Screen) {
	h := dst.Height()
	top := max(h/2-4, 0)

	dst.DrawTextCentered(top, "S A F E   Z O N E", core.ColorBrightYellow)
	dst.DrawTextCentered(top+2, "Stay inside the circle until the timer runs out.", core.ColorWhite)
	dst.DrawTextCentered(top+3, "Enemies push you around. Don't get pushed out.", core.ColorWhite)
	dst.DrawTextCentered(top+5, "Arrows / WASD to move  |  P to pause", core.ColorGray)
	dst.DrawTextCentered(top+7, "Press ENTER to start", core.ColorBrightGreen)

	if g.machine.Paused() {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawSafeZone shades every cell inside the safe circle and marks its rim.
func (g *Game) drawSafeZone(dst *core.Screen, v view) {
	sz := g.machine.Config().SafeZone
	rim := max(1/v.sx, 1/v.sy)

	rimColor := core.ColorGreen
	if g.runtime.ShowHitboxes {
		rimColor = core.ColorYellow
	}

	for row := 1; row < dst.Height(); row++ {
		for col := 0; col < dst.Width(); col++ {
			x, y := v.arena(col, row)
			d := core.Distance(x, y, sz.CenterX, sz.CenterY)
			switch {
			case d > sz.Radius:
				continue
			case sz.Radius-d < rim:
				dst.SetColored(col, row, ShoreChar, rimColor)
			default:
				dst.SetColored(col, row, IslandChar, core.ColorGray)
			}
		}
	}
}

func (g *Game) drawHitbox(dst *core.Screen, v view, a Agent) {
	r, ok := Bounds(a)
	if !ok {
		return
	}
	x0, y0 := v.col(r.X), v.row(r.Y)
	x1, y1 := v.col(r.Right()), v.row(r.Bottom())
	dst.FillRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1), HitboxChar, core.ColorYellow)
}

// drawAgent stamps the agent's texture centered on its hitbox center.
func (g *Game) drawAgent(dst *core.Screen, v view, a Agent) {
	r, ok := Bounds(a)
	if !ok {
		return
	}

	var sp *core.Sprite
	switch t := a.(type) {
	case *Player:
		sp = t.Texture()
		if sp == nil {
			sp = &core.Sprite{Rows: []string{string(PlayerGlyph)}, Color: core.ColorBrightYellow}
		}
	case *Enemy:
		sp = t.Texture()
	}
	if sp == nil {
		return
	}

	cx, cy := r.Center()
	w, h := sp.Size()
	dst.DrawSprite(v.col(cx)-w/2, v.row(cy)-h/2, sp)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleW := len([]rune(title))
	subW := len([]rune(subtitle))

	boxW := max(titleW, subW) + 4
	boxH := 5
	if subtitle == "" {
		boxH = 3
	}
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorWhite)

	dst.DrawText(boxX+(boxW-titleW)/2, boxY+1, title, core.ColorBrightYellow)
	if subtitle != "" {
		dst.DrawText(boxX+(boxW-subW)/2, boxY+3, subtitle, core.ColorWhite)
	}
}
