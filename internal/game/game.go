package game

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	// Internal render resolution. The window scales this up, so the
	// column count stays fixed regardless of window size.
	renderW = 640
	renderH = 400

	simDT = 1.0 / 60.0

	// Mouse-look sensitivity in radians per pixel of cursor travel.
	mouseSensitivity = 0.0035
)

// Mode is the top-level shell state.
type Mode int

const (
	ModeStart Mode = iota
	ModePlaying
	ModePaused
	ModeVictory
	ModeDefeat
)

// Game is the interactive shell: it owns the menu flow, translates
// device input into InputState, steps the world, and presents the
// software framebuffer through ebiten.
type Game struct {
	mode     Mode
	levels   []*Level
	selected int

	world    *World
	renderer *Renderer
	frameImg *ebiten.Image

	audio    AudioSink
	musicOn  bool
	volume   float64
	seedBase int64

	showMinimap bool
	showFPS     bool

	prevKeys   map[ebiten.Key]bool
	prevMouseX int
	mouseReady bool // first frame after capture has no usable delta
}

// New builds the shell in the start-screen state. audio may be nil,
// in which case all sound is dropped.
func New(audio AudioSink, seed int64) *Game {
	if audio == nil {
		audio = NopAudio{}
	}
	g := &Game{
		mode:     ModeStart,
		levels:   BuiltinLevels(),
		audio:    audio,
		musicOn:  true,
		volume:   0.8,
		seedBase: seed,
		prevKeys: make(map[ebiten.Key]bool),
	}
	g.audio.SetVolume(ChannelMusic, g.volume)
	g.audio.SetVolume(ChannelEffects, g.volume)
	return g
}

// startLevel resets the world for the selected level and enters play.
func (g *Game) startLevel(idx int) {
	lvl := g.levels[idx]
	g.selected = idx
	g.world = NewWorld(lvl, g.audio, g.seedBase+int64(idx))
	g.renderer = NewRenderer(renderW, renderH, NewTextureStore())
	if g.frameImg == nil {
		g.frameImg = ebiten.NewImage(renderW, renderH)
	}
	if g.musicOn {
		g.audio.SetMusicTrack(lvl.MusicTrack)
	}
	g.mode = ModePlaying
	g.mouseReady = false
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)
}

func (g *Game) leavePlay(to Mode) {
	g.mode = to
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
}

// keyJust reports an edge-triggered press, recording the key for the
// next frame's comparison.
func (g *Game) keyJust(cur map[ebiten.Key]bool, k ebiten.Key) bool {
	cur[k] = ebiten.IsKeyPressed(k)
	return cur[k] && !g.prevKeys[k]
}

func (g *Game) Update() error {
	cur := map[ebiten.Key]bool{}
	defer func() { g.prevKeys = cur }()

	switch g.mode {
	case ModeStart:
		g.updateStart(cur)
	case ModePlaying:
		g.updatePlaying(cur)
	case ModePaused:
		g.updatePaused(cur)
	case ModeVictory, ModeDefeat:
		if g.keyJust(cur, ebiten.KeyEnter) || g.keyJust(cur, ebiten.KeySpace) {
			g.mode = ModeStart
		}
		if g.keyJust(cur, ebiten.KeyEscape) {
			return ebiten.Termination
		}
	}
	return nil
}

func (g *Game) updateStart(cur map[ebiten.Key]bool) {
	if g.keyJust(cur, ebiten.KeyArrowUp) || g.keyJust(cur, ebiten.KeyW) {
		g.selected = (g.selected + len(g.levels) - 1) % len(g.levels)
	}
	if g.keyJust(cur, ebiten.KeyArrowDown) || g.keyJust(cur, ebiten.KeyS) {
		g.selected = (g.selected + 1) % len(g.levels)
	}
	if g.keyJust(cur, ebiten.KeyEnter) || g.keyJust(cur, ebiten.KeySpace) {
		g.startLevel(g.selected)
	}
}

func (g *Game) updatePaused(cur map[ebiten.Key]bool) {
	if g.keyJust(cur, ebiten.KeyEscape) || g.keyJust(cur, ebiten.KeyP) {
		g.mode = ModePlaying
		g.mouseReady = false
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	}
	if g.keyJust(cur, ebiten.KeyQ) {
		g.audio.SetMusicTrack(MusicOff)
		g.leavePlay(ModeStart)
	}
}

func (g *Game) updatePlaying(cur map[ebiten.Key]bool) {
	if g.keyJust(cur, ebiten.KeyEscape) || g.keyJust(cur, ebiten.KeyP) {
		g.leavePlay(ModePaused)
		return
	}

	var in InputState
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		in.Move.Y += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		in.Move.Y -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		in.Move.X += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		in.Move.X -= 1
	}

	// Keyboard turn.
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		in.LookDelta += playerTurnSpeed * simDT
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		in.LookDelta -= playerTurnSpeed * simDT
	}

	// Mouse look. The frame after capture is skipped so the warp-in
	// jump does not spin the camera.
	mx, _ := ebiten.CursorPosition()
	if g.mouseReady {
		in.LookDelta += float64(mx-g.prevMouseX) * mouseSensitivity
	}
	g.prevMouseX = mx
	g.mouseReady = true

	in.AttackPressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) ||
		ebiten.IsKeyPressed(ebiten.KeySpace)

	if g.keyJust(cur, ebiten.KeyM) {
		g.showMinimap = !g.showMinimap
	}
	if g.keyJust(cur, ebiten.KeyF) {
		g.showFPS = !g.showFPS
	}
	if g.keyJust(cur, ebiten.KeyN) {
		g.musicOn = !g.musicOn
		if g.musicOn {
			g.audio.SetMusicTrack(g.levels[g.selected].MusicTrack)
		} else {
			g.audio.SetMusicTrack(MusicOff)
		}
	}
	if g.keyJust(cur, ebiten.KeyEqual) {
		g.setVolume(g.volume + 0.1)
	}
	if g.keyJust(cur, ebiten.KeyMinus) {
		g.setVolume(g.volume - 0.1)
	}
	if g.keyJust(cur, ebiten.KeyF12) {
		if err := CopySnapshot(g.world); err != nil {
			log.Printf("snapshot copy failed: %v", err)
		}
	}

	g.world.Step(in, simDT)

	if g.world.Victory {
		g.audio.SetMusicTrack(MusicOff)
		g.leavePlay(ModeVictory)
	} else if g.world.Defeated {
		g.audio.SetMusicTrack(MusicOff)
		g.leavePlay(ModeDefeat)
	}
}

func (g *Game) setVolume(v float64) {
	g.volume = math.Min(1.0, math.Max(0.0, v))
	g.audio.SetVolume(ChannelMusic, g.volume)
	g.audio.SetVolume(ChannelEffects, g.volume)
}

func (g *Game) Draw(screen *ebiten.Image) {
	switch g.mode {
	case ModeStart:
		g.drawStart(screen)
	case ModePlaying:
		g.drawWorldFrame(screen)
		g.drawHUD(screen)
	case ModePaused:
		g.drawWorldFrame(screen)
		g.drawCenterPanel(screen, "PAUSED", []string{
			"Esc / P  resume",
			"Q        quit to menu",
		})
	case ModeVictory:
		g.drawWorldFrame(screen)
		g.drawCenterPanel(screen, "YOU ESCAPED", []string{
			fmt.Sprintf("frames survived: %d", g.world.Frame),
			fmt.Sprintf("foes slain: %d", g.slainCount()),
			"",
			"Enter  back to menu",
		})
	case ModeDefeat:
		g.drawWorldFrame(screen)
		g.drawCenterPanel(screen, "YOU DIED", []string{
			fmt.Sprintf("frames survived: %d", g.world.Frame),
			"",
			"Enter  back to menu",
		})
	}
}

func (g *Game) slainCount() int {
	n := 0
	for i := range g.world.Enemies {
		if !g.world.Enemies[i].Alive() {
			n++
		}
	}
	return n
}

// drawWorldFrame renders the world into the software framebuffer and
// blits it to the screen. The minimap is composited into the buffer
// before upload so it shares the frame's pixel pipeline.
func (g *Game) drawWorldFrame(screen *ebiten.Image) {
	if g.world == nil || g.renderer == nil {
		screen.Fill(color.RGBA{R: 10, G: 4, B: 6, A: 255})
		return
	}
	g.renderer.RenderFrame(g.world)
	fb := g.renderer.Framebuffer()
	if g.showMinimap {
		DrawMinimap(fb, g.world)
	}
	g.frameImg.WritePixels(fb.Pix)
	screen.DrawImage(g.frameImg, nil)
}

func (g *Game) drawStart(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 10, G: 4, B: 6, A: 255})

	drawTitleText(screen, "D U S K H A L L", renderW/2, 70)
	drawCenteredText(screen, "reach the glowing gate", renderW/2, 100)

	for i, lvl := range g.levels {
		y := 160 + i*40
		label := lvl.Name
		if i == g.selected {
			vector.FillRect(screen, 120, float32(y-6), renderW-240, 30,
				color.RGBA{R: 70, G: 18, B: 22, A: 255}, false)
			label = "> " + label
		}
		drawCenteredText(screen, label, renderW/2, y)
		drawCenteredText(screen, lvl.Description, renderW/2, y+13)
	}

	drawCenteredText(screen, "W/S select   Enter start", renderW/2, renderH-30)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	p := g.world.Player

	// Health bar, bottom left.
	const barW, barH = 140, 10
	bx, by := float32(12), float32(renderH-24)
	frac := float32(p.Health) / float32(playerMaxHealth)
	if frac < 0 {
		frac = 0
	}
	vector.FillRect(screen, bx-2, by-2, barW+4, barH+4,
		color.RGBA{R: 12, G: 8, B: 8, A: 220}, false)
	vector.FillRect(screen, bx, by, barW*frac, barH,
		color.RGBA{R: 190, G: 40, B: 40, A: 255}, false)
	drawText(screen, fmt.Sprintf("HP %d", p.Health), int(bx)+barW+10, renderH-26)

	// Enemy count, bottom right.
	alive := g.world.AliveEnemies()
	drawText(screen, fmt.Sprintf("foes %d", alive), renderW-80, renderH-26)

	if g.showFPS {
		drawText(screen, fmt.Sprintf("%.0f fps", ebiten.ActualFPS()), renderW-80, 12)
	}

	// Hurt flash.
	if p.HurtTimer > hurtInvulnTime-0.25 {
		a := uint8(90 * (p.HurtTimer - (hurtInvulnTime - 0.25)) / 0.25)
		vector.FillRect(screen, 0, 0, renderW, renderH,
			color.RGBA{R: a, A: a}, false)
	}

	g.drawCrosshair(screen)
}

// drawCrosshair renders the center reticle, widening briefly while an
// attack swing is in flight.
func (g *Game) drawCrosshair(screen *ebiten.Image) {
	cx, cy := float32(renderW)/2, float32(renderH)/2
	gap := float32(3)
	if g.world.Player.SwingTimer > 0 {
		gap += float32(g.world.Player.SwingTimer/swingDuration) * 6
	}
	c := color.RGBA{R: 230, G: 220, B: 210, A: 200}
	vector.StrokeLine(screen, cx-gap-5, cy, cx-gap, cy, 1, c, false)
	vector.StrokeLine(screen, cx+gap, cy, cx+gap+5, cy, 1, c, false)
	vector.StrokeLine(screen, cx, cy-gap-5, cx, cy-gap, 1, c, false)
	vector.StrokeLine(screen, cx, cy+gap, cx, cy+gap+5, 1, c, false)
}

func (g *Game) drawCenterPanel(screen *ebiten.Image, title string, lines []string) {
	panelW := float32(280)
	panelH := float32(60 + len(lines)*14)
	px := (float32(renderW) - panelW) / 2
	py := (float32(renderH) - panelH) / 2
	vector.FillRect(screen, px, py, panelW, panelH,
		color.RGBA{R: 14, G: 8, B: 10, A: 235}, false)
	vector.StrokeRect(screen, px, py, panelW, panelH,
		1, color.RGBA{R: 120, G: 40, B: 48, A: 255}, false)

	drawTitleText(screen, title, renderW/2, int(py)+22)
	for i, l := range lines {
		drawCenteredText(screen, l, renderW/2, int(py)+48+i*14)
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return renderW, renderH
}
