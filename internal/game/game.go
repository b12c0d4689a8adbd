package game

import (
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/gesture-nebula/internal/config"
	"github.com/iburimskiy/gesture-nebula/internal/control"
	"github.com/iburimskiy/gesture-nebula/internal/gesture"
)

// LandmarkSource delivers the hand seen in the current frame, or nil when
// no hand is visible.
type LandmarkSource interface {
	Poll() gesture.Snapshot
}

// Game is the ebiten.Game driving the nebula.
type Game struct {
	cfg    config.Config
	log    *slog.Logger
	ctrl   *control.Controller
	source LandmarkSource

	canvas *canvas
	music  *soundtrack

	showHand bool
	lastErr  error
}

// New builds the game. source may be nil, in which case only the keyboard
// controls the nebula.
func New(cfg config.Config, ctrl *control.Controller, source LandmarkSource, log *slog.Logger) *Game {
	g := &Game{
		cfg:      cfg,
		log:      log,
		ctrl:     ctrl,
		source:   source,
		canvas:   newCanvas(cfg.Width, cfg.Height),
		music:    newSoundtrack(log, config.VisualRingSize),
		showHand: source != nil,
	}
	if source != nil {
		ctrl.SetStatus("Gesture mode - open or close your hand, swipe to switch")
	}
	return g
}

// PlaySoundtrack starts looping the file at path.
func (g *Game) PlaySoundtrack(path string) error {
	return g.music.play(path)
}

// Close stops audio and releases files.
func (g *Game) Close() {
	g.music.close()
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	for _, cmd := range pressedCommands(inpututil.IsKeyJustPressed) {
		g.ctrl.Command(cmd)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.music.togglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHand = !g.showHand
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		if err := g.music.choose(); err != nil {
			g.fail(err)
		}
	}

	if g.source != nil {
		g.ctrl.Observe(g.source.Poll(), time.Now())
	}
	g.ctrl.Render(g.canvas)
	return nil
}

// commandKeys maps the keyboard fallback keys to controller commands.
var commandKeys = []struct {
	cmd  control.Command
	keys []ebiten.Key
}{
	{control.CommandSmaller, []ebiten.Key{ebiten.KeyMinus, ebiten.KeyNumpadSubtract}},
	{control.CommandLarger, []ebiten.Key{ebiten.KeyEqual, ebiten.KeyNumpadAdd}},
	{control.CommandPrevious, []ebiten.Key{ebiten.KeyArrowLeft}},
	{control.CommandNext, []ebiten.Key{ebiten.KeyArrowRight}},
}

// pressedCommands returns one command per distinct key pressed this tick.
func pressedCommands(pressed func(ebiten.Key) bool) []control.Command {
	var cmds []control.Command
	for _, ck := range commandKeys {
		for _, k := range ck.keys {
			if pressed(k) {
				cmds = append(cmds, ck.cmd)
			}
		}
	}
	return cmds
}

func (g *Game) fail(err error) {
	g.lastErr = err
	g.log.Error("action failed", "err", err)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.canvas.img, nil)
	g.drawHUD(screen)
	if g.showHand {
		drawHand(screen, g.ctrl.Hand())
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	x, y := config.HUDMargin, config.HUDMargin
	line := func(s string) {
		drawLabel(screen, s, x, y)
		y += config.HUDLineHeight
	}

	neb := g.ctrl.Nebula()
	vector.DrawFilledRect(screen, float32(x), float32(y+3), 10, 10, neb.RGB(), false)
	drawLabel(screen, neb.Name, x+16, y)
	y += config.HUDLineHeight

	line("Scale: " + formatScale(g.ctrl.Scale()))

	status := g.ctrl.Status()
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	line(status)

	if g.music.active() {
		state := "Playing"
		if g.music.paused {
			state = "Paused"
		}
		line(fmt.Sprintf("%s %s %s - Space to pause, O to change", state, g.music.name, formatDuration(g.music.elapsed())))
		g.drawMeter(screen, x, y+2, g.music.level())
		y += config.HUDLineHeight
	} else {
		line("O: open soundtrack")
	}

	line(fmt.Sprintf("FPS: %0.1f", ebiten.ActualFPS()))
}

// drawMeter shows the soundtrack loudness as a bar tinted by the level.
func (g *Game) drawMeter(screen *ebiten.Image, x, y int, level float64) {
	w, h := float32(config.MeterWidth), float32(config.MeterHeight)
	vector.DrawFilledRect(screen, float32(x), float32(y), w, h, color.RGBA{R: 20, G: 25, B: 35, A: 200}, false)
	r, gr, b := hsvToRgb(240-240*level, 0.8, 0.9)
	vector.DrawFilledRect(screen, float32(x), float32(y), w*float32(clamp01(level)), h, color.RGBA{R: r, G: gr, B: b, A: 255}, false)
	vector.StrokeRect(screen, float32(x), float32(y), w, h, 1, color.RGBA{R: 60, G: 70, B: 90, A: 255}, false)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
