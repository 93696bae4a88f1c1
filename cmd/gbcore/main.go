// Command gbcore runs a ROM on the core emulator and presents it through an
// ebiten window, with SDL2 handling audio output.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/urfave/cli"

	"github.com/dmgcore/gbcore/internal/audio"
	"github.com/dmgcore/gbcore/internal/display"
	"github.com/dmgcore/gbcore/internal/input"
	"github.com/dmgcore/gbcore/internal/system"
)

func main() {
	app := cli.NewApp()
	app.Name = "gbcore"
	app.Usage = "gbcore [options] <ROM file>"
	app.Description = "A cycle-level Game Boy (DMG) emulator core"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "rom",
			Usage: "path to the ROM file",
		},
		cli.IntFlag{
			Name:  "scale",
			Usage: "integer window scale factor",
			Value: 3,
		},
		cli.BoolFlag{
			Name:  "mute",
			Usage: "disable audio output",
		},
		cli.StringFlag{
			Name:  "palette",
			Usage: "color palette: green or grayscale",
			Value: "green",
		},
		cli.BoolFlag{
			Name:  "console",
			Usage: "render as ASCII art in the terminal instead of opening a window",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "gbcore: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	romPath := c.String("rom")
	if romPath == "" {
		if c.NArg() == 0 {
			cli.ShowAppHelp(c)
			return errors.New("no ROM path provided")
		}
		romPath = c.Args().Get(0)
	}

	sys, err := system.NewFromROM(romPath)
	if err != nil {
		return fmt.Errorf("load rom: %w", err)
	}

	palette := display.DefaultPalette()
	if c.String("palette") == "grayscale" {
		palette = display.GrayscalePalette()
	}

	scale := c.Int("scale")
	if scale < 1 {
		scale = 1
	}

	if c.Bool("console") {
		return runConsole(sys, palette, scale)
	}

	g := &game{
		sys:     sys,
		input:   input.NewInputManager(sys.Joypad, sys.CPU.InterruptController),
		palette: palette,
		scale:   scale,
	}

	if !c.Bool("mute") {
		out, err := newAudioSink()
		if err != nil {
			fmt.Fprintf(os.Stderr, "gbcore: audio disabled: %v\n", err)
		} else {
			g.audio = out
		}
	}
	if g.audio != nil {
		defer g.audio.Cleanup()
	}

	ebiten.SetWindowTitle("gbcore")
	ebiten.SetWindowSize(display.GameBoyWidth*scale, display.GameBoyHeight*scale)
	return ebiten.RunGame(g)
}

// newAudioSink opens the SDL2 audio backend at the APU's native sample rate.
func newAudioSink() (*audio.AudioOutput, error) {
	out := audio.NewAudioOutput(audio.NewSDL2AudioOutput())
	if err := out.Initialize(audio.DefaultConfig()); err != nil {
		return nil, err
	}
	if err := out.Start(); err != nil {
		return nil, err
	}
	return out, nil
}

// runConsole drives the system without a graphics window, presenting each
// frame as ASCII art through display.ConsoleDisplay. Useful on headless
// hosts or for eyeballing PPU output without an ebiten dependency. Runs
// until StepFrame errors or the process is interrupted.
func runConsole(sys *system.System, palette display.ColorPalette, scale int) error {
	dsp := display.NewDisplay(display.NewConsoleDisplay())
	if err := dsp.Initialize(display.DisplayConfig{
		ScaleFactor: scale,
		ScalingMode: display.ScaleNearest,
		Palette:     palette,
		VSync:       true,
	}); err != nil {
		return fmt.Errorf("console display: %w", err)
	}
	defer dsp.Cleanup()

	for !dsp.ShouldClose() {
		if err := sys.StepFrame(); err != nil {
			return fmt.Errorf("step frame: %w", err)
		}
		if err := dsp.Present(&sys.PPU.Framebuffer); err != nil {
			return fmt.Errorf("present frame: %w", err)
		}
	}
	return nil
}

// game implements ebiten.Game, driving the system one host frame at a time.
type game struct {
	sys     *system.System
	input   *input.InputManager
	audio   *audio.AudioOutput
	palette display.ColorPalette
	scale   int

	screen *ebiten.Image
}

func (g *game) Update() error {
	g.input.UpdateFromStateProvider(ebitenKeys{})

	if err := g.sys.StepFrame(); err != nil {
		return fmt.Errorf("step frame: %w", err)
	}

	if g.audio != nil {
		if samples := g.sys.MMU.GetAPU().GetSamples(); len(samples) > 0 {
			if err := g.audio.PushSamples(floatSamplesToInt16(samples)); err != nil && !errors.Is(err, audio.ErrBufferOverflow) {
				return err
			}
		}
	}

	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.screen == nil {
		g.screen = ebiten.NewImage(display.GameBoyWidth, display.GameBoyHeight)
	}

	rgb := display.ConvertFramebuffer(&g.sys.PPU.Framebuffer, g.palette)
	pix := make([]byte, display.GameBoyWidth*display.GameBoyHeight*4)
	for i := 0; i < display.GameBoyWidth*display.GameBoyHeight; i++ {
		pix[i*4+0] = rgb[i*3+0]
		pix[i*4+1] = rgb[i*3+1]
		pix[i*4+2] = rgb[i*3+2]
		pix[i*4+3] = 0xFF
	}
	g.screen.WritePixels(pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.screen, op)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return display.GameBoyWidth * g.scale, display.GameBoyHeight * g.scale
}

// floatSamplesToInt16 converts the APU's normalized [-1, 1] interleaved
// stereo stream into interleaved 16-bit stereo frames for the audio backend.
func floatSamplesToInt16(samples []float32) []int16 {
	out := make([]int16, len(samples))
	for i, s := range samples {
		out[i] = int16(s * 32767)
	}
	return out
}

// ebitenKeys adapts ebiten's polled keyboard state to input.InputStateProvider.
type ebitenKeys struct{}

func (ebitenKeys) IsKeyPressed(key input.Key) bool {
	ek, ok := keyTable[key]
	if !ok {
		return false
	}
	return ebiten.IsKeyPressed(ek)
}

func (ebitenKeys) GetPressedKeys() []input.Key {
	var pressed []input.Key
	for k, ek := range keyTable {
		if ebiten.IsKeyPressed(ek) {
			pressed = append(pressed, k)
		}
	}
	return pressed
}

var keyTable = map[input.Key]ebiten.Key{
	input.KeyArrowUp:    ebiten.KeyArrowUp,
	input.KeyArrowDown:  ebiten.KeyArrowDown,
	input.KeyArrowLeft:  ebiten.KeyArrowLeft,
	input.KeyArrowRight: ebiten.KeyArrowRight,
	input.KeyZ:          ebiten.KeyZ,
	input.KeyX:          ebiten.KeyX,
	input.KeyA:          ebiten.KeyA,
	input.KeyS:          ebiten.KeyS,
	input.KeyEnter:      ebiten.KeyEnter,
	input.KeySpace:      ebiten.KeySpace,
}
