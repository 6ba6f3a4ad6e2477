// Demo host for the viewrig engine: renders the held item as a glyph
// offset from the screen center, with keyboard-driven look and movement.
//
// Keys: arrows/hjkl look, space toggles walking, 1/2/3 switch items,
// u unloads, q or Esc quits.
package main

import (
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/viewrig/asset"
	"github.com/lixenwraith/viewrig/audio"
	"github.com/lixenwraith/viewrig/engine"
	"github.com/lixenwraith/viewrig/event"
	"github.com/lixenwraith/viewrig/profile"
	"github.com/lixenwraith/viewrig/render"
	"github.com/lixenwraith/viewrig/vmath"
)

const (
	lookStep    = 0.08 // Radians of look delta per keypress
	moveSpeed   = 3.0
	posScale    = 40.0 // Transform units to terminal cells
	rotScale    = 30.0
	frameMillis = 16
)

// screenSink displays the animated item in the terminal
// Implements render.Sink; reads happen on the same goroutine as writes
// (the demo drives Step from its own loop), the mutex guards the final
// draw read against nothing but keeps the contract honest
type screenSink struct {
	mu        sync.Mutex
	item      string
	attached  bool
	transform render.Transform
}

func (s *screenSink) Attach(handle asset.Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.item = handle.Name()
	s.attached = true
}

func (s *screenSink) Detach() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.item = ""
	s.attached = false
}

func (s *screenSink) SetTransform(t render.Transform) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transform = t
}

func (s *screenSink) snapshot() (string, bool, render.Transform) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.item, s.attached, s.transform
}

type demo struct {
	screen        tcell.Screen
	ctrl          *engine.Controller
	sink          *screenSink
	player        *audio.Player
	width, height int
	moving        bool
}

func newDemo() (*demo, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	registerModels()

	sink := &screenSink{}
	player := audio.NewPlayer(audio.LoadConfig())
	if err := player.Init(); err != nil {
		// Non-fatal, the demo runs without sound
		log.Printf("Audio initialization failed: %v", err)
	}

	ctrl := engine.NewController(asset.RegistryResolver{}, sink).WithCues(player)
	ctrl.Setup()
	registerProfiles(ctrl)

	d := &demo{
		screen: screen,
		ctrl:   ctrl,
		sink:   sink,
		player: player,
	}
	d.width, d.height = screen.Size()
	return d, nil
}

func registerModels() {
	for _, name := range []string{"hands", "sword", "lantern"} {
		n := name
		asset.RegisterModel(n, func() asset.Handle { return asset.NewStaticHandle(n) })
	}
}

func registerProfiles(ctrl *engine.Controller) {
	sword := profile.Default()
	sword.SwayAmount = 0.9
	sword.BobAmount = 0.08
	sword.Offset = vmath.Vec3{X: 0.3, Y: -0.2}
	ctrl.AddSettings("sword", sword)

	lantern := profile.Default()
	lantern.Smoothness = 0.04 // Heavy, slow to settle
	lantern.BobSpeed = 4
	lantern.Offset = vmath.Vec3{X: -0.3, Y: -0.1}
	ctrl.AddSettings("lantern", lantern)
}

func (d *demo) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}

		var dx, dy float64
		switch ev.Key() {
		case tcell.KeyLeft:
			dx = -lookStep
		case tcell.KeyRight:
			dx = lookStep
		case tcell.KeyUp:
			dy = -lookStep
		case tcell.KeyDown:
			dy = lookStep
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'h':
				dx = -lookStep
			case 'l':
				dx = lookStep
			case 'k':
				dy = -lookStep
			case 'j':
				dy = lookStep
			case ' ':
				d.moving = !d.moving
			case '1', '2', '3':
				items := map[rune]string{'1': "hands", '2': "sword", '3': "lantern"}
				if err := d.ctrl.Load(items[ev.Rune()]); err != nil {
					log.Printf("Load failed: %v", err)
				}
			case 'u':
				d.ctrl.Unload()
			}
		}

		speed := 0.0
		if d.moving {
			speed = moveSpeed
		}
		d.ctrl.SubmitInput(event.InputSample{
			LookDX: dx,
			LookDY: dy,
			Moving: d.moving,
			Speed:  speed,
		})

	case *tcell.EventResize:
		d.width, d.height = d.screen.Size()
	}
	return true
}

func (d *demo) draw() {
	d.screen.Clear()

	item, attached, t := d.sink.snapshot()

	// Crosshair at the look center
	cx, cy := d.width/2, d.height/2
	d.screen.SetContent(cx, cy, '+', nil, tcell.StyleDefault.Foreground(tcell.ColorGray))

	if attached {
		// Project the camera-local transform onto the cell grid
		// Yaw rotation shifts the item sideways like a real viewmodel
		x := cx + int(t.Position.X*posScale+t.Rotation.Y*rotScale)
		y := cy - int(t.Position.Y*posScale-t.Rotation.X*rotScale/2)
		if x >= 0 && x < d.width && y >= 0 && y < d.height {
			style := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
			for i, r := range []rune("[=]") {
				d.screen.SetContent(x+i-1, y, r, nil, style)
			}
		}
	}

	status := fmt.Sprintf(" item:%-8s moving:%-5v pos(%+.3f %+.3f) rot(%+.3f %+.3f) ",
		orNone(item), d.moving,
		t.Position.X, t.Position.Y, t.Rotation.X, t.Rotation.Y)
	style := tcell.StyleDefault.Reverse(true)
	for i, r := range status {
		if i >= d.width {
			break
		}
		d.screen.SetContent(i, d.height-1, r, nil, style)
	}

	d.screen.Show()
}

func orNone(item string) string {
	if item == "" {
		return "(none)"
	}
	return item
}

func (d *demo) run() {
	ticker := time.NewTicker(frameMillis * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- d.screen.PollEvent()
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !d.handleInput(ev) {
				return
			}

		case <-ticker.C:
			now := time.Now()
			dt := now.Sub(last).Seconds()
			last = now

			d.ctrl.Step(dt)
			d.draw()
		}
	}
}

func (d *demo) cleanup() {
	d.ctrl.Stop()
	d.player.Close()
	d.screen.Fini()
}

func main() {
	d, err := newDemo()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := d.ctrl.Start(); err != nil {
		d.cleanup()
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}
	defer d.cleanup()

	d.run()
}
