// Package ui owns the display and the status LED: keypress labels, the lock
// indicator dots, the idle animation, and the persisted LED configuration.
package ui

import (
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"

	"pocketboard/assets"
	"pocketboard/gfx"
	"pocketboard/hal"
	"pocketboard/keymap"
	"pocketboard/pix"
	"pocketboard/settings"
)

// IdleTimeout is how long the board must be untouched before the idle
// animation starts, in milliseconds. The boundary is inclusive.
const IdleTimeout = 10000

// Label placement, tuned for the 80x160 portrait panel.
const (
	largeX, largeY = 20, 50 // single glyph, centered-ish
	stackX, stackY = 30, 25 // first glyph of a vertical stack
	stackStep      = 40     // per-glyph vertical advance
)

// Lock indicator dots: caps, num, scroll.
const (
	dotRadius = 3
	dotY      = 10
)

var dotX = [3]int16{20, 40, 60}

var (
	largeFont = &freemono.Bold24pt7b
	smallFont = &freemono.Regular9pt7b
)

// Controller reacts to resolved key events and timer ticks. It is driven
// from the single event loop and is not safe for concurrent use.
type Controller struct {
	log   hal.Logger
	led   hal.LED
	paint *gfx.Painter
	store *settings.Store

	cfg    settings.LEDConfig
	player *pix.Player

	animating  bool
	lastKey    uint64
	shownLocks hal.LockState
	dotsShown  bool
}

// New builds the controller, loads the persisted LED configuration, and
// starts the idle animation. A corrupt animation asset degrades to a static
// error label; everything else keeps working.
func New(log hal.Logger, led hal.LED, fb hal.Framebuffer, flash hal.Flash, now uint64) *Controller {
	c := &Controller{
		log:   log,
		led:   led,
		paint: gfx.NewPainter(fb),
		store: settings.NewStore(flash),
	}

	cfg, err := c.store.Load()
	if err != nil {
		log.WriteLineString("ui: settings load: " + err.Error())
	}
	c.cfg = cfg
	c.applyLED()

	anim, err := pix.Decode(assets.Idle())
	if err != nil {
		log.WriteLineString("ui: idle animation: " + err.Error())
		c.paint.Clear(gfx.Black)
		tinyfont.WriteLine(c.paint, smallFont, 2, 80, "ANI ERR", c.labelColor())
		_ = c.paint.Flush()
	} else {
		x := int16((fb.Width() - anim.Width) / 2)
		y := int16((fb.Height() - anim.Height) / 2)
		c.player = pix.NewPlayer(anim, c.paint, x, y)
		c.paint.Clear(gfx.Black)
		c.player.Start(now)
		c.animating = c.player.Running()
	}
	c.lastKey = now
	return c
}

// Config returns the current LED configuration.
func (c *Controller) Config() settings.LEDConfig { return c.cfg }

// Animating reports whether the idle animation is on screen.
func (c *Controller) Animating() bool { return c.animating }

// Tick advances the idle timer, the animation, and the lock dots. now is the
// millisecond tick count; locks is the host lock indicator state.
func (c *Controller) Tick(now uint64, locks hal.LockState) {
	if c.animating {
		c.player.Tick(now)
		return
	}

	if c.player != nil && now-c.lastKey >= IdleTimeout {
		c.paint.Clear(gfx.Black)
		c.dotsShown = false
		c.player.Start(now)
		c.animating = c.player.Running()
		return
	}

	// Repaint the dots into the shadow buffer every tick; push the panel only
	// when their state changed.
	c.drawDots(locks)
	if !c.dotsShown || locks != c.shownLocks {
		c.shownLocks = locks
		c.dotsShown = true
		_ = c.paint.Flush()
	}
}

// Key handles one resolved key event. Releases are ignored. Composite
// keycodes display their tap keycode.
func (c *Controller) Key(now uint64, kc keymap.Keycode, pressed bool) {
	if !pressed {
		return
	}
	c.lastKey = now
	if c.animating {
		c.player.Stop()
		c.animating = false
	}

	c.paint.Clear(gfx.Black)
	c.dotsShown = false

	label := c.handle(kc.Tap())
	c.drawLabel(label)
	_ = c.paint.Flush()
}

// handle performs the local action of a key, if any, and returns its label.
func (c *Controller) handle(kc keymap.Keycode) string {
	switch kc {
	case keymap.LedToggle:
		c.cfg.Enabled = !c.cfg.Enabled
		c.applyLED()
		c.persist()
		return "LED"
	case keymap.LedHueUp:
		c.cfg.Hue = settings.AddStep(c.cfg.Hue)
		c.persist()
		return "HUE"
	case keymap.LedHueDown:
		c.cfg.Hue = settings.SubStep(c.cfg.Hue)
		c.persist()
		return "HUE"
	case keymap.LedSatUp:
		c.cfg.Sat = settings.AddStep(c.cfg.Sat)
		c.persist()
		return "SAT"
	case keymap.LedSatDown:
		c.cfg.Sat = settings.SubStep(c.cfg.Sat)
		c.persist()
		return "SAT"
	case keymap.LedValUp:
		c.cfg.Val = settings.AddStep(c.cfg.Val)
		c.persist()
		return "VAL"
	case keymap.LedValDown:
		c.cfg.Val = settings.SubStep(c.cfg.Val)
		c.persist()
		return "VAL"
	}
	return keymap.Label(kc)
}

func (c *Controller) applyLED() {
	if c.cfg.Enabled {
		c.led.High()
	} else {
		c.led.Low()
	}
}

func (c *Controller) persist() {
	if err := c.store.Save(c.cfg); err != nil {
		c.log.WriteLineString("ui: settings save: " + err.Error())
	}
}

// labelColor is the foreground for all text: the configured LED color.
func (c *Controller) labelColor() color.RGBA {
	return gfx.HSV{H: c.cfg.Hue, S: c.cfg.Sat, V: c.cfg.Val}.RGBA()
}

func (c *Controller) drawLabel(label string) {
	if label == "" {
		return
	}
	fg := c.labelColor()
	if len(label) == 1 {
		tinyfont.WriteLine(c.paint, largeFont, largeX, largeY, label, fg)
		return
	}
	c.drawStack(label, fg)
}

// drawStack renders a label one glyph per line down the portrait panel.
func (c *Controller) drawStack(label string, fg color.RGBA) {
	y := int16(stackY)
	for _, r := range label {
		tinyfont.WriteLine(c.paint, smallFont, stackX, y, string(r), fg)
		y += stackStep
	}
}

func (c *Controller) drawDots(locks hal.LockState) {
	for i, on := range [3]bool{locks.Caps, locks.Num, locks.Scroll} {
		col := gfx.Black
		if on {
			col = gfx.White
		}
		c.paint.FillCircle(dotX[i], dotY, dotRadius, col)
	}
}
