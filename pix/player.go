package pix

import "image/color"

// Surface is where a player draws: a pixel sink plus a present hook.
// gfx.Painter satisfies it.
type Surface interface {
	SetPixel(x, y int16, c color.RGBA)
	Flush() error
}

// Player plays an animation in a loop, advancing on millisecond ticks.
// It free-runs until Stop; the caller drives it from the main event loop.
type Player struct {
	anim *Animation
	dst  Surface
	x    int16
	y    int16

	running bool
	frame   int
	nextAt  uint64
}

// NewPlayer positions an animation at (x, y) on dst.
func NewPlayer(anim *Animation, dst Surface, x, y int16) *Player {
	return &Player{anim: anim, dst: dst, x: x, y: y}
}

// Running reports whether playback is active.
func (p *Player) Running() bool { return p.running }

// Start begins playback at frame zero and draws it immediately.
func (p *Player) Start(now uint64) {
	if p.anim == nil {
		return
	}
	p.running = true
	p.frame = 0
	p.nextAt = now + uint64(p.anim.Interval)
	p.draw()
}

// Stop halts playback. The last frame stays on screen until overdrawn.
func (p *Player) Stop() {
	p.running = false
}

// Tick advances playback when the frame interval has elapsed.
func (p *Player) Tick(now uint64) {
	if !p.running || p.anim == nil {
		return
	}
	if now < p.nextAt {
		return
	}
	p.nextAt = now + uint64(p.anim.Interval)
	p.frame = (p.frame + 1) % len(p.anim.frames)
	p.draw()
}

func (p *Player) draw() {
	frame := p.anim.frames[p.frame]
	w := p.anim.Width
	for i, idx := range frame {
		x := p.x + int16(i%w)
		y := p.y + int16(i/w)
		p.dst.SetPixel(x, y, p.anim.Palette[idx])
	}
	_ = p.dst.Flush()
}
