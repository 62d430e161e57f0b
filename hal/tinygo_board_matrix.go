//go:build tinygo && (rp2040 || rp2350)

package hal

import (
	"machine"
	"time"
)

const (
	matrixRows       = 4
	matrixCols       = 10
	debounceInterval = 5 * time.Millisecond
	scanInterval     = time.Millisecond
)

var (
	rowPins = [matrixRows]machine.Pin{machine.GP4, machine.GP5, machine.GP6, machine.GP7}
	colPins = [matrixCols]machine.Pin{
		machine.GP8, machine.GP9, machine.GP10, machine.GP11, machine.GP13,
		machine.GP14, machine.GP15, machine.GP16, machine.GP17, machine.GP18,
	}
)

// gpioMatrix scans a row-to-column diode matrix: one row driven high at a
// time, columns read back with pull-downs. A switch state change is reported
// only after it has been stable for the debounce interval.
type gpioMatrix struct {
	ch         chan SwitchEvent
	state      [matrixRows][matrixCols]bool
	lastChange [matrixRows][matrixCols]time.Time
}

func newGPIOMatrix() *gpioMatrix {
	for _, p := range rowPins {
		p.Configure(machine.PinConfig{Mode: machine.PinOutput})
		p.Low()
	}
	for _, p := range colPins {
		p.Configure(machine.PinConfig{Mode: machine.PinInputPulldown})
	}

	m := &gpioMatrix{ch: make(chan SwitchEvent, 32)}
	go m.scanLoop()
	return m
}

func (m *gpioMatrix) Events() <-chan SwitchEvent { return m.ch }

func (m *gpioMatrix) scanLoop() {
	ticker := time.NewTicker(scanInterval)
	defer ticker.Stop()
	for range ticker.C {
		m.scan()
	}
}

func (m *gpioMatrix) scan() {
	now := time.Now()
	for r, rp := range rowPins {
		rp.High()
		// Let the line settle before sampling.
		time.Sleep(time.Microsecond)
		for c, cp := range colPins {
			level := cp.Get()
			if level == m.state[r][c] {
				continue
			}
			if now.Sub(m.lastChange[r][c]) < debounceInterval {
				continue
			}
			m.state[r][c] = level
			m.lastChange[r][c] = now
			select {
			case m.ch <- SwitchEvent{Row: uint8(r), Col: uint8(c), Pressed: level}:
			default:
			}
		}
		rp.Low()
	}
}
