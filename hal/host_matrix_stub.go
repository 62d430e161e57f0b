//go:build !tinygo && !cgo

package hal

type hostMatrix struct {
	ch    chan SwitchEvent
	locks *hostLocks
}

func newHostMatrix(locks *hostLocks) *hostMatrix {
	return &hostMatrix{ch: make(chan SwitchEvent, 64), locks: locks}
}

func (m *hostMatrix) Events() <-chan SwitchEvent { return m.ch }

func (m *hostMatrix) poll() {
	// No key input without the window backend.
}
