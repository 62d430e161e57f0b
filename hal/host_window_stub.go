//go:build !tinygo && !cgo

package hal

import "errors"

// RunWindow needs the ebiten backend, which needs cgo.
func RunWindow(_ func(h HAL) func() error) error {
	return errors.New("the pocketboard simulator window requires cgo (rebuild with CGO_ENABLED=1, or pass -headless)")
}
