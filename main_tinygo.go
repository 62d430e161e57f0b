//go:build tinygo

package main

import (
	"pocketboard/app"
	"pocketboard/hal"
)

func main() {
	app.Run(hal.New())
}
