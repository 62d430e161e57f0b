// Command mkanim regenerates the built-in idle animation asset. The output is
// deterministic, so assets/idle.bin only changes when this generator does.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"

	"pocketboard/pix"
)

const (
	side     = 60
	frameCnt = 8
	interval = 100 // ms
)

// Orbit offsets for the eight frames, 45 degrees apart at radius 18.
var orbit = [frameCnt][2]int{
	{18, 0}, {13, 13}, {0, 18}, {-13, 13},
	{-18, 0}, {-13, -13}, {0, -18}, {13, -13},
}

var palette = [4]color.RGBA{
	{A: 0xFF},                            // background
	{G: 0x40, B: 0x80, A: 0xFF},          // faint trail
	{G: 0xFF, B: 0xFF, A: 0xFF},          // bright trail
	{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, // ball
}

func inDisc(x, y, cx, cy, r int) bool {
	dx := x - cx
	dy := y - cy
	return dx*dx+dy*dy <= r*r
}

func render() [][]byte {
	const c = side / 2
	frames := make([][]byte, frameCnt)
	for f := range frames {
		frame := make([]byte, side*side)
		ball := orbit[f]
		t1 := orbit[(f+frameCnt-1)%frameCnt]
		t2 := orbit[(f+frameCnt-2)%frameCnt]
		for y := 0; y < side; y++ {
			for x := 0; x < side; x++ {
				switch {
				case inDisc(x, y, c+ball[0], c+ball[1], 6):
					frame[y*side+x] = 3
				case inDisc(x, y, c+t1[0], c+t1[1], 5):
					frame[y*side+x] = 2
				case inDisc(x, y, c+t2[0], c+t2[1], 4):
					frame[y*side+x] = 1
				}
			}
		}
		frames[f] = frame
	}
	return frames
}

func main() {
	out := flag.String("o", "assets/idle.bin", "output path")
	flag.Parse()

	anim := pix.NewAnimation(side, side, interval, palette, render())
	blob, err := pix.Encode(anim)
	if err != nil {
		fmt.Fprintln(os.Stderr, "mkanim:", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, blob, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, "mkanim:", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s (%d bytes, %d frames)\n", *out, len(blob), frameCnt)
}
