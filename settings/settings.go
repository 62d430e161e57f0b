// Package settings persists the LED configuration in a flash block.
package settings

// LEDConfig is the status LED state: HSV color plus on/off. It is written to
// flash as one record on every mutation.
type LEDConfig struct {
	Hue     uint8
	Sat     uint8
	Val     uint8
	Enabled bool
}

// Default is the compiled-in configuration used until flash says otherwise.
var Default = LEDConfig{
	Hue:     160,
	Sat:     255,
	Val:     255,
	Enabled: false,
}

// Step is how far one keypress moves a channel.
const Step = 10

// AddStep raises a channel by Step, saturating at 255.
func AddStep(v uint8) uint8 {
	if v > 255-Step {
		return 255
	}
	return v + Step
}

// SubStep lowers a channel by Step, saturating at 0.
func SubStep(v uint8) uint8 {
	if v < Step {
		return 0
	}
	return v - Step
}
