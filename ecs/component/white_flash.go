package component

// WhiteFlash makes an actor render white in blinks after it is hit.
type WhiteFlash struct {
	// Frames remaining for the whole flash effect
	Frames int
	// Interval in frames between toggles of the white-on state
	Interval int
	Timer    int
	On       bool
}

var WhiteFlashComponent = NewComponent[WhiteFlash]()

// NewHitFlash is the flash played on a character that takes a hit.
func NewHitFlash() *WhiteFlash {
	return &WhiteFlash{Frames: 12, Interval: 3, On: true}
}
