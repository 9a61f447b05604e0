package component

import "github.com/milk9111/openworld/montage"

// Animation drives an actor's montages.
type Animation struct {
	Player *montage.Player
}

var AnimationComponent = NewComponent[Animation]()
