package component

import "github.com/milk9111/openworld/input"

// Controller routes an entity's Input through a dispatcher. The tuning
// fields come from the character prefab and may change on reload.
type Controller struct {
	Dispatcher *input.Dispatcher
	MoveSpeed  float64
	TurnRate   float64
	JumpSpeed  float64
}

var ControllerComponent = NewComponent[Controller]()
