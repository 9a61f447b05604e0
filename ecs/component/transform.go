package component

// Transform places an entity in the arena. Y grows downward on screen, Z is
// height above the floor while jumping, and Yaw is the facing in radians.
type Transform struct {
	X   float64
	Y   float64
	Z   float64
	Yaw float64
}

var TransformComponent = NewComponent[Transform]()
