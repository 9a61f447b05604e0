package component

// Hazard is a damaging volume. Bounds are expressed in world units with the
// Transform at the top-left corner.
type Hazard struct {
	Width          float64
	Height         float64
	Damage         float64
	CooldownFrames int
}

var HazardComponent = NewComponent[Hazard]()

// HazardContact tracks the hazards an entity is standing in, keyed by hazard
// entity, with the frames left until each one bites again.
type HazardContact struct {
	Frames map[uint64]int
}

var HazardContactComponent = NewComponent[HazardContact]()
