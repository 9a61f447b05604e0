package component

// Input stores per-frame input state for an entity. Axes are in [-1,1];
// the *Pressed flags are edge-triggered for the current frame only.
type Input struct {
	MoveForward float64
	MoveRight   float64
	Turn        float64
	LookUp      float64

	JumpPressed   bool
	AttackPressed bool
	EquipPressed  bool
}

var InputComponent = NewComponent[Input]()
