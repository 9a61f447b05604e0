package character

// ActionState is what the character is busy doing. The values are mutually
// exclusive and gate which player commands are accepted.
type ActionState int

const (
	Unoccupied ActionState = iota
	Attacking
	HitReaction
	Dead
)

func (s ActionState) String() string {
	switch s {
	case Unoccupied:
		return "unoccupied"
	case Attacking:
		return "attacking"
	case HitReaction:
		return "hit_reaction"
	case Dead:
		return "dead"
	default:
		return "unknown"
	}
}

// CharacterState is the class of weapon the character possesses. It is
// independent of ActionState.
type CharacterState int

const (
	Unequipped CharacterState = iota
	EquippedOneHanded
	EquippedTwoHanded
)

func (s CharacterState) String() string {
	switch s {
	case Unequipped:
		return "unequipped"
	case EquippedOneHanded:
		return "one_handed"
	case EquippedTwoHanded:
		return "two_handed"
	default:
		return "unknown"
	}
}

// ParseCharacterState maps prefab names to a CharacterState.
func ParseCharacterState(name string) (CharacterState, bool) {
	switch name {
	case "unequipped", "":
		return Unequipped, true
	case "one_handed":
		return EquippedOneHanded, true
	case "two_handed":
		return EquippedTwoHanded, true
	default:
		return Unequipped, false
	}
}
