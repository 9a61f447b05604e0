package character

import (
	"math"

	"github.com/jakecoffman/cp"
)

// HitDirection selects the hit-react clip.
type HitDirection int

const (
	FromBack HitDirection = iota
	FromFront
	FromLeft
	FromRight
)

func (d HitDirection) String() string {
	switch d {
	case FromFront:
		return "FromFront"
	case FromLeft:
		return "FromLeft"
	case FromRight:
		return "FromRight"
	default:
		return "FromBack"
	}
}

// ClassifyHit buckets the angle between forward and the direction from
// location to source into four quadrants. Positions are in screen space
// (y grows downward), so a positive cross product means the source is on the
// right.
func ClassifyHit(location, forward, source cp.Vector) HitDirection {
	toHit := source.Sub(location)
	if toHit.LengthSq() == 0 || forward.LengthSq() == 0 {
		return FromBack
	}
	toHit = toHit.Normalize()
	forward = forward.Normalize()

	cos := math.Max(-1, math.Min(1, forward.Dot(toHit)))
	theta := math.Acos(cos) * 180 / math.Pi
	if forward.Cross(toHit) < 0 {
		theta = -theta
	}

	switch {
	case theta >= -45 && theta < 45:
		return FromFront
	case theta >= -135 && theta < -45:
		return FromLeft
	case theta >= 45 && theta < 135:
		return FromRight
	default:
		return FromBack
	}
}
