package component

import "image/color"

// Particle is a short-lived spark spawned by a hit.
type Particle struct {
	VX    float64
	VY    float64
	Size  float64
	Color color.Color
}

var ParticleComponent = NewComponent[Particle]()
