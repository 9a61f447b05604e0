package ecs

import (
	"math"

	"github.com/jakecoffman/cp"
)

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypeCharacter
	collisionTypePickup
	collisionTypeHazard
)

// OverlapKind says what a character started or stopped touching.
type OverlapKind int

const (
	OverlapPickup OverlapKind = iota
	OverlapHazard
)

// Overlap is queued from the Chipmunk callbacks and applied after Step so
// nothing mutates the space while it is stepping.
type Overlap struct {
	Character Entity
	Other     Entity
	Kind      OverlapKind
	Began     bool
}

type physicsEntry struct {
	body    *cp.Body
	shape   *cp.Shape
	center  cp.Vector
	static  bool
	removed bool
}

// PhysicsWorld owns the Chipmunk space for a top-down arena. There is no
// gravity: characters are dynamic circles driven by velocity, pickups and
// hazards are static sensors.
type PhysicsWorld struct {
	space         *cp.Space
	handlersReady bool

	entries       map[Entity]*physicsEntry
	shapeToEntity map[*cp.Shape]Entity
	overlaps      []Overlap
}

// NewPhysicsWorld creates a space walled in by the arena bounds.
func NewPhysicsWorld(width, height float64) *PhysicsWorld {
	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(cp.Vector{})

	pw := &PhysicsWorld{
		space:         space,
		entries:       make(map[Entity]*physicsEntry),
		shapeToEntity: make(map[*cp.Shape]Entity),
	}
	pw.buildBounds(width, height)
	pw.setupHandlers()
	return pw
}

// AddCharacter creates a rotation-locked dynamic circle for e.
func (pw *PhysicsWorld) AddCharacter(e Entity, pos cp.Vector, radius float64) *cp.Body {
	if pw == nil || pw.space == nil {
		return nil
	}
	if entry, ok := pw.entries[e]; ok {
		return entry.body
	}

	body := cp.NewBody(1, math.Inf(1))
	body.SetPosition(pos)
	shape := cp.NewCircle(body, radius, cp.Vector{})
	shape.SetFriction(0)
	shape.SetCollisionType(collisionTypeCharacter)

	pw.space.AddBody(body)
	pw.space.AddShape(shape)
	pw.entries[e] = &physicsEntry{body: body, shape: shape}
	pw.shapeToEntity[shape] = e
	return body
}

// AddPickup registers a circular sensor for a collectable or a weapon lying
// in the world.
func (pw *PhysicsWorld) AddPickup(e Entity, pos cp.Vector, radius float64) {
	if pw == nil || pw.space == nil {
		return
	}
	shape := cp.NewCircle(pw.space.StaticBody, radius, pos)
	pw.addSensor(e, shape, pos, collisionTypePickup)
}

// AddHazard registers an axis-aligned sensor volume.
func (pw *PhysicsWorld) AddHazard(e Entity, x, y, width, height float64) {
	if pw == nil || pw.space == nil {
		return
	}
	bb := cp.BB{L: x, B: y, R: x + width, T: y + height}
	shape := cp.NewBox2(pw.space.StaticBody, bb, 0)
	pw.addSensor(e, shape, cp.Vector{X: x + width/2, Y: y + height/2}, collisionTypeHazard)
}

func (pw *PhysicsWorld) addSensor(e Entity, shape *cp.Shape, center cp.Vector, kind cp.CollisionType) {
	shape.SetSensor(true)
	shape.SetCollisionType(kind)
	pw.space.AddShape(shape)
	pw.entries[e] = &physicsEntry{body: pw.space.StaticBody, shape: shape, center: center, static: true}
	pw.shapeToEntity[shape] = e
}

// SetVelocity drives a character body for the next step.
func (pw *PhysicsWorld) SetVelocity(e Entity, v cp.Vector) {
	if entry := pw.entry(e); entry != nil && !entry.static {
		entry.body.SetVelocityVector(v)
	}
}

// Position returns the body position for e.
func (pw *PhysicsWorld) Position(e Entity) (cp.Vector, bool) {
	entry := pw.entry(e)
	if entry == nil {
		return cp.Vector{}, false
	}
	if entry.static {
		return entry.center, true
	}
	return entry.body.Position(), true
}

// DisableCollision pulls e's shape out of the space while keeping its body
// where it is. Used when a character dies.
func (pw *PhysicsWorld) DisableCollision(e Entity) {
	entry := pw.entry(e)
	if entry == nil || entry.removed {
		return
	}
	pw.space.RemoveShape(entry.shape)
	entry.removed = true
	if !entry.static {
		entry.body.SetVelocityVector(cp.Vector{})
	}
}

// CollisionEnabled reports whether e still collides.
func (pw *PhysicsWorld) CollisionEnabled(e Entity) bool {
	entry := pw.entry(e)
	return entry != nil && !entry.removed
}

// Forget removes every trace of e from the space.
func (pw *PhysicsWorld) Forget(e Entity) {
	entry := pw.entry(e)
	if entry == nil {
		return
	}
	if !entry.removed {
		pw.space.RemoveShape(entry.shape)
	}
	if !entry.static {
		pw.space.RemoveBody(entry.body)
	}
	delete(pw.shapeToEntity, entry.shape)
	delete(pw.entries, e)
}

// Step advances the simulation.
func (pw *PhysicsWorld) Step(dt float64) {
	if pw == nil || pw.space == nil {
		return
	}
	pw.space.Step(dt)
}

// DrainOverlaps returns the begin/end events gathered since the last call.
func (pw *PhysicsWorld) DrainOverlaps() []Overlap {
	if pw == nil || len(pw.overlaps) == 0 {
		return nil
	}
	out := pw.overlaps
	pw.overlaps = nil
	return out
}

func (pw *PhysicsWorld) entry(e Entity) *physicsEntry {
	if pw == nil || pw.entries == nil {
		return nil
	}
	return pw.entries[e]
}

func (pw *PhysicsWorld) buildBounds(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	segments := []struct{ a, b cp.Vector }{
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: width, Y: 0}},
		{a: cp.Vector{X: 0, Y: height}, b: cp.Vector{X: width, Y: height}},
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: 0, Y: height}},
		{a: cp.Vector{X: width, Y: 0}, b: cp.Vector{X: width, Y: height}},
	}
	for _, seg := range segments {
		shape := cp.NewSegment(pw.space.StaticBody, seg.a, seg.b, 1)
		shape.SetFriction(0)
		shape.SetCollisionType(collisionTypeSolid)
		pw.space.AddShape(shape)
	}
}

func (pw *PhysicsWorld) setupHandlers() {
	if pw.handlersReady {
		return
	}
	pw.overlapHandler(collisionTypePickup, OverlapPickup)
	pw.overlapHandler(collisionTypeHazard, OverlapHazard)
	pw.handlersReady = true
}

func (pw *PhysicsWorld) overlapHandler(other cp.CollisionType, kind OverlapKind) {
	handler := pw.space.NewCollisionHandler(collisionTypeCharacter, other)
	handler.UserData = pw
	handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		if world, ok := userData.(*PhysicsWorld); ok {
			world.queueOverlap(arb, kind, true)
		}
		return true
	}
	handler.SeparateFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) {
		if world, ok := userData.(*PhysicsWorld); ok {
			world.queueOverlap(arb, kind, false)
		}
	}
}

func (pw *PhysicsWorld) queueOverlap(arb *cp.Arbiter, kind OverlapKind, began bool) {
	shapeA, shapeB := arb.Shapes()
	character, okA := pw.shapeToEntity[shapeA]
	other, okB := pw.shapeToEntity[shapeB]
	if !okA || !okB {
		return
	}
	pw.overlaps = append(pw.overlaps, Overlap{Character: character, Other: other, Kind: kind, Began: began})
}
