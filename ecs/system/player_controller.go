package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/openworld/ecs"
	"github.com/milk9111/openworld/ecs/component"
	"github.com/milk9111/openworld/input"
)

const maxPitch = math.Pi / 3

// PlayerControllerSystem feeds each controlled character's Input through its
// dispatcher. The dispatcher is created on first use so it can bind to the
// entity's stored components.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (s *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w, component.InputComponent.Kind(), component.ControllerComponent.Kind(), component.ActorComponent.Kind(), func(e ecs.Entity, in *component.Input, ctl *component.Controller, actor *component.Actor) {
		if ctl.Dispatcher == nil {
			ctl.Dispatcher = bindDispatcher(w, e, ctl, actor)
			if ctl.Dispatcher == nil {
				return
			}
		}
		d := ctl.Dispatcher

		axis := cp.Vector{X: in.MoveForward, Y: in.MoveRight}
		if axis.LengthSq() > 0 && !d.Move(axis) {
			w.Events().Push(ecs.Event{Kind: ecs.EventSwallowed, Source: e, Detail: "move"})
		}
		if in.Turn != 0 {
			d.Turn(in.Turn)
		}
		if in.LookUp != 0 {
			d.LookUp(in.LookUp)
		}
		if in.JumpPressed {
			d.Jump()
		}
		if in.EquipPressed && d.Equip() {
			w.Events().Push(ecs.Event{Kind: ecs.EventEquip, Source: e})
		}
		if in.AttackPressed {
			d.Attack()
		}
	})
}

func bindDispatcher(w *ecs.World, e ecs.Entity, ctl *component.Controller, actor *component.Actor) *input.Dispatcher {
	if actor.Character == nil {
		return nil
	}
	motion, ok := ecs.Get(w, e, component.MotionComponent.Kind())
	if !ok {
		return nil
	}
	transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return nil
	}
	if motion.ControlYaw == 0 {
		motion.ControlYaw = transform.Yaw
	}
	return input.NewDispatcher(&pawn{motion: motion, transform: transform, ctl: ctl}, actor.Character)
}

// pawn applies pass-through commands to the entity's motion.
type pawn struct {
	motion    *component.Motion
	transform *component.Transform
	ctl       *component.Controller
}

func (p *pawn) AddMovementInput(dir cp.Vector, scale float64) {
	p.motion.Pending = p.motion.Pending.Add(dir.Mult(scale))
}

func (p *pawn) AddYawInput(delta float64) {
	p.motion.ControlYaw = math.Remainder(p.motion.ControlYaw+delta*p.ctl.TurnRate, 2*math.Pi)
}

func (p *pawn) AddPitchInput(delta float64) {
	p.motion.Pitch = math.Max(-maxPitch, math.Min(maxPitch, p.motion.Pitch+delta*p.ctl.TurnRate))
}

func (p *pawn) ControlYaw() float64 {
	return p.motion.ControlYaw
}

func (p *pawn) Jump() {
	if p.motion.Grounded(p.transform) {
		p.motion.VZ = p.ctl.JumpSpeed
	}
}
