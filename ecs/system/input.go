package system

import (
	"github.com/milk9111/openworld/ecs"
	"github.com/milk9111/openworld/ecs/component"
)

// InputSystem copies one sample of the input devices per frame into the
// player's Input component. read is the device poller.
type InputSystem struct {
	read func() component.Input
}

func NewInputSystem(read func() component.Input) *InputSystem {
	return &InputSystem{read: read}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil || i.read == nil {
		return
	}
	sample := i.read()
	ecs.ForEach2(w, component.PlayerTagComponent.Kind(), component.InputComponent.Kind(), func(e ecs.Entity, _ *component.PlayerTag, input *component.Input) {
		*input = sample
	})
}
