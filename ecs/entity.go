package ecs

import "strconv"

// Entity is a handle into a World: the low 32 bits are the slot id, the high
// 32 bits the generation the slot had when the handle was issued. A handle
// outlives its entity safely; IsAlive reports false once the slot is reused.
type Entity uint64

type entityID uint32
type generation uint32

const entityIDBits = 32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

func (e Entity) id() entityID {
	return entityID(uint32(e))
}

func (e Entity) generation() generation {
	return generation(uint32(uint64(e) >> entityIDBits))
}

// String formats the handle as id/generation, which reads better in logs
// than the packed value.
func (e Entity) String() string {
	return strconv.FormatUint(uint64(e.id()), 10) + "/" + strconv.FormatUint(uint64(e.generation()), 10)
}

// Valid reports whether e could name an entity at all. Slot 0 is reserved,
// so the zero Entity is never valid.
func (e Entity) Valid() bool {
	return e.id() != 0
}
