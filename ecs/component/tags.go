package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

// DummyTag marks a training dummy: a character that never acts on its own.
type DummyTag struct{}

var DummyTagComponent = NewComponent[DummyTag]()
