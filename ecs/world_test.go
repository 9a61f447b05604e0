package ecs

import (
	"testing"

	"github.com/milk9111/openworld/ecs/component"
)

func TestEntityIDsAreRecycled(t *testing.T) {
	tests := []struct {
		name    string
		spawn   int
		despawn []int
		live    int
	}{
		{name: "empty arena", spawn: 0, live: 0},
		{name: "player and dummy", spawn: 2, live: 2},
		{name: "particle burst expires", spawn: 5, despawn: []int{1, 2, 3}, live: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, tt.spawn)
			for i := range ents {
				ents[i] = CreateEntity(w)
			}
			for _, i := range tt.despawn {
				if !DestroyEntity(w, ents[i]) {
					t.Fatalf("despawn %d: entity was not alive", i)
				}
			}
			if got := len(Entities(w)); got != tt.live {
				t.Fatalf("expected %d live entities, got %d", tt.live, got)
			}
			if len(tt.despawn) == 0 {
				return
			}

			next := CreateEntity(w)
			if !IsAlive(w, next) {
				t.Fatal("new entity should be alive")
			}
			for _, i := range tt.despawn {
				if next == ents[i] {
					t.Fatalf("recycled handle %v must not equal the despawned one", next)
				}
			}
		})
	}
}

func TestTransformLifecycle(t *testing.T) {
	w := NewWorld()
	kind := component.TransformComponent.Kind()
	e := CreateEntity(w)

	if Has(w, e, kind) {
		t.Fatal("fresh entity should carry no transform")
	}
	if err := Add(w, e, kind, &component.Transform{X: 10, Y: 20, Yaw: 1.5}); err != nil {
		t.Fatalf("add transform: %v", err)
	}

	tr, ok := Get(w, e, kind)
	if !ok || tr.X != 10 || tr.Y != 20 {
		t.Fatalf("unexpected transform %+v ok=%v", tr, ok)
	}
	tr.X = 42
	if again, _ := Get(w, e, kind); again.X != 42 {
		t.Fatal("Get should hand out the stored pointer")
	}

	if err := Add(w, e, kind, &component.Transform{X: 1}); err != nil {
		t.Fatalf("replace transform: %v", err)
	}
	if again, _ := Get(w, e, kind); again.X != 1 || again.Yaw != 0 {
		t.Fatalf("Add should replace the component, got %+v", again)
	}

	if !Remove(w, e, kind) {
		t.Fatal("remove should report true")
	}
	if Remove(w, e, kind) {
		t.Fatal("second remove should report false")
	}
	if _, ok := Get(w, e, kind); ok {
		t.Fatal("transform should be gone")
	}
}

func TestForEachVisitsOnlyCarriers(t *testing.T) {
	w := NewWorld()
	kind := component.TTLComponent.Kind()

	short := CreateEntity(w)
	CreateEntity(w)
	long := CreateEntity(w)
	if err := Add(w, short, kind, &component.TTL{Frames: 1}); err != nil {
		t.Fatal(err)
	}
	if err := Add(w, long, kind, &component.TTL{Frames: 30}); err != nil {
		t.Fatal(err)
	}

	frames := map[Entity]int{}
	ForEach(w, kind, func(e Entity, ttl *component.TTL) { frames[e] = ttl.Frames })

	want := map[Entity]int{short: 1, long: 30}
	if len(frames) != len(want) {
		t.Fatalf("expected %v, got %v", want, frames)
	}
	for e, n := range want {
		if frames[e] != n {
			t.Fatalf("entity %v: expected %d frames, got %d", e, n, frames[e])
		}
	}
}

// arenaWorld builds a player with input, a dummy without, a sword on the
// ground and a hazard, each carrying a different slice of components.
func arenaWorld(t *testing.T) (w *World, player, dummy, sword, hazard Entity) {
	t.Helper()
	w = NewWorld()
	player, dummy, sword, hazard = CreateEntity(w), CreateEntity(w), CreateEntity(w), CreateEntity(w)

	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
	}
	for _, e := range []Entity{player, dummy} {
		must(Add(w, e, component.ActorComponent.Kind(), &component.Actor{Radius: 14}))
		must(Add(w, e, component.TransformComponent.Kind(), &component.Transform{}))
		must(Add(w, e, component.MotionComponent.Kind(), &component.Motion{}))
	}
	must(Add(w, player, component.InputComponent.Kind(), &component.Input{}))
	must(Add(w, player, component.ControllerComponent.Kind(), &component.Controller{}))
	must(Add(w, sword, component.PickupComponent.Kind(), &component.Pickup{Radius: 12}))
	must(Add(w, sword, component.TransformComponent.Kind(), &component.Transform{}))
	must(Add(w, hazard, component.HazardComponent.Kind(), &component.Hazard{Damage: 5}))
	must(Add(w, hazard, component.TransformComponent.Kind(), &component.Transform{}))
	return w, player, dummy, sword, hazard
}

func collect(fn func(func(Entity))) map[Entity]bool {
	seen := map[Entity]bool{}
	fn(func(e Entity) { seen[e] = true })
	return seen
}

func TestMultiKindIteration(t *testing.T) {
	w, player, dummy, sword, _ := arenaWorld(t)

	tests := []struct {
		name string
		run  func(func(Entity))
		want []Entity
	}{
		{
			name: "actors with transforms",
			run: func(visit func(Entity)) {
				ForEach2(w, component.ActorComponent.Kind(), component.TransformComponent.Kind(), func(e Entity, _ *component.Actor, _ *component.Transform) { visit(e) })
			},
			want: []Entity{player, dummy},
		},
		{
			name: "pickups on the ground",
			run: func(visit func(Entity)) {
				ForEach2(w, component.PickupComponent.Kind(), component.TransformComponent.Kind(), func(e Entity, _ *component.Pickup, _ *component.Transform) { visit(e) })
			},
			want: []Entity{sword},
		},
		{
			name: "controlled actors",
			run: func(visit func(Entity)) {
				ForEach3(w, component.InputComponent.Kind(), component.ControllerComponent.Kind(), component.ActorComponent.Kind(), func(e Entity, _ *component.Input, _ *component.Controller, _ *component.Actor) {
					visit(e)
				})
			},
			want: []Entity{player},
		},
		{
			name: "movers",
			run: func(visit func(Entity)) {
				ForEach4(w, component.MotionComponent.Kind(), component.TransformComponent.Kind(), component.ControllerComponent.Kind(), component.ActorComponent.Kind(), func(e Entity, _ *component.Motion, _ *component.Transform, _ *component.Controller, _ *component.Actor) {
					visit(e)
				})
			},
			want: []Entity{player},
		},
		{
			name: "hazards never carry input",
			run: func(visit func(Entity)) {
				ForEach2(w, component.HazardComponent.Kind(), component.InputComponent.Kind(), func(e Entity, _ *component.Hazard, _ *component.Input) { visit(e) })
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen := collect(tt.run)
			if len(seen) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, seen)
			}
			for _, e := range tt.want {
				if !seen[e] {
					t.Fatalf("expected %v to be visited, got %v", e, seen)
				}
			}
		})
	}
}

func TestMultiKindIterationSkipsDestroyed(t *testing.T) {
	w, player, _, _, _ := arenaWorld(t)
	if !DestroyEntity(w, player) {
		t.Fatal("destroy failed")
	}

	visited := 0
	ForEach3(w, component.InputComponent.Kind(), component.ControllerComponent.Kind(), component.ActorComponent.Kind(), func(Entity, *component.Input, *component.Controller, *component.Actor) {
		visited++
	})
	ForEach4(w, component.MotionComponent.Kind(), component.TransformComponent.Kind(), component.ControllerComponent.Kind(), component.ActorComponent.Kind(), func(Entity, *component.Motion, *component.Transform, *component.Controller, *component.Actor) {
		visited++
	})
	if visited != 0 {
		t.Fatalf("destroyed player still visited %d times", visited)
	}
}

func TestMultiKindIterationWithoutStores(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)
	if err := Add(w, e, component.ActorComponent.Kind(), &component.Actor{}); err != nil {
		t.Fatal(err)
	}

	ForEach3(w, component.InputComponent.Kind(), component.ControllerComponent.Kind(), component.ActorComponent.Kind(), func(Entity, *component.Input, *component.Controller, *component.Actor) {
		t.Fatal("no entity carries input")
	})
	ForEach3(nil, component.InputComponent.Kind(), component.ControllerComponent.Kind(), component.ActorComponent.Kind(), nil)
}

func intPtr(i int) *int {
	return &i
}

func TestDestroyEntity_StaleHandle(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	old := CreateEntity(w)
	if err := Add(w, old, h.Kind(), intPtr(1)); err != nil {
		t.Fatal(err)
	}
	if !DestroyEntity(w, old) {
		t.Fatal("destroy failed")
	}
	if DestroyEntity(w, old) {
		t.Fatal("double destroy should report false")
	}

	reused := CreateEntity(w)
	if reused.id() != old.id() {
		t.Fatalf("expected id reuse, got %d and %d", reused.id(), old.id())
	}
	if reused == old {
		t.Fatal("reused handle must carry a new generation")
	}
	if Has(w, reused, h.Kind()) {
		t.Fatal("components must not survive destruction")
	}
	if err := Add(w, old, h.Kind(), intPtr(2)); err == nil {
		t.Fatal("adding to a stale handle should fail")
	}
}

func TestAddRejectsNil(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	e := CreateEntity(w)

	if err := Add(w, e, h.Kind(), nil); err != component.ErrNilComponent {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
	if err := Add(w, e, component.ComponentKind[int]{}, intPtr(1)); err != component.ErrInvalidComponentKind {
		t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
	}
}

func TestFirst(t *testing.T) {
	w := NewWorld()
	tag := component.NewComponent[struct{}]()
	val := component.NewComponent[int]()

	if _, ok := First(w, tag.Kind()); ok {
		t.Fatal("expected no entity before any tag is added")
	}

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	if err := Add(w, e2, tag.Kind(), &struct{}{}); err != nil {
		t.Fatal(err)
	}
	if err := Add(w, e1, val.Kind(), intPtr(1)); err != nil {
		t.Fatal(err)
	}
	if err := Add(w, e2, val.Kind(), intPtr(2)); err != nil {
		t.Fatal(err)
	}

	first, ok := First(w, tag.Kind())
	if !ok || first != e2 {
		t.Fatalf("expected e2, got %v ok=%v", first, ok)
	}

	DestroyEntity(w, e2)
	if _, ok := First(w, tag.Kind()); ok {
		t.Fatal("destroyed entity should not be found")
	}
}

func TestForEachAllowsDestroy(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	for i := 0; i < 4; i++ {
		if err := Add(w, CreateEntity(w), h.Kind(), intPtr(i)); err != nil {
			t.Fatal(err)
		}
	}

	visited := 0
	ForEach(w, h.Kind(), func(e Entity, _ *int) {
		visited++
		DestroyEntity(w, e)
	})
	if visited != 4 {
		t.Fatalf("expected 4 visits, got %d", visited)
	}
	if n := len(Entities(w)); n != 0 {
		t.Fatalf("expected no live entities, got %d", n)
	}
}

func TestEventQueue(t *testing.T) {
	w := NewWorld()
	w.Events().Push(Event{Kind: EventHit, Amount: 5})
	w.Events().Push(Event{Kind: EventDeath})

	if w.Events().Len() != 2 {
		t.Fatalf("expected 2 queued events")
	}
	got := w.Events().Drain()
	if len(got) != 2 || got[0].Kind != EventHit || got[1].Kind != EventDeath {
		t.Fatalf("unexpected drain order %v", got)
	}
	if w.Events().Drain() != nil {
		t.Fatal("drain should clear the queue")
	}
}

type orderSystem struct {
	name string
	log  *[]string
}

func (s orderSystem) Update(*World) { *s.log = append(*s.log, s.name) }

func TestSchedulerRunsInOrder(t *testing.T) {
	var log []string
	s := NewScheduler(orderSystem{"input", &log}, nil, orderSystem{"physics", &log})
	s.Add(orderSystem{"render", &log})

	if n := len(s.Systems()); n != 3 {
		t.Fatalf("expected nil systems to be skipped, got %d", n)
	}
	s.Update(NewWorld())
	if len(log) != 3 || log[0] != "input" || log[1] != "physics" || log[2] != "render" {
		t.Fatalf("unexpected order %v", log)
	}
}
