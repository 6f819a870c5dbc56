package ecs

import (
	"github.com/phanxgames/ycanvas"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for resolved ycanvas
// dispatches. Each published event is the single topmost hit of one raw
// pointer event.
var InteractionEventType = events.NewEventType[ycanvas.InteractionEvent]()

// ShapeRef is the component Bind attaches to the entity created for a shape.
type ShapeRef struct {
	ID ycanvas.ShapeID
}

// ShapeComponent stores the ShapeRef of a bound entity.
var ShapeComponent = donburi.NewComponentType[ShapeRef]()

// DonburiStore is a ycanvas.EntityStore backed by a Donburi world.
type DonburiStore struct {
	world    donburi.World
	entities map[uint32]donburi.Entity
	nextID   uint32
}

var _ ycanvas.EntityStore = (*DonburiStore)(nil)

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Interaction events are published to InteractionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) *DonburiStore {
	return &DonburiStore{
		world:    world,
		entities: make(map[uint32]donburi.Entity),
	}
}

// EmitEvent implements ycanvas.EntityStore.
func (s *DonburiStore) EmitEvent(event ycanvas.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}

// Bind creates an entity carrying a ShapeComponent for shape and assigns
// the shape an EntityID so its dispatches are forwarded. Binding a shape
// that already has an entity in this store returns that entity.
func (s *DonburiStore) Bind(shape ycanvas.Shape) donburi.Entity {
	b := shape.Base()
	if b.EntityID != 0 {
		if e, ok := s.entities[b.EntityID]; ok {
			return e
		}
	}
	entity := s.world.Create(ShapeComponent)
	ShapeComponent.SetValue(s.world.Entry(entity), ShapeRef{ID: b.ID()})

	s.nextID++
	b.EntityID = s.nextID
	s.entities[b.EntityID] = entity
	return entity
}

// Unbind removes the entity created for shape and clears its EntityID.
func (s *DonburiStore) Unbind(shape ycanvas.Shape) {
	b := shape.Base()
	e, ok := s.entities[b.EntityID]
	if !ok {
		return
	}
	delete(s.entities, b.EntityID)
	b.EntityID = 0
	if s.world.Valid(e) {
		s.world.Remove(e)
	}
}

// Entity returns the entity bound to the given EntityID, as carried by
// InteractionEvent.EntityID.
func (s *DonburiStore) Entity(id uint32) (donburi.Entity, bool) {
	e, ok := s.entities[id]
	return e, ok
}
