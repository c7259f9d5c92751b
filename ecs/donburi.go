package ecs

import (
	"github.com/phanxgames/gesture"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GestureEvent is a gesture event tagged with the entity bound to the
// emitting pointer. Entity is the zero Entity when the pointer is unbound.
type GestureEvent struct {
	Entity donburi.Entity
	gesture.Event
}

// GestureEventType is the Donburi event type for gesture events.
var GestureEventType = events.NewEventType[GestureEvent]()

// DonburiSink is a gesture.EventSink that publishes into a Donburi world.
type DonburiSink struct {
	world    donburi.World
	entities map[gesture.Handle]donburi.Entity
}

// NewDonburiSink creates a sink publishing to GestureEventType. Events are
// queued until ProcessEvents runs.
func NewDonburiSink(world donburi.World) *DonburiSink {
	return &DonburiSink{world: world, entities: make(map[gesture.Handle]donburi.Entity)}
}

// Bind tags events from the pointer under h with entity.
func (s *DonburiSink) Bind(h gesture.Handle, entity donburi.Entity) {
	s.entities[h] = entity
}

// Unbind drops the entity for h.
func (s *DonburiSink) Unbind(h gesture.Handle) {
	delete(s.entities, h)
}

// EmitEvent implements gesture.EventSink.
func (s *DonburiSink) EmitEvent(event gesture.Event) {
	GestureEventType.Publish(s.world, GestureEvent{Entity: s.entities[event.Handle], Event: event})
}
