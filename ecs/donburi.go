package ecs

import (
	"github.com/phanxgames/panelcast"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// PanelEventType is the Donburi event type for panelcast events.
var PanelEventType = events.NewEventType[panelcast.PanelEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world.
// Events are published to PanelEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) panelcast.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event panelcast.PanelEvent) {
	PanelEventType.Publish(s.world, event)
}
