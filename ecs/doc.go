// Package ecs provides ECS adapters for panelcast's region and panel events.
//
// The primary adapter is [NewDonburiStore], which forwards panelcast events
// (region activation and edits, drag begin/end, panels spawned/stopped)
// into a [Donburi] world as typed events. Subscribe to [PanelEventType] in
// your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
