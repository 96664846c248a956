// Package panelcast turns regions of a captured video source into animated
// tiles ("panels") on a canvas, built on [Ebitengine].
//
// It has two halves. The region editor lets a user draw boxes over a
// preview of the source frame and move or resize them with nine handles.
// The animation engine then moves one panel per confirmed region across the
// canvas using one of thirteen motion modes.
//
// # Quick start
//
//	scene := panelcast.NewScene(panelcast.NewRegion(0.1, 0.1, 0.3, 0.3))
//	scene.Container = panelcast.Rect{X: 20, Y: 20, Width: 640, Height: 360}
//	scene.Source = frame // *ebiten.Image from your capture pipeline
//	panelcast.Run(scene, panelcast.RunConfig{
//		Title: "panels", Width: 1280, Height: 720,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update] and [Scene.Draw] directly.
//
// # Regions
//
// A [Region] is a rectangle in normalized frame coordinates. Every value
// produced by the editor keeps the region inside the frame and at least
// [MinRegionSize] wide and tall. Moves are clamped at the frame edge;
// resizes that would break a constraint are rejected for that axis, so the
// edge sticks instead of jumping.
//
// [RegionEditor] is the drag state machine. [ApplyDrag] is the pure rule it
// applies per pointer event, usable on its own.
//
// # Panels
//
// [NewPanel] seeds a [PanelState] for a region; [Advance] steps it one frame
// for the chosen [Mode]. Advance is a pure function: hosts can diff, batch
// or skip frames freely.
//
// # Persistence and events
//
// [Settings] and whole [Session] snapshots are stored as YAML. Region and
// panel events can be forwarded to an ECS world through [EventStore]; see
// the panelcast/ecs module for a [Donburi] adapter.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package panelcast
