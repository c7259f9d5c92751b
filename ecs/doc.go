// Package ecs provides ECS adapters for gesture events.
//
// The primary adapter is [NewDonburiSink], which bridges START, MOVE and END
// events from every pointer of a [gesture.Surface] into a [Donburi] world as
// typed events. Subscribe to [GestureEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	surface.SetSink(sink)
//
//	p, _ := surface.Add(gesture.HitRect{Width: 320, Height: 200}, opts)
//	sink.Bind(p.ID(), entity)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
