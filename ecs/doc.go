// Package ecs provides ECS adapters for ycanvas.
//
// The primary adapter is [NewDonburiStore], which bridges resolved ycanvas
// pointer dispatches into a [Donburi] world as typed events. Subscribe to
// [InteractionEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	engine.SetEntityStore(store)
//	entity := store.Bind(box) // box now reports its entity on every dispatch
//
// Only shapes with a non-zero EntityID are forwarded; Bind assigns one.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
