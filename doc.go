/*
Package warehouse provides a fixed-capacity Entity-Component-System (ECS)
runtime for simulation workloads: game tick loops, rollback networking,
server-side deterministic simulation.

Warehouse partitions entity state into small, strongly-typed components
stored column-by-column (structure-of-arrays) across a fixed pool of
entity slots, and lets client code register systems that iterate the
entities matching a component signature once per tick.

Core Concepts:

  - Entity: a dense integer id in [0, MaxEntities) identifying a row
    across every component's column store.
  - Component: a named record type whose fields live in per-field
    primitive arrays, one slot per entity id.
  - Archetype: the set of components currently attached to an entity,
    encoded as a multi-word bitmask.
  - Query: a persistent, archetype-version-cached lookup for entities
    carrying every component in a signature.
  - System: a registered signature, a set of resolved column bindings,
    and a per-entity callback invoked once per tick.

Basic Usage:

	transform, _ := warehouse.NewComponent[Transform]("Transform")

	world, _ := warehouse.NewWorld(warehouse.Config{
		MaxEntities: 1024,
		Components:  []warehouse.ComponentHandle{transform},
	})

	e, _ := world.Spawn()
	_ = warehouse.AddComponent(world, e, transform, Transform{X: 100, Y: 200})

	ids, _ := world.Query(transform)
	for _, id := range ids {
		t, _ := warehouse.ReadComponentCopy(world, id, transform)
		t.X += 1
		_ = warehouse.SetComponent(world, id, transform, t)
	}

Warehouse performs no I/O, no allocation on the hot path once a World is
constructed, and no threaded system scheduling; a tick is a single,
non-preemptive pass over the registered systems in registration order.
*/
package warehouse
