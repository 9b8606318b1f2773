package warehouse

// Handle is a fluent, chainable reference to one entity in one World,
// for call sites that prefer a chained style over threading *World and
// EntityID through every call. It carries the first error encountered
// so a chain can be written without checking after every step; Err
// reports it at the end.
type Handle struct {
	world *World
	id    EntityID
	err   error
}

// Handle returns a fluent reference to entity e in w.
func (w *World) Handle(e EntityID) Handle {
	return Handle{world: w, id: e}
}

// Entity returns the underlying entity id.
func (h Handle) Entity() EntityID { return h.id }

// Err returns the first error encountered by any call in the chain,
// or nil if every call so far has succeeded.
func (h Handle) Err() error { return h.err }

// Has reports whether the entity currently carries c.
func (h Handle) Has(c ComponentHandle) bool {
	if h.err != nil {
		return false
	}
	return h.world.Has(h.id, c)
}

// Remove detaches c from the entity. It fails the chain with a
// MissingComponentError if the entity did not carry c.
func (h Handle) Remove(c ComponentHandle) Handle {
	if h.err != nil {
		return h
	}
	if err := RemoveComponent(h.world, h.id, c); err != nil {
		h.err = err
	}
	return h
}

// Despawn despawns the entity.
func (h Handle) Despawn() Handle {
	if h.err != nil {
		return h
	}
	if err := h.world.Despawn(h.id); err != nil {
		h.err = err
	}
	return h
}

// Add attaches component c to h's entity with value, short-circuiting
// the rest of the chain if an earlier step already failed.
func Add[T any](h Handle, c Component[T], value T) Handle {
	if h.err != nil {
		return h
	}
	if err := AddComponent(h.world, h.id, c, value); err != nil {
		h.err = err
	}
	return h
}

// Set overwrites the full value of a component h's entity already
// carries.
func Set[T any](h Handle, c Component[T], value T) Handle {
	if h.err != nil {
		return h
	}
	if err := SetComponent(h.world, h.id, c, value); err != nil {
		h.err = err
	}
	return h
}

// Update writes only the fields named in patch.
func Update[T any](h Handle, c Component[T], patch map[string]any) Handle {
	if h.err != nil {
		return h
	}
	if err := UpdateComponent(h.world, h.id, c, patch); err != nil {
		h.err = err
	}
	return h
}

// Read returns a borrowed reference to h's entity's current value for
// c, or the chain's accumulated error if any earlier step failed.
func Read[T any](h Handle, c Component[T]) (*T, error) {
	if h.err != nil {
		return nil, h.err
	}
	return ReadComponent(h.world, h.id, c)
}
