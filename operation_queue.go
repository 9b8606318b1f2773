package warehouse

// EntityOperation is a deferred structural mutation recorded while the
// World is locked, to be replayed once the lock clears. This mirrors
// the teacher's entityOperationsQueue: systems that need to despawn or
// reshape entities mid-tick queue the change instead of mutating the
// live-ids list or column stores out from under the iteration in
// progress.
type EntityOperation interface {
	apply(w *World) error
}

type despawnOp struct {
	entity EntityID
}

func (op despawnOp) apply(w *World) error {
	return w.Despawn(op.entity)
}

type removeComponentOp struct {
	entity    EntityID
	component ComponentHandle
}

func (op removeComponentOp) apply(w *World) error {
	return RemoveComponent(w, op.entity, op.component)
}

type addComponentOp[T any] struct {
	entity    EntityID
	component Component[T]
	value     T
}

func (op addComponentOp[T]) apply(w *World) error {
	return applyAddComponent(w, op.entity, op.component, op.value)
}

// Lock marks the World as "tick in progress": EnqueueDespawn,
// EnqueueRemoveComponent and EnqueueAddComponent calls made while
// locked are queued rather than applied immediately. Despawn,
// RemoveComponent and AddComponent themselves still apply immediately
// while locked. RunSystems brackets every
// tick in Lock/Unlock; direct callers outside a tick rarely need this
// themselves.
func (w *World) Lock() {
	w.locks.Mark(tickLockBit)
}

// Unlock clears the tick-in-progress bit and flushes every operation
// queued while locked, in the order they were enqueued. A failing
// operation does not stop the flush; the first error is returned.
func (w *World) Unlock() error {
	w.locks.Unmark(tickLockBit)
	return w.flushQueue()
}

func (w *World) locked() bool {
	return !w.locks.IsEmpty()
}

func (w *World) flushQueue() error {
	pending := w.queue
	w.queue = nil
	var firstErr error
	for _, op := range pending {
		if err := op.apply(w); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// EnqueueDespawn queues e for despawn once the current lock clears. If
// the World is not currently locked, it despawns e immediately.
func EnqueueDespawn(w *World, e EntityID) {
	if !w.locked() {
		w.Despawn(e)
		return
	}
	w.queue = append(w.queue, despawnOp{entity: e})
}

// EnqueueRemoveComponent queues removal of c from e once the current
// lock clears. If the World is not currently locked, it removes
// immediately.
func EnqueueRemoveComponent(w *World, e EntityID, c ComponentHandle) {
	if !w.locked() {
		_ = RemoveComponent(w, e, c)
		return
	}
	w.queue = append(w.queue, removeComponentOp{entity: e, component: c})
}

// EnqueueAddComponent queues attaching c to e with value once the
// current lock clears. If the World is not currently locked, it
// applies immediately.
func EnqueueAddComponent[T any](w *World, e EntityID, c Component[T], value T) {
	if !w.locked() {
		_ = applyAddComponent(w, e, c, value)
		return
	}
	w.queue = append(w.queue, addComponentOp[T]{entity: e, component: c, value: value})
}
