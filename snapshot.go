package warehouse

// Snapshot is a point-in-time, per-field copy of one component's data
// for a chosen set of entities: the producer side of the serialization
// surface described in spec.md §9/§11. Each value in Fields is a
// concrete primitive slice (e.g. []float32), indexed in the same order
// as EntityIDs, not by entity id.
type Snapshot struct {
	Component *ComponentDescriptor
	EntityIDs []EntityID
	Fields    map[string]any
}

// SnapshotComponent copies every field of c for the entities in ids
// into a Snapshot. ids need not be live; a dead id copies whatever
// values currently occupy its column slot (zero after a despawn),
// since a Snapshot is a raw data copy, not a liveness-filtered query
// result. Every id must be below the World's capacity; an out-of-range
// id indexes past the field arrays and panics. Callers that want only live entities should filter ids
// themselves, typically from a prior Query call.
func (w *World) SnapshotComponent(c ComponentHandle, ids []EntityID) (Snapshot, error) {
	desc := c.Descriptor()
	store, err := w.columnStoreFor(desc)
	if err != nil {
		return Snapshot{}, err
	}
	idsCopy := make([]EntityID, len(ids))
	copy(idsCopy, ids)
	return Snapshot{
		Component: desc,
		EntityIDs: idsCopy,
		Fields:    store.snapshotFields(ids),
	}, nil
}

// Deserialize is a deliberate, documented failure: the consumer side
// of the serialization surface (restoring a World from a Snapshot
// stream) is not yet implemented. Its wire format and collaborator
// are still an open decision; callers should treat ErrNotImplemented
// as a stable signal, not a bug to work around.
func (w *World) Deserialize(data []byte) error {
	return ErrNotImplemented
}
