package warehouse

// FieldBinding names one field a system wants bound into its reusable
// proxy, under a caller-chosen alias. Bindings are resolved once, at
// RegisterSystem time, against the World's column stores; the
// resolved FieldRef is stable for the World's lifetime.
type FieldBinding struct {
	Alias     string
	Component ComponentHandle
	Field     string
}

// SystemProxy is the single reusable object a system's callback reads
// and writes through on every invocation, for every entity, every
// tick. Its EntityID is reassigned before each call; its bindings map
// is populated once at registration and never reallocated.
type SystemProxy struct {
	EntityID EntityID
	bindings map[string]any // alias -> FieldRef[K] for some K
}

// Bind resolves the alias bound at registration to its FieldRef[K]. It
// panics if the alias was not registered or was registered with a
// different primitive type; both are registration-time mistakes a
// correctly built system cannot trigger at call time.
func Bind[K Primitive](p *SystemProxy, alias string) FieldRef[K] {
	raw, ok := p.bindings[alias]
	if !ok {
		panic("warehouse: system proxy has no binding for alias " + alias)
	}
	ref, ok := raw.(FieldRef[K])
	if !ok {
		panic("warehouse: system proxy binding " + alias + " is not of the requested type")
	}
	return ref
}

// GetField reads the bound field's current value for the proxy's
// current entity.
func GetField[K Primitive](p *SystemProxy, alias string) K {
	return Bind[K](p, alias).Get(p.EntityID)
}

// GetValue is an alias for GetField kept for call-site readability at
// use sites that read as "get the value of X" rather than "get field".
func GetValue[K Primitive](p *SystemProxy, alias string) K {
	return GetField[K](p, alias)
}

// SetValue writes the bound field's value for the proxy's current
// entity.
func SetValue[K Primitive](p *SystemProxy, alias string, v K) {
	Bind[K](p, alias).Set(p.EntityID, v)
}

// RawArray returns the bound field's entire backing array, for
// callbacks that want to index entities other than the proxy's
// current one (e.g. reading a target's Health while iterating
// attackers).
func RawArray[K Primitive](p *SystemProxy, alias string) []K {
	return Bind[K](p, alias).Array()
}

// SystemCallback is invoked once per matching entity, per tick, with
// proxy.EntityID set to that entity and every bound field reachable
// through proxy.
type SystemCallback func(proxy *SystemProxy, dt float64, w *World)

// SystemID identifies a registered system in its World's registration
// order.
type SystemID int

type systemRecord struct {
	signature []ComponentHandle
	mask      []uint32
	bindings  []FieldBinding
	proxy     *SystemProxy
	callback  SystemCallback
}

// RegisterSystem declares a system over signature, with its proxy
// pre-bound to the fields named in bindings, and its callback invoked
// once per tick for every entity matching signature. The returned
// SystemID reflects registration order; RunSystems executes systems
// in that same order, every tick.
//
// An empty signature is rejected with EmptySignatureError: a
// signature-less system would match every entity and iterate the
// entire World regardless of what it actually reads, defeating the
// point of a signature. A binding naming an unregistered component or
// an unknown/mistyped field is rejected at registration time, not
// discovered on first tick.
func (w *World) RegisterSystem(signature []ComponentHandle, bindings []FieldBinding, cb SystemCallback) (SystemID, error) {
	if len(signature) == 0 {
		return -1, EmptySignatureError{}
	}
	mask, err := w.buildMask(signature)
	if err != nil {
		return -1, err
	}

	proxy := &SystemProxy{bindings: make(map[string]any, len(bindings))}
	for _, b := range bindings {
		ref, err := resolveFieldAny(w, b.Component, b.Field)
		if err != nil {
			return -1, err
		}
		proxy.bindings[b.Alias] = ref
	}

	rec := &systemRecord{
		signature: signature,
		mask:      mask,
		bindings:  bindings,
		proxy:     proxy,
		callback:  cb,
	}
	w.systems = append(w.systems, rec)

	// Prime the cache entry for this exact mask now, so the first tick
	// is not the first time this signature's buffer gets built.
	w.queryByMask(mask)

	return SystemID(len(w.systems) - 1), nil
}

// resolveFieldAny resolves a field binding without knowing K up front,
// by dispatching on the field's declared kind and boxing the
// resulting FieldRef[K] as the concrete type Bind[K] later type-
// asserts back out. This is the one place the system registry needs
// to bridge type-erased bindings to the generic FieldRef machinery.
func resolveFieldAny(w *World, c ComponentHandle, field string) (any, error) {
	desc := c.Descriptor()
	idx, ok := desc.fieldIndex[field]
	if !ok {
		return nil, UnknownFieldError{Component: desc.name, Field: field}
	}
	switch desc.fields[idx].Kind {
	case KindU8:
		return Field[uint8](w, c, field)
	case KindU16:
		return Field[uint16](w, c, field)
	case KindU32:
		return Field[uint32](w, c, field)
	case KindI32:
		return Field[int32](w, c, field)
	case KindF32:
		return Field[float32](w, c, field)
	default:
		return nil, UnknownFieldError{Component: desc.name, Field: field}
	}
}

// RunSystems executes every registered system once, in registration
// order, over the live entities currently matching its signature. The
// pass is bracketed in Lock/Unlock so Enqueue* calls made from inside
// a callback are queued and applied after every system has run,
// rather than reshaping the live-ids list mid-iteration.
//
// Each system fetches its entity list once, before its pass; a despawn
// from a callback bumps the archetype version, so later systems fetch
// a fresh list that excludes the id. Within the running system's pass
// the list is not refreshed, so an id despawned by an earlier callback
// of the same pass is skipped rather than passed to the callback:
// RunSystems re-checks liveness per id as it iterates.
func (w *World) RunSystems(dt float64) {
	w.Lock()
	for _, rec := range w.systems {
		ids := w.queryByMask(rec.mask)
		for _, eid := range ids {
			if !w.allocator.isAlive(eid) {
				continue
			}
			rec.proxy.EntityID = eid
			rec.callback(rec.proxy, dt, w)
		}
	}
	w.Unlock()
}
