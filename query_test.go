package warehouse

import "testing"

func TestQueryMatchesSignature(t *testing.T) {
	pos, _ := NewComponent[Position]("Position")
	vel, _ := NewComponent[Velocity]("Velocity")
	w, _ := NewWorld(Config{MaxEntities: 8, Components: []ComponentHandle{pos, vel}})

	both, _ := w.Spawn()
	AddComponent(w, both, pos, Position{})
	AddComponent(w, both, vel, Velocity{})

	posOnly, _ := w.Spawn()
	AddComponent(w, posOnly, pos, Position{})

	ids, err := w.Query(pos, vel)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(ids) != 1 || ids[0] != both {
		t.Fatalf("Query(pos, vel) = %v, want [%d]", ids, both)
	}

	ids, err = w.Query(pos)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("Query(pos) returned %d ids, want 2", len(ids))
	}
}

func TestQueryCacheHitReturnsSameBackingArray(t *testing.T) {
	pos, _ := NewComponent[Position]("Position")
	w, _ := NewWorld(Config{MaxEntities: 4, Components: []ComponentHandle{pos}})
	e, _ := w.Spawn()
	AddComponent(w, e, pos, Position{})

	first, err := w.Query(pos)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	second, err := w.Query(pos)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if &first[0] != &second[0] {
		t.Fatal("two consecutive queries with no structural change should share the same backing buffer")
	}
}

func TestQueryInvalidatesOnStructuralChange(t *testing.T) {
	pos, _ := NewComponent[Position]("Position")
	w, _ := NewWorld(Config{MaxEntities: 4, Components: []ComponentHandle{pos}})

	if ids, _ := w.Query(pos); len(ids) != 0 {
		t.Fatalf("Query on empty world = %v, want empty", ids)
	}

	e, _ := w.Spawn()
	AddComponent(w, e, pos, Position{})

	ids, err := w.Query(pos)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(ids) != 1 || ids[0] != e {
		t.Fatalf("Query after AddComponent = %v, want [%d]", ids, e)
	}
}

func TestQueryEmptySignatureReturnsEmpty(t *testing.T) {
	pos, _ := NewComponent[Position]("Position")
	w, _ := NewWorld(Config{MaxEntities: 4, Components: []ComponentHandle{pos}})
	w.Spawn()
	w.Spawn()

	ids, err := w.Query()
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("Query() with empty signature = %v, want empty: a query that requires nothing matches nothing", ids)
	}
}

func TestQueryUnknownComponent(t *testing.T) {
	pos, _ := NewComponent[Position]("Position")
	other, _ := NewComponent[Health]("Health")
	w, _ := NewWorld(Config{MaxEntities: 4, Components: []ComponentHandle{pos}})

	if _, err := w.Query(other); err == nil {
		t.Fatal("Query with an unregistered component should fail")
	}
}

func TestCanonicalKeyStableUnderZeroWords(t *testing.T) {
	if got := canonicalKey([]uint32{0, 0, 0}); got != "" {
		t.Fatalf("canonicalKey of all-zero mask = %q, want empty string", got)
	}
	if got := canonicalKey(nil); got != "" {
		t.Fatalf("canonicalKey(nil) = %q, want empty string", got)
	}
}
