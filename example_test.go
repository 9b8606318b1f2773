package warehouse

import "fmt"

// ExampleWorld_spawnDespawnReuse walks scenario A: with a ring of
// freed ids, the high-water mark advances only when the ring is
// empty, and a freed id comes back before any higher id is minted.
func ExampleWorld_spawnDespawnReuse() {
	type T struct{ V uint8 }
	tc, _ := NewComponent[T]("T")
	w, _ := NewWorld(Config{MaxEntities: 4, Components: []ComponentHandle{tc}})

	a, _ := w.Spawn() // 0
	b, _ := w.Spawn() // 1
	w.Despawn(a)
	c, _ := w.Spawn() // reuses 0
	d, _ := w.Spawn() // 2

	fmt.Println(a, b, c, d)
	// Output: 0 1 0 2
}

// ExampleUpdateComponent_partial walks scenario B: update touches only
// the named fields and leaves the rest of the record untouched.
func ExampleUpdateComponent_partial() {
	type Transform struct{ X, Y, R float32 }
	tr, _ := NewComponent[Transform]("Transform")
	w, _ := NewWorld(Config{MaxEntities: 1, Components: []ComponentHandle{tr}})

	e, _ := w.Spawn()
	AddComponent(w, e, tr, Transform{X: 100, Y: 200, R: 0})
	UpdateComponent(w, e, tr, map[string]any{"X": float32(150)})

	got, _ := ReadComponentCopy(w, e, tr)
	fmt.Printf("%+v\n", got)
	// Output: {X:150 Y:200 R:0}
}

// Example_queryCachePersistence walks scenario C and D: field updates
// alone never change a query's result set, but a despawn does.
func Example_queryCachePersistence() {
	type T struct{ V uint8 }
	type V struct{ V uint8 }
	tc, _ := NewComponent[T]("T")
	vc, _ := NewComponent[V]("V")
	w, _ := NewWorld(Config{MaxEntities: 1000, Components: []ComponentHandle{tc, vc}})

	ids := make([]EntityID, 1000)
	for i := range ids {
		e, _ := w.Spawn()
		AddComponent(w, e, tc, T{})
		AddComponent(w, e, vc, V{})
		ids[i] = e
	}

	before, _ := w.Query(tc, vc)
	for _, e := range ids {
		UpdateComponent(w, e, tc, map[string]any{"V": uint8(1)})
	}
	after, _ := w.Query(tc, vc)
	fmt.Println(len(before), len(after), &before[0] == &after[0])

	for i := 0; i < 10; i++ {
		w.Despawn(ids[i])
	}
	final, _ := w.Query(tc, vc)
	fmt.Println(len(final))
	// Output:
	// 1000 1000 true
	// 990
}

// Example_combatCrossEntityRead walks scenario E: a system on A reads
// B's Health and Armor directly, without B matching A's own signature.
func Example_combatCrossEntityRead() {
	type Cooldown struct{ Current, Max float32 }
	type Damage struct{ Amount uint16 }
	type Target struct{ EID uint32 }
	type Health struct{ Current, Max uint16 }
	type Armor struct{ Value uint16 }

	cooldown, _ := NewComponent[Cooldown]("Cooldown")
	damage, _ := NewComponent[Damage]("Damage")
	target, _ := NewComponent[Target]("Target")
	health, _ := NewComponent[Health]("Health")
	armor, _ := NewComponent[Armor]("Armor")

	w, _ := NewWorld(Config{MaxEntities: 4, Components: []ComponentHandle{
		cooldown, damage, target, health, armor,
	}})

	a, _ := w.Spawn()
	b, _ := w.Spawn()
	AddComponent(w, a, cooldown, Cooldown{Current: 0, Max: 1})
	AddComponent(w, a, damage, Damage{Amount: 20})
	AddComponent(w, a, target, Target{EID: uint32(b)})
	AddComponent(w, b, health, Health{Current: 100, Max: 100})
	AddComponent(w, b, armor, Armor{Value: 50})

	healthArr, _ := Field[uint16](w, health, "Current")

	_, err := w.RegisterSystem(
		[]ComponentHandle{cooldown, damage, target},
		[]FieldBinding{
			{Alias: "cd", Component: cooldown, Field: "Current"},
			{Alias: "cdMax", Component: cooldown, Field: "Max"},
			{Alias: "dmg", Component: damage, Field: "Amount"},
			{Alias: "tgt", Component: target, Field: "EID"},
		},
		func(p *SystemProxy, dt float64, w *World) {
			cd := GetValue[float32](p, "cd")
			if cd > 0 {
				next := cd - float32(dt)
				if next < 0 {
					next = 0
				}
				SetValue(p, "cd", next)
				return
			}
			tgt := EntityID(GetValue[uint32](p, "tgt"))
			armorVal, _ := ReadComponentCopy(w, tgt, armor)
			amount := GetValue[uint16](p, "dmg")
			computed := float32(amount) - float32(armorVal.Value)*0.1
			if computed < 1 {
				computed = 1
			}
			healthArr.Set(tgt, healthArr.Get(tgt)-uint16(computed))
			SetValue(p, "cd", GetValue[float32](p, "cdMax"))
		},
	)
	if err != nil {
		panic(err)
	}

	w.RunSystems(0)
	first, _ := ReadComponentCopy(w, b, health)
	firstCD, _ := ReadComponentCopy(w, a, cooldown)

	w.RunSystems(0.5)
	secondCD, _ := ReadComponentCopy(w, a, cooldown)

	fmt.Println(first.Current, firstCD.Current, secondCD.Current)
	// Output: 85 1 0.5
}

// Example_boundaryWrap walks scenario F: a boundary system wraps
// positions that have drifted outside [0, 1000] back into range.
func Example_boundaryWrap() {
	type Transform struct{ X, Y, Rot float32 }
	tr, _ := NewComponent[Transform]("Transform")
	w, _ := NewWorld(Config{MaxEntities: 2, Components: []ComponentHandle{tr}})

	e, _ := w.Spawn()
	AddComponent(w, e, tr, Transform{X: -1, Y: 1001})

	const lo, hi = 0, 1000
	w.RegisterSystem(
		[]ComponentHandle{tr},
		[]FieldBinding{
			{Alias: "x", Component: tr, Field: "X"},
			{Alias: "y", Component: tr, Field: "Y"},
		},
		func(p *SystemProxy, dt float64, w *World) {
			x := GetValue[float32](p, "x")
			y := GetValue[float32](p, "y")
			if x < lo {
				x = hi
			} else if x > hi {
				x = lo
			}
			if y < lo {
				y = hi
			} else if y > hi {
				y = lo
			}
			SetValue(p, "x", x)
			SetValue(p, "y", y)
		},
	)
	w.RunSystems(0)

	got, _ := ReadComponentCopy(w, e, tr)
	fmt.Println(got.X, got.Y)
	// Output: 1000 0
}
