package warehouse

// entityAllocator owns the high-water id, the free-id ring, and the
// live-flag/live-ids bookkeeping described in spec.md §4.2. Ring
// capacity is the next power of two >= capacity so index wrap is a
// bitwise AND.
type entityAllocator struct {
	capacity  int
	highWater int

	ring     []EntityID
	ringMask int
	head     int
	tail     int
	count    int

	alive     []bool
	liveIDs   []EntityID
	liveIndex []int // entity id -> index into liveIDs, for O(1) swap-remove
}

func newEntityAllocator(capacity int) *entityAllocator {
	ringCap := nextPow2(capacity)
	if ringCap == 0 {
		ringCap = 1
	}
	return &entityAllocator{
		capacity:  capacity,
		ring:      make([]EntityID, ringCap),
		ringMask:  ringCap - 1,
		alive:     make([]bool, capacity),
		liveIDs:   make([]EntityID, 0, capacity),
		liveIndex: make([]int, capacity),
	}
}

func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

func (a *entityAllocator) pushRing(id EntityID) {
	a.ring[a.head] = id
	a.head = (a.head + 1) & a.ringMask
	a.count++
}

func (a *entityAllocator) popRing() EntityID {
	id := a.ring[a.tail]
	a.tail = (a.tail + 1) & a.ringMask
	a.count--
	return id
}

// spawn returns a reused id from the ring if one is available
// (oldest-despawned-first, FIFO), otherwise advances the high-water.
// It does not touch the bitmask or archetype version; the caller
// (World.Spawn) owns those.
func (a *entityAllocator) spawn() (EntityID, error) {
	var id EntityID
	if a.count > 0 {
		id = a.popRing()
	} else {
		if a.highWater >= a.capacity {
			return 0, CapacityExceededError{MaxEntities: a.capacity}
		}
		id = EntityID(a.highWater)
		a.highWater++
	}
	a.alive[id] = true
	a.liveIndex[id] = len(a.liveIDs)
	a.liveIDs = append(a.liveIDs, id)
	return id, nil
}

// despawn returns false (a silent no-op, per spec.md §7 "double
// despawn") if the id was already dead. Otherwise it swap-removes the
// id from the live-ids list, pushes it to the ring, and returns true
// so the caller knows to clear the id's columns and bitmask.
func (a *entityAllocator) despawn(id EntityID) bool {
	if !a.alive[id] {
		return false
	}
	a.alive[id] = false

	idx := a.liveIndex[id]
	last := len(a.liveIDs) - 1
	lastID := a.liveIDs[last]
	a.liveIDs[idx] = lastID
	a.liveIndex[lastID] = idx
	a.liveIDs = a.liveIDs[:last]

	a.pushRing(id)
	return true
}

func (a *entityAllocator) isAlive(id EntityID) bool {
	if int(id) >= a.capacity {
		return false
	}
	return a.alive[id]
}
