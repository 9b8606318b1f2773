package warehouse

import (
	"strconv"
	"strings"
)

// queryCacheEntry is the persistent, per-signature cache described in
// spec.md §4.4: a required-bit mask, a reusable result buffer, and the
// archetype-version stamp the buffer was last computed at.
type queryCacheEntry struct {
	mask   []uint32
	buffer []EntityID
	stamp  uint64
}

// canonicalKey serializes mask's nonzero words as "w<index>:<hex>"
// pairs, joined by commas. Two masks that differ in any bit produce
// different keys; two masks with the same bits produce the same key
// regardless of how the signature's components were ordered, since
// the mask itself is already an OR of per-component bits.
func canonicalKey(mask []uint32) string {
	if len(mask) == 0 {
		return ""
	}
	var b strings.Builder
	first := true
	for i, word := range mask {
		if word == 0 {
			continue
		}
		if !first {
			b.WriteByte(',')
		}
		first = false
		b.WriteByte('w')
		b.WriteString(strconv.Itoa(i))
		b.WriteByte(':')
		b.WriteString(strconv.FormatUint(uint64(word), 16))
	}
	return b.String()
}

// Query resolves the required mask for signature, then returns the
// persistent cache's buffer: if the World's archetype version has not
// changed since the buffer was last computed, it is returned as-is
// with no iteration. Otherwise the buffer is recomputed by walking the
// live-ids list once.
//
// The returned slice is a borrowed reference to the cache's internal
// buffer. It remains valid until the next Query of the same signature
// finds the cache stale, or any spawn/despawn/AddComponent/
// RemoveComponent call, or World destruction. Callers must not retain
// it across such points; copy it out if they need to.
//
// Querying with a component that was never registered with this World
// returns an UnknownComponentError and does not mutate cache state.
//
// An empty signature always returns an empty result: a query that
// requires nothing matches nothing, not everything. This is the C=0
// boundary case and also covers the zero-component World, whose only
// possible Query call has an empty signature.
func (w *World) Query(signature ...ComponentHandle) ([]EntityID, error) {
	if len(signature) == 0 {
		return nil, nil
	}
	mask, err := w.buildMask(signature)
	if err != nil {
		return nil, err
	}
	return w.queryByMask(mask), nil
}

// queryByMask is the internal entry point system registration and
// execution use once the mask and key are already known, so it never
// re-validates the signature.
func (w *World) queryByMask(mask []uint32) []EntityID {
	key := canonicalKey(mask)
	entry, ok := w.cache[key]
	if !ok {
		entry = &queryCacheEntry{mask: mask}
		w.cache[key] = entry
	}
	if entry.stamp == w.archetypeVersion {
		return entry.buffer
	}

	cursor := 0
	for _, eid := range w.allocator.liveIDs {
		if matches(w.bitRow(eid), entry.mask) {
			if cursor < len(entry.buffer) {
				entry.buffer[cursor] = eid
			} else {
				entry.buffer = append(entry.buffer, eid)
			}
			cursor++
		}
	}
	entry.buffer = entry.buffer[:cursor]
	entry.stamp = w.archetypeVersion
	return entry.buffer
}
