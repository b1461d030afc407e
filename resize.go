package dhash

// resize rebuilds the slot array at NextPrime(newBase), moving every
// occupied record and dropping tombstones. Values are moved, never
// released. A negative target, or one too small to hold the current
// records, is ignored.
func (t *Table[V]) resize(newBase int, reason string) {
	if newBase < 0 {
		return
	}

	capacity := NextPrime(newBase)
	if capacity <= t.count {
		return
	}

	slots := make([]slot[V], capacity)
	for i := range t.slots {
		s := &t.slots[i]
		if s.state != slotOccupied {
			continue
		}

		p := newProber(s.rec.key, capacity)
		for attempt := 0; ; attempt++ {
			idx := p.at(attempt)
			if slots[idx].state == slotEmpty {
				slots[idx] = *s
				break
			}
		}
	}

	from := len(t.slots)
	t.slots, t.baseCapacity, t.tombstones = slots, newBase, 0

	t.logger.LogResize(reason, from, capacity, t.count)
}

// resizeUp doubles the base capacity. Tiny tables whose doubled base does
// not exceed the current capacity step past it instead.
func (t *Table[V]) resizeUp() {
	target := t.baseCapacity * 2
	if target <= len(t.slots) {
		target = len(t.slots) + 1
	}
	t.resize(target, "grow")
}

// resizeDown halves the base capacity.
func (t *Table[V]) resizeDown() {
	t.resize(t.baseCapacity/2, "shrink")
}

// purge rebuilds at the current size to reclaim tombstones.
func (t *Table[V]) purge() {
	t.resize(t.baseCapacity, "purge")
}
