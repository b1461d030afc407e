package dhash

// Table is a string-keyed hash table using open addressing with double
// hashing. It is not safe for concurrent use.
//
// The zero value is an empty borrowing table with DefaultConfig; it
// allocates its slots on the first Insert.
type Table[V any] struct {
	slots        []slot[V]
	hint         int
	baseCapacity int
	count        int
	tombstones   int

	// release is nil for borrowing tables.
	release func(V)

	config Config
	logger *Logger
}

// Stats is a snapshot of a table's sizing state.
type Stats struct {
	Capacity     int
	BaseCapacity int
	Count        int
	Tombstones   int
	Load         int
}

// New creates a borrowing table: values stay owned by the caller and the
// table never releases them. A capacityHint of 0 selects the configured
// default capacity.
func New[V any](capacityHint int, opts ...Option) *Table[V] {
	return newTable[V](capacityHint, nil, opts)
}

// NewOwned creates an owning table. Every value it drops, whether by
// overwrite, Delete or Destroy, is released exactly once. Values moved by
// an internal resize are not released.
//
// Inserting the very value already stored under a key releases it, since
// the table cannot tell it apart from a replacement.
func NewOwned[V Releaser](capacityHint int, opts ...Option) *Table[V] {
	return newTable[V](capacityHint, func(v V) { v.Release() }, opts)
}

func newTable[V any](hint int, release func(V), opts []Option) *Table[V] {
	o := applyOptions(opts)
	if hint < 0 {
		hint = 0
	}

	t := &Table[V]{
		hint:    hint,
		release: release,
		config:  o.config,
		logger:  o.logger,
	}
	t.reset()
	return t
}

// init fills in what a zero-value Table lacks.
func (t *Table[V]) init() {
	if t.slots != nil {
		return
	}
	if t.config == (Config{}) {
		t.config = DefaultConfig()
	}
	if t.logger == nil {
		t.logger = NoopLogger()
	}
	t.reset()
}

func (t *Table[V]) reset() {
	base := t.hint
	if base == 0 {
		base = t.config.DefaultCapacity
	}

	t.slots = make([]slot[V], NextPrime(base))
	t.baseCapacity = base
	t.count = 0
	t.tombstones = 0
}

// Insert stores value under key, replacing and releasing any previous
// value. The table grows first when its load exceeds the grow threshold.
func (t *Table[V]) Insert(key string, value V) {
	t.init()

	if t.load() > t.config.GrowLoad {
		t.resizeUp()
	} else if t.usedLoad() > t.config.GrowLoad {
		t.purge()
	}

	idx, found := t.locate(key)
	s := &t.slots[idx]

	if found {
		old := s.rec.Value
		s.rec.Value = value
		t.releaseValue(old)
		return
	}

	if s.state == slotTombstone {
		t.tombstones--
	}
	*s = slot[V]{
		state: slotOccupied,
		rec:   Record[V]{key: key, Value: value},
	}
	t.count++
}

// Search returns the record stored under key. The pointer is only valid
// until the next Insert, Delete or Destroy.
func (t *Table[V]) Search(key string) (*Record[V], bool) {
	idx := t.lookup(key)
	if idx < 0 {
		return nil, false
	}
	return &t.slots[idx].rec, true
}

// Get returns the value stored under key.
func (t *Table[V]) Get(key string) (V, bool) {
	r, ok := t.Search(key)
	if !ok {
		var zero V
		return zero, false
	}
	return r.Value, true
}

// Delete removes key and releases its value. It reports whether the key
// was present; a missing key leaves the table untouched. When the load
// before removal is under the shrink threshold the table shrinks first.
func (t *Table[V]) Delete(key string) bool {
	idx := t.lookup(key)
	if idx < 0 {
		return false
	}

	if t.load() < t.config.ShrinkLoad {
		t.resizeDown()
		idx = t.lookup(key)
	}

	s := &t.slots[idx]
	value := s.rec.Value
	*s = slot[V]{state: slotTombstone}
	t.count--
	t.tombstones++

	t.releaseValue(value)
	return true
}

// Destroy releases every stored value and empties the table, restoring
// the capacity it was created with.
func (t *Table[V]) Destroy() {
	t.init()
	if t.release != nil {
		for i := range t.slots {
			if t.slots[i].state == slotOccupied {
				t.release(t.slots[i].rec.Value)
			}
		}
	}
	t.reset()
}

// Range calls fn for every stored record in slot order until fn returns
// false. fn must not mutate the table.
func (t *Table[V]) Range(fn func(key string, value V) bool) {
	for i := range t.slots {
		s := &t.slots[i]
		if s.state != slotOccupied {
			continue
		}
		if !fn(s.rec.key, s.rec.Value) {
			return
		}
	}
}

// Len returns the number of stored records.
func (t *Table[V]) Len() int { return t.count }

// Capacity returns the length of the slot array. It is always prime.
func (t *Table[V]) Capacity() int { return len(t.slots) }

// BaseCapacity returns the capacity last requested for the table, from
// which the next grow or shrink target is derived.
func (t *Table[V]) BaseCapacity() int { return t.baseCapacity }

// Tombstones returns the number of deleted slots not yet reclaimed.
func (t *Table[V]) Tombstones() int { return t.tombstones }

// Load returns the occupied share of the slot array as an integer percent.
func (t *Table[V]) Load() int { return t.load() }

// Stats returns a snapshot of the table's sizing state.
func (t *Table[V]) Stats() Stats {
	return Stats{
		Capacity:     len(t.slots),
		BaseCapacity: t.baseCapacity,
		Count:        t.count,
		Tombstones:   t.tombstones,
		Load:         t.load(),
	}
}

func (t *Table[V]) load() int {
	if len(t.slots) == 0 {
		return 0
	}
	return t.count * 100 / len(t.slots)
}

// usedLoad counts tombstones as used, since they keep probe chains open.
func (t *Table[V]) usedLoad() int {
	if len(t.slots) == 0 {
		return 0
	}
	return (t.count + t.tombstones) * 100 / len(t.slots)
}

func (t *Table[V]) releaseValue(v V) {
	if t.release != nil {
		t.release(v)
	}
}

// lookup returns the slot index holding key, or -1.
func (t *Table[V]) lookup(key string) int {
	if len(t.slots) == 0 {
		return -1
	}
	p := newProber(key, len(t.slots))

	for attempt := 0; attempt < len(t.slots); attempt++ {
		idx := p.at(attempt)
		s := &t.slots[idx]

		switch s.state {
		case slotEmpty:
			return -1
		case slotOccupied:
			if s.rec.key == key {
				return idx
			}
		}
	}
	return -1
}

// locate returns the slot holding key, or when key is absent the first
// non-occupied slot on its probe chain.
func (t *Table[V]) locate(key string) (int, bool) {
	p := newProber(key, len(t.slots))
	free := -1

	for attempt := 0; attempt < len(t.slots); attempt++ {
		idx := p.at(attempt)
		s := &t.slots[idx]

		switch s.state {
		case slotEmpty:
			if free < 0 {
				free = idx
			}
			return free, false
		case slotTombstone:
			if free < 0 {
				free = idx
			}
		case slotOccupied:
			if s.rec.key == key {
				return idx, true
			}
		}
	}

	if free < 0 {
		// Unreachable while the grow threshold is below 100%.
		panic("dhash: no free slot")
	}
	return free, false
}
