package dhash

// Releaser is implemented by values whose resources an owning table takes
// over. Release is called exactly once, when the table drops the value.
type Releaser interface {
	Release()
}

// Record is a key and the value stored under it.
type Record[V any] struct {
	key   string
	Value V
}

// Key returns the record's key.
func (r *Record[V]) Key() string {
	return r.key
}

type slotState uint8

const (
	slotEmpty slotState = iota // never used; terminates a probe chain
	slotOccupied
	slotTombstone // deleted; probing continues past it
)

type slot[V any] struct {
	state slotState
	rec   Record[V]
}
