/*
Package dhash provides a string-keyed hash table using open addressing with
double hashing.

Basic usage:

	import "github.com/theflywheel/dhash"

	t := dhash.New[int](0) // 0 selects the default capacity of 50

	t.Insert("apples", 3)
	t.Insert("pears", 5)

	if n, ok := t.Get("apples"); ok {
		fmt.Println("apples:", n)
	}

	t.Delete("pears")

Features:

  - Slot array sized to a prime so every probe sequence visits every slot
  - Two independent hashes: FNV-1a picks the home slot, xxHash64 the step
  - Deleted slots become tombstones so other probe chains stay intact
  - Grows to the next prime above twice the base capacity when the load
    exceeds 70%, shrinks to half when it falls under 10%
  - Borrowing tables (New) never release values; owning tables
    (NewOwned) release each dropped value exactly once
  - Sizing policy configurable in code or from YAML (LoadConfig)

Implementation Details:

Each slot is empty, occupied or a tombstone. Attempt i for a key visits
slot (h1 + i*(h2+1)) mod capacity. Lookups skip tombstones and stop at the
first empty slot. Inserts reuse the first tombstone on the chain but keep
probing until an empty slot so a key is never stored twice.

The load used for resizing is the number of stored records over capacity,
as an integer percent. Tombstones do not count towards it; when stored
records and tombstones together pass the grow threshold the table is
rebuilt at its current size instead.

A Table is not safe for concurrent use. Callers sharing one must guard the
whole table with a single lock.
*/
package dhash
