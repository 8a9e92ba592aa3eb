package search

import "github.com/WGCodings/FastPeaPea/chess"

// Bound records whether a transposition-table score is exact, or only a
// lower/upper bound because the node that produced it failed high/low.
type Bound uint8

const (
	BoundExact Bound = iota
	BoundLower
	BoundUpper
)

// ttEntrySize is the assumed in-memory footprint of one slot, used only
// to translate a megabyte budget into a slot count. It does not need to
// be exact; it only needs to be a stable, documented approximation.
const ttEntrySize = 24

// ttEntry is one slot of the table: a full 64-bit key (so collisions can
// always be detected), the search depth the score was computed at, the
// score itself, its bound kind, and the move that produced it.
type ttEntry struct {
	key       uint64
	depth     int
	score     float32
	bound     Bound
	best      chess.Move
	occupied  bool
}

// TranspositionTable is a fixed-capacity, single-slot (no probing chain)
// hash table mapping a Zobrist key to the best score/move found for it
// so far. Capacity is always a power of two so indexing is a plain mask.
type TranspositionTable struct {
	table   []ttEntry
	mask    uint64
	entries int
}

// NewTranspositionTable allocates a table sized to fit within sizeMB
// megabytes, rounded down to the nearest power-of-two slot count.
func NewTranspositionTable(sizeMB int) *TranspositionTable {
	if sizeMB < 1 {
		sizeMB = 1
	}
	slots := uint64(sizeMB) * 1024 * 1024 / ttEntrySize
	capacity := nextPowerOfTwo(slots)
	if capacity > slots {
		capacity >>= 1
	}
	if capacity == 0 {
		capacity = 1
	}
	return &TranspositionTable{
		table: make([]ttEntry, capacity),
		mask:  capacity - 1,
	}
}

func nextPowerOfTwo(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	p := uint64(1)
	for p < n {
		p <<= 1
	}
	return p
}

func (tt *TranspositionTable) index(key uint64) uint64 {
	return key & tt.mask
}

// Probe looks up key and returns its entry and whether it was found. A
// hit requires the stored 64-bit key to match exactly; there is no
// probing chain, so a different key hashing to the same slot is simply
// a miss (and may have evicted the entry being looked for).
func (tt *TranspositionTable) Probe(key uint64) (depth int, score float32, bound Bound, best chess.Move, ok bool) {
	e := &tt.table[tt.index(key)]
	if !e.occupied || e.key != key {
		return 0, 0, 0, chess.NullMove, false
	}
	return e.depth, e.score, e.bound, e.best, true
}

// Store writes an entry for key, unless the slot already holds a result
// computed at strictly greater depth (depth-preferred replacement): a
// shallower incoming result is never allowed to evict a deeper one, even
// one stored under a different key — the slot has no probing chain, so
// whatever currently occupies it is exactly what depth-preferred
// replacement is protecting.
func (tt *TranspositionTable) Store(key uint64, depth int, score float32, bound Bound, best chess.Move) {
	e := &tt.table[tt.index(key)]
	if e.occupied && e.depth > depth {
		return
	}
	if !e.occupied {
		tt.entries++
	}
	e.key = key
	e.depth = depth
	e.score = score
	e.bound = bound
	e.best = best
	e.occupied = true
}

// Clear empties the table. Called on a new game (UCI ucinewgame).
func (tt *TranspositionTable) Clear() {
	for i := range tt.table {
		tt.table[i] = ttEntry{}
	}
	tt.entries = 0
}

// Hashfull returns table occupancy in parts-per-thousand, as reported by
// the UCI "info ... hashfull" field.
func (tt *TranspositionTable) Hashfull() int {
	if len(tt.table) == 0 {
		return 0
	}
	return tt.entries * 1000 / len(tt.table)
}
