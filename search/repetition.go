package search

// RepetitionStack tracks the Zobrist hash of every position from the
// start of the game (or the last irreversible move) to the current
// search node, so the driver can detect a three-fold repetition. The
// 50-move rule does not use the stack; it is checked by IsFiftyMoveDraw.
type RepetitionStack struct {
	hashes []uint64
}

// NewRepetitionStack returns an empty stack.
func NewRepetitionStack() *RepetitionStack {
	return &RepetitionStack{}
}

// Push records the hash of a position just entered. Call before
// recursing into a child node.
func (r *RepetitionStack) Push(hash uint64) {
	r.hashes = append(r.hashes, hash)
}

// Seed loads the hashes of every position already reached earlier in the
// game, oldest first, before the driver starts pushing search nodes onto
// the stack. Call once per search, on a freshly built stack, before the
// root position itself is pushed — otherwise a position repeated across
// real game moves (as opposed to within the search tree) can never be
// detected as a three-fold repetition.
func (r *RepetitionStack) Seed(hashes []uint64) {
	r.hashes = append(r.hashes[:0], hashes...)
}

// Pop removes the most recently pushed hash. Call after returning from
// the recursive call Push preceded.
func (r *RepetitionStack) Pop() {
	r.hashes = r.hashes[:len(r.hashes)-1]
}

// IsThreefold reports whether the current position (the hash most
// recently pushed) has occurred at least twice before within the last
// halfmoveClock plies — i.e. this is its third occurrence. The scan is
// bounded by halfmoveClock because any capture or pawn move further back
// makes repetition impossible.
func (r *RepetitionStack) IsThreefold(halfmoveClock int) bool {
	n := len(r.hashes)
	if n == 0 {
		return false
	}
	current := r.hashes[n-1]

	start := n - (halfmoveClock + 1)
	if start < 0 {
		start = 0
	}

	count := 0
	for i := n - 2; i >= start; i-- {
		if r.hashes[i] == current {
			count++
			if count >= 2 {
				return true
			}
		}
	}
	return false
}

// IsFiftyMoveDraw reports whether halfmoveClock has passed the 50-move
// rule threshold (100 halfmoves without a pawn move or capture).
func IsFiftyMoveDraw(halfmoveClock int) bool {
	return halfmoveClock > 100
}
