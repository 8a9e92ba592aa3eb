package search

import (
	"sort"

	"github.com/WGCodings/FastPeaPea/chess"
)

// PvTable accumulates the best line found at each ply of the current
// search. It is indexed by ply; line[ply] is the best continuation
// found starting at that ply, including the move played at ply itself.
type PvTable struct {
	lines [][]chess.Move
}

// NewPvTable allocates a table deep enough for maxPly plies.
func NewPvTable(maxPly int) *PvTable {
	t := &PvTable{lines: make([][]chess.Move, maxPly+1)}
	return t
}

// ClearFrom empties every line at ply and beyond. Called at the start of
// negamax for the current ply so a stale line from a previous iteration
// or a failed branch can't leak into the result.
func (t *PvTable) ClearFrom(ply int) {
	if ply >= len(t.lines) {
		return
	}
	for i := ply; i < len(t.lines); i++ {
		t.lines[i] = t.lines[i][:0]
	}
}

// Set records mv as the best move at ply, followed by the already
// established continuation at ply+1.
func (t *PvTable) Set(ply int, mv chess.Move) {
	if ply >= len(t.lines) {
		return
	}
	line := append([]chess.Move{mv}, t.childLine(ply)...)
	t.lines[ply] = line
}

func (t *PvTable) childLine(ply int) []chess.Move {
	if ply+1 >= len(t.lines) {
		return nil
	}
	return t.lines[ply+1]
}

// Line returns the best continuation starting at ply.
func (t *PvTable) Line(ply int) []chess.Move {
	if ply >= len(t.lines) {
		return nil
	}
	return t.lines[ply]
}

// BestMove returns the best move found at the root (ply 0), or
// chess.NullMove and false if no line has been recorded yet.
func (t *PvTable) BestMove() (chess.Move, bool) {
	line := t.Line(0)
	if len(line) == 0 {
		return chess.NullMove, false
	}
	return line[0], true
}

// multiPvLine pairs a score with the line that achieved it.
type multiPvLine struct {
	Score float32
	Line  []chess.Move
}

// MultiPv keeps the top-K distinct root lines found during the current
// iteration, sorted in descending score order.
type MultiPv struct {
	capacity int
	lines    []multiPvLine
}

// NewMultiPv builds a Multi-PV accumulator holding at most capacity
// lines. capacity is clamped to at least 1.
func NewMultiPv(capacity int) *MultiPv {
	if capacity < 1 {
		capacity = 1
	}
	return &MultiPv{capacity: capacity}
}

// Clear empties the accumulator. Called at the start of every iteration.
func (m *MultiPv) Clear() {
	m.lines = m.lines[:0]
}

// Insert records a root line and its score, keeping the accumulator
// sorted descending by score and truncated to capacity. A score that
// cannot be ordered (NaN) is treated as equal to every other score, per
// the accumulator's documented tie-breaking rule, and simply keeps its
// insertion-order position.
func (m *MultiPv) Insert(score float32, line []chess.Move) {
	cp := make([]chess.Move, len(line))
	copy(cp, line)
	m.lines = append(m.lines, multiPvLine{Score: score, Line: cp})
	sort.SliceStable(m.lines, func(i, j int) bool {
		a, b := m.lines[i].Score, m.lines[j].Score
		if a != a || b != b { // either is NaN
			return false
		}
		return a > b
	})
	if len(m.lines) > m.capacity {
		m.lines = m.lines[:m.capacity]
	}
}

// Len returns the number of lines currently held.
func (m *MultiPv) Len() int { return len(m.lines) }

// At returns the score and line at rank i (0 = best), i must be in
// [0, Len()).
func (m *MultiPv) At(i int) (float32, []chess.Move) {
	return m.lines[i].Score, m.lines[i].Line
}
