package search

import "github.com/WGCodings/FastPeaPea/chess"

// Context aggregates every piece of mutable state a search needs into
// one struct threaded by pointer through negamax and quiescence. This
// is a deliberate design choice, not an accident of translation: keeping
// PV, Multi-PV, the transposition table, the repetition stack and the
// evaluator all reachable from one object makes it possible to run a
// search and inspect every piece of its internal state afterward from a
// test, without reaching into private fields of the driver itself.
type Context struct {
	Params    Params
	Evaluator *Evaluator
	Orderer   *MoveOrderer
	PV        *PvTable
	MultiPv   *MultiPv
	TT        *TranspositionTable
	Repeats   *RepetitionStack
	Stats     Stats

	// PreviousPV is the root line found by the last completed
	// iteration, used as a move-ordering hint (see Run and negamax's
	// "following PV" parameter) for the iteration in progress.
	PreviousPV []chess.Move

	// MaxPly bounds negamax/quiescence recursion so a pathological
	// position (or a check-extension chain) cannot recurse forever; it
	// is not itself part of the search's scoring semantics.
	MaxPly int
}

// NewContext builds a Context from Params and a transposition table the
// caller owns (so it can persist across searches and be cleared
// explicitly on ucinewgame, per the driver's lifecycle).
func NewContext(params Params, tt *TranspositionTable, multiPvCapacity int, maxPly int) *Context {
	return &Context{
		Params:    params,
		Evaluator: NewEvaluator(params),
		Orderer:   NewMoveOrderer(params),
		PV:        NewPvTable(maxPly),
		MultiPv:   NewMultiPv(multiPvCapacity),
		TT:        tt,
		Repeats:   NewRepetitionStack(),
		MaxPly:    maxPly,
	}
}

// IsDraw reports whether pos (already pushed onto Repeats, with
// halfmoveClock giving its halfmove counter) is a draw by repetition,
// the 50-move rule, or insufficient material.
func (c *Context) IsDraw(pos *chess.Position) bool {
	if IsFiftyMoveDraw(pos.HalfmoveClock) {
		return true
	}
	if c.Repeats.IsThreefold(pos.HalfmoveClock) {
		return true
	}
	if pos.IsInsufficientMaterial() {
		return true
	}
	return false
}
