// Package search implements the alpha-beta search core: iterative
// deepening negamax with quiescence extension, move ordering, a
// transposition table, PV/Multi-PV tracking, repetition/50-move draw
// detection, a time manager and leaf evaluation. It depends on package
// chess for position representation and move generation but knows
// nothing about the UCI protocol.
package search

import "github.com/WGCodings/FastPeaPea/chess"

// Params holds the tunable constants of the evaluator and the search.
// It is passed by value into a Context and never mutated during a
// search, so the same Params can be shared safely across unrelated
// searches.
type Params struct {
	// PieceValues is indexed by chess.Figure; King is conventionally 0.
	PieceValues [7]float32
	// MobilityBonus is indexed by chess.Figure and added per reachable
	// square for knights, bishops, rooks and queens.
	MobilityBonus [7]int
	// TempoBonus favors the side to move.
	TempoBonus float32

	// PST is reserved for a future piece-square-table evaluation term.
	// It is never read by Evaluate; the field exists so an evaluator
	// extension has somewhere to grow into without changing this type's
	// shape.
	PST [7][64]float32
	// PSTWeight is reserved alongside PST, likewise unused today.
	PSTWeight float32

	// MaterialWeight scales the material term of Evaluate.
	MaterialWeight float32
}

// DefaultParams returns the standard centipawn-scale evaluation weights.
func DefaultParams() Params {
	return Params{
		PieceValues: [7]float32{
			chess.NoFigure: 0,
			chess.Pawn:     100,
			chess.Knight:   320,
			chess.Bishop:   330,
			chess.Rook:     500,
			chess.Queen:    900,
			chess.King:     0,
		},
		MobilityBonus: [7]int{
			chess.NoFigure: 0,
			chess.Pawn:     0,
			chess.Knight:   3,
			chess.Bishop:   2,
			chess.Rook:     2,
			chess.Queen:    0,
			chess.King:     0,
		},
		TempoBonus:     10,
		MaterialWeight: 1,
		PSTWeight:      1,
	}
}

// MateScore is the sentinel magnitude used to encode forced mate. A
// checkmate found at ply p is scored -MateScore+p for the side that is
// mated, so shallower mates score closer to -MateScore (more negative,
// i.e. more urgent to avoid/deliver) once negated back up the search.
const MateScore = 30000

// DrawScore is returned for any position judged a draw (repetition,
// 50-move rule, insufficient material, stalemate).
const DrawScore = 0
