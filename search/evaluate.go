package search

import "github.com/WGCodings/FastPeaPea/chess"

// Evaluator computes a static score for a leaf position from the point
// of view of the side to move: material, mobility and a small tempo
// bonus. It holds no state beyond the Params it was built with, so one
// Evaluator can be shared across every node of a search.
type Evaluator struct {
	params Params
}

// NewEvaluator builds an Evaluator from params.
func NewEvaluator(params Params) *Evaluator {
	return &Evaluator{params: params}
}

// Evaluate scores pos from the perspective of the side to move: positive
// favors the mover, negative favors the opponent.
func (e *Evaluator) Evaluate(pos *chess.Position) float32 {
	var score float32
	for fig := chess.Pawn; fig <= chess.King; fig++ {
		white := (pos.ByFigure[fig] & pos.ByColor[chess.White]).PopCount()
		black := (pos.ByFigure[fig] & pos.ByColor[chess.Black]).PopCount()
		score += float32(white-black) * e.params.PieceValues[fig] * e.params.MaterialWeight
	}

	score += float32(e.mobility(pos, chess.White) - e.mobility(pos, chess.Black))

	if pos.ToMove == chess.White {
		score += e.params.TempoBonus
	} else {
		score -= e.params.TempoBonus
	}

	if pos.ToMove == chess.Black {
		score = -score
	}
	return score
}

// mobility sums the attacked-square count of every knight, bishop, rook
// and queen of color, weighted by Params.MobilityBonus, excluding
// squares already occupied by a piece of the same color.
func (e *Evaluator) mobility(pos *chess.Position, color chess.Color) int {
	own := pos.ByColor[color]
	occ := pos.Occupied()
	total := 0

	for bb := pos.ByFigure[chess.Knight] & own; bb != 0; {
		sq := bb.Pop()
		total += (chess.KnightAttacks(sq) &^ own).PopCount() * e.params.MobilityBonus[chess.Knight]
	}
	for bb := pos.ByFigure[chess.Bishop] & own; bb != 0; {
		sq := bb.Pop()
		total += (chess.BishopAttacks(sq, occ) &^ own).PopCount() * e.params.MobilityBonus[chess.Bishop]
	}
	for bb := pos.ByFigure[chess.Rook] & own; bb != 0; {
		sq := bb.Pop()
		total += (chess.RookAttacks(sq, occ) &^ own).PopCount() * e.params.MobilityBonus[chess.Rook]
	}
	for bb := pos.ByFigure[chess.Queen] & own; bb != 0; {
		sq := bb.Pop()
		total += (chess.QueenAttacks(sq, occ) &^ own).PopCount() * e.params.MobilityBonus[chess.Queen]
	}
	return total
}
