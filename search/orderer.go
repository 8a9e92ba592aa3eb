package search

import (
	"sort"

	"github.com/WGCodings/FastPeaPea/chess"
)

// MoveOrderer sorts a move list so the search visits the moves most
// likely to be best first: the principal-variation move, then the
// transposition-table move, then captures ranked by MVV-LVA, then
// quiet moves.
type MoveOrderer struct {
	mvvLva [7][7]int // indexed by [attacker][victim] chess.Figure
}

// NewMoveOrderer builds the MVV-LVA table from the evaluator's piece
// values: table[attacker][victim] = victim_value + 6 - attacker_value/100,
// so higher-value victims and lower-value attackers both sort earlier.
func NewMoveOrderer(params Params) *MoveOrderer {
	o := &MoveOrderer{}
	for attacker := chess.Pawn; attacker <= chess.King; attacker++ {
		for victim := chess.Pawn; victim <= chess.King; victim++ {
			o.mvvLva[attacker][victim] = int(params.PieceValues[victim]) + 6 - int(params.PieceValues[attacker])/100
		}
	}
	return o
}

// scoreCapture returns the MVV-LVA score of a capturing move; en passant
// is scored as if the victim were a pawn.
func (o *MoveOrderer) scoreCapture(mv chess.Move) int {
	victim := mv.VictimType()
	if mv.Kind == chess.EnPassant {
		victim = chess.Pawn
	}
	return o.mvvLva[mv.AttackerType()][victim]
}

// Order reorders moves in place: pvMove (if present and in the list)
// first, then ttMove (if present, distinct from pvMove, and in the
// list), then captures sorted descending by MVV-LVA, then quiet moves.
// The PV and TT moves are placed by swapping, so the move they displace
// leaves its original position; apart from that, quiet moves keep their
// relative order.
func (o *MoveOrderer) Order(moves []chess.Move, pvMove, ttMove chess.Move) {
	n := len(moves)
	head := 0

	if !pvMove.Equal(chess.NullMove) {
		if i := indexOf(moves, pvMove); i >= 0 {
			moves[head], moves[i] = moves[i], moves[head]
			head++
		}
	}
	if !ttMove.Equal(chess.NullMove) && !ttMove.Equal(pvMove) {
		if i := indexOf(moves[head:], ttMove); i >= 0 {
			i += head
			moves[head], moves[i] = moves[i], moves[head]
			head++
		}
	}

	rest := moves[head:n]
	captures := rest[:0:0]
	quiets := rest[:0:0]
	for _, mv := range rest {
		if mv.IsCapture() {
			captures = append(captures, mv)
		} else {
			quiets = append(quiets, mv)
		}
	}
	sort.SliceStable(captures, func(i, j int) bool {
		return o.scoreCapture(captures[i]) > o.scoreCapture(captures[j])
	})

	copy(moves[head:], captures)
	copy(moves[head+len(captures):], quiets)
}

// OrderCaptures sorts a capture-only move list (as produced by
// chess.Position.CaptureMoves, used in quiescence) descending by
// MVV-LVA.
func (o *MoveOrderer) OrderCaptures(moves []chess.Move) {
	sort.SliceStable(moves, func(i, j int) bool {
		return o.scoreCapture(moves[i]) > o.scoreCapture(moves[j])
	})
}

func indexOf(moves []chess.Move, mv chess.Move) int {
	for i, m := range moves {
		if m.Equal(mv) {
			return i
		}
	}
	return -1
}
