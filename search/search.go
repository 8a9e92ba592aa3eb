package search

import (
	"context"
	"time"

	"github.com/WGCodings/FastPeaPea/chess"
)

// infinity is used as the initial search window; it is comfortably
// beyond any reachable evaluation or mate score.
const infinity = float32(MateScore + 1)

// Run drives iterative deepening from pos up to maxDepth, or until the
// time manager's budget is exhausted. The time budget is checked only at
// iteration boundaries — never inside negamax or quiescence recursion —
// and depth 1 always completes regardless of the clock, so the root
// always has a best move to fall back on once Run returns; if pos is
// itself already a draw (e.g. the position's third occurrence), negamax
// never sets a PV move at all, and Run falls back to the first legal
// move instead of reporting none. stopCtx cancellation is also observed
// only at iteration boundaries, for the same reason.
func Run(stopCtx context.Context, sc *Context, pos chess.Position, maxDepth int, tm TimeManager, remaining, increment time.Duration) (chess.Move, bool) {
	sc.Stats.Reset()

	legalCount := len(pos.LegalMoves())
	budget := tm.Allocate(remaining, increment, legalCount)
	deadline := time.Now().Add(budget)

	sc.Repeats.Push(pos.Hash)
	defer sc.Repeats.Pop()

	var previousPV []chess.Move
	for depth := 1; depth <= maxDepth; depth++ {
		if depth > 1 && deadlineExpired(stopCtx, deadline) {
			break
		}
		sc.MultiPv.Clear()
		sc.PreviousPV = previousPV

		negamax(sc, &pos, depth, 0, -infinity, infinity, len(previousPV) > 0)

		if line := sc.PV.Line(0); len(line) > 0 {
			previousPV = append([]chess.Move(nil), line...)
		}
	}

	if mv, ok := sc.PV.BestMove(); ok {
		return mv, ok
	}
	// The root itself was already a draw (repetition/50-move/insufficient
	// material), so negamax returned immediately without ever setting a
	// PV move. The position is not actually over — a legal move still has
	// to be played — so fall back to the first legal move in generation
	// order.
	if moves := pos.LegalMoves(); len(moves) > 0 {
		return moves[0], true
	}
	return chess.NullMove, false
}

func deadlineExpired(stopCtx context.Context, deadline time.Time) bool {
	select {
	case <-stopCtx.Done():
		return true
	default:
	}
	return time.Now().After(deadline)
}

// negamax searches pos to depth plies (extended by one when the side to
// move is in check, applied before the depth==0 leaf test), returning a
// fail-soft score from the perspective of the side to move: the
// returned value may lie outside [alpha, beta] when a child's score
// proves the node is a cutoff, rather than being clamped to the window.
//
// followingPV is true while every move chosen from the root down to
// this node matches the previous iteration's principal variation; while
// true, sc.PreviousPV[ply] is offered to the move orderer as the
// principal-variation move hint.
func negamax(sc *Context, pos *chess.Position, depth, ply int, alpha, beta float32, followingPV bool) float32 {
	sc.PV.ClearFrom(ply)
	sc.Stats.Node(ply)

	if sc.IsDraw(pos) {
		return DrawScore
	}
	if ply >= sc.MaxPly {
		return sc.Evaluator.Evaluate(pos)
	}

	inCheck := pos.IsCheck()
	moves := pos.LegalMoves()
	if len(moves) == 0 {
		if inCheck {
			return -float32(MateScore) + float32(ply)
		}
		return DrawScore
	}

	if inCheck {
		depth++
	}
	if depth <= 0 {
		return quiescence(sc, pos, ply, alpha, beta)
	}

	origAlpha, origBeta := alpha, beta

	var ttMove chess.Move = chess.NullMove
	if ttDepth, ttScore, ttBound, ttBest, ok := sc.TT.Probe(pos.Hash); ok {
		ttMove = ttBest
		// The root never takes a TT cutoff, so it always records a PV move.
		if ttDepth >= depth && ply > 0 {
			switch ttBound {
			case BoundExact:
				return ttScore
			case BoundLower:
				if ttScore > alpha {
					alpha = ttScore
				}
			case BoundUpper:
				if ttScore < beta {
					beta = ttScore
				}
			}
			if alpha >= beta {
				return ttScore
			}
		}
	}

	pvMove := chess.NullMove
	if followingPV && ply < len(sc.PreviousPV) {
		pvMove = sc.PreviousPV[ply]
	}
	sc.Orderer.Order(moves, pvMove, ttMove)

	best := -infinity
	bestMove := moves[0]

	for _, mv := range moves {
		child := pos.Play(mv)
		sc.Repeats.Push(child.Hash)
		childFollowingPV := followingPV && mv.Equal(pvMove)
		score := -negamax(sc, &child, depth-1, ply+1, -beta, -alpha, childFollowingPV)
		sc.Repeats.Pop()

		if score > best {
			best = score
			bestMove = mv
			if ply == 0 {
				line := append([]chess.Move{mv}, sc.PV.Line(ply+1)...)
				sc.MultiPv.Insert(score, line)
			}
			if score > alpha {
				alpha = score
				sc.PV.Set(ply, mv)
			}
		}
		// At the root no beta cutoff is taken, so every root move is
		// searched; only a move that beats the running best is inserted
		// into Multi-PV. Elsewhere a beta cutoff stops the search early.
		if ply > 0 && alpha >= beta {
			break
		}
	}

	bound := BoundExact
	if best <= origAlpha {
		bound = BoundUpper
	} else if best >= origBeta {
		bound = BoundLower
	}
	sc.TT.Store(pos.Hash, depth, best, bound, bestMove)

	return best
}

// quiescence extends the search along capture sequences until the
// position is "quiet" (no more captures worth considering), to avoid
// evaluating a position in the middle of a exchange. Unlike negamax,
// quiescence uses fail-hard bounds: the returned score is always clamped
// to [alpha, beta].
func quiescence(sc *Context, pos *chess.Position, ply int, alpha, beta float32) float32 {
	sc.Stats.Node(ply)

	standPat := sc.Evaluator.Evaluate(pos)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}
	if ply >= sc.MaxPly {
		return alpha
	}

	moves := pos.CaptureMoves()
	sc.Orderer.OrderCaptures(moves)

	for _, mv := range moves {
		child := pos.Play(mv)
		score := -quiescence(sc, &child, ply+1, -beta, -alpha)

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}
