package search

import (
	"context"
	"testing"
	"time"

	"github.com/WGCodings/FastPeaPea/chess"
)

func newTestContext(maxPly int) *Context {
	return NewContext(DefaultParams(), NewTranspositionTable(1), 1, maxPly)
}

func TestRunFindsMateInOne(t *testing.T) {
	// White to move, mate in one with Qxf7#.
	pos, err := chess.PositionFromFEN("r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5Q2/PPPP1PPP/RNB1K1NR w KQkq - 0 1")
	if err != nil {
		t.Fatalf("PositionFromFEN: %v", err)
	}
	mv, ok := Run(context.Background(), newTestContext(32), pos, 2, NewTimeManager(), time.Second, 0)
	if !ok || mv.String() != "f3f7" {
		t.Fatalf("Run returned %v (ok=%v), want f3f7", mv, ok)
	}
	mated := pos.Play(mv)
	if !mated.IsCheckmate() {
		t.Fatalf("position after %v is not checkmate", mv)
	}
}

func TestNegamaxStalemateAndCheckmateScores(t *testing.T) {
	sc := newTestContext(16)

	mate, err := chess.PositionFromFEN("6k1/8/8/8/8/8/5PPP/r5K1 w - - 0 1")
	if err != nil {
		t.Fatalf("PositionFromFEN: %v", err)
	}
	if !mate.IsCheckmate() {
		t.Skip("fixture is not checkmate; skipping")
	}
	sc.Repeats.Push(mate.Hash)
	score := negamax(sc, &mate, 1, 0, -infinity, infinity, false)
	want := -float32(MateScore)
	if score != want {
		t.Errorf("checkmate score = %v, want %v", score, want)
	}

	stalemate, err := chess.PositionFromFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatalf("PositionFromFEN: %v", err)
	}
	if stalemate.IsCheckmate() {
		t.Skip("fixture is checkmate, not stalemate; skipping")
	}
	if !stalemate.IsStalemate() {
		t.Skip("fixture is not stalemate; skipping")
	}
	sc2 := newTestContext(16)
	sc2.Repeats.Push(stalemate.Hash)
	score2 := negamax(sc2, &stalemate, 1, 0, -infinity, infinity, false)
	if score2 != DrawScore {
		t.Errorf("stalemate score = %v, want %v", score2, DrawScore)
	}
}

func TestNegamaxThreefoldRepetitionScoresDraw(t *testing.T) {
	sc := newTestContext(16)
	pos := chess.StartPosition()
	sc.Repeats.Push(pos.Hash)

	for _, uci := range []string{"g1f3", "g8f6", "f3g1", "f6g8", "g1f3", "g8f6", "f3g1", "f6g8"} {
		mv, err := chess.MoveFromUCI(&pos, uci)
		if err != nil {
			t.Fatalf("MoveFromUCI(%s): %v", uci, err)
		}
		pos = pos.Play(mv)
		sc.Repeats.Push(pos.Hash)
	}
	if pos.Hash != chess.StartPosition().Hash {
		t.Fatalf("fixture does not return to the starting position")
	}

	score := negamax(sc, &pos, 1, 0, -infinity, infinity, false)
	if score != DrawScore {
		t.Errorf("third occurrence of a position scored %v, want %v (draw)", score, DrawScore)
	}
}

func TestRunFallsBackToALegalMoveWhenRootIsAlreadyDrawn(t *testing.T) {
	sc := newTestContext(32)
	pos := chess.StartPosition()
	var history []uint64
	history = append(history, pos.Hash)
	for _, uci := range []string{"g1f3", "g8f6", "f3g1", "f6g8", "g1f3", "g8f6", "f3g1", "f6g8"} {
		mv, err := chess.MoveFromUCI(&pos, uci)
		if err != nil {
			t.Fatalf("MoveFromUCI(%s): %v", uci, err)
		}
		pos = pos.Play(mv)
		history = append(history, pos.Hash)
	}
	sc.Repeats.Seed(history[:len(history)-1])

	mv, ok := Run(context.Background(), sc, pos, 3, NewTimeManager(), time.Second, 0)
	if !ok {
		t.Fatalf("Run returned no move for an already-drawn but non-terminal position")
	}
	legal := pos.LegalMoves()
	found := false
	for _, l := range legal {
		if l.Equal(mv) {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("Run returned %v, which is not a legal root move", mv)
	}
}

func TestRunReturnsLegalRootMove(t *testing.T) {
	sc := newTestContext(32)
	pos := chess.StartPosition()
	mv, ok := Run(context.Background(), sc, pos, 3, NewTimeManager(), 2*time.Second, 0)
	if !ok {
		t.Fatalf("Run returned no move")
	}
	legal := pos.LegalMoves()
	found := false
	for _, l := range legal {
		if l.Equal(mv) {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("Run returned %v, which is not a legal root move", mv)
	}
}

func TestRunCompletesDepthOneRegardlessOfClock(t *testing.T) {
	sc := newTestContext(32)
	pos := chess.StartPosition()
	// A 1ns clock allocates a zero budget, so the deadline has already
	// passed when the search starts; depth 1 must still complete and
	// return a move.
	mv, ok := Run(context.Background(), sc, pos, 1, NewTimeManager(), time.Nanosecond, 0)
	if !ok {
		t.Fatalf("Run returned no move even though depth 1 must always complete")
	}
	if mv.Equal(chess.NullMove) {
		t.Errorf("Run returned the null move")
	}
}

func TestRunRespectsCancellation(t *testing.T) {
	sc := newTestContext(32)
	pos := chess.StartPosition()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	mv, ok := Run(ctx, sc, pos, 20, NewTimeManager(), time.Minute, 0)
	if !ok {
		t.Fatalf("Run returned no move")
	}
	_ = mv // depth 1 always completes even when already cancelled
}

func TestMultiPvOrdering(t *testing.T) {
	sc := NewContext(DefaultParams(), NewTranspositionTable(1), 3, 32)
	pos := chess.StartPosition()
	Run(context.Background(), sc, pos, 2, NewTimeManager(), time.Second, 0)

	if sc.MultiPv.Len() == 0 {
		t.Fatalf("expected at least one Multi-PV line")
	}
	for i := 1; i < sc.MultiPv.Len(); i++ {
		prevScore, _ := sc.MultiPv.At(i - 1)
		score, _ := sc.MultiPv.At(i)
		if score > prevScore {
			t.Errorf("Multi-PV not sorted descending: line %d score %v > line %d score %v", i, score, i-1, prevScore)
		}
	}
}
