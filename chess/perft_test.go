package chess

import "testing"

func TestPerftStartPosition(t *testing.T) {
	tests := []struct {
		depth int
		want  int64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
	}
	pos := StartPosition()
	for _, tt := range tests {
		t.Run("", func(t *testing.T) {
			got := Perft(pos, tt.depth)
			if got != tt.want {
				t.Errorf("Perft(start, %d) = %d, want %d", tt.depth, got, tt.want)
			}
		})
	}
}

func TestPerftKiwipete(t *testing.T) {
	const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	pos, err := PositionFromFEN(kiwipete)
	if err != nil {
		t.Fatalf("PositionFromFEN: %v", err)
	}
	tests := []struct {
		depth int
		want  int64
	}{
		{1, 48},
		{2, 2039},
	}
	for _, tt := range tests {
		t.Run("", func(t *testing.T) {
			got := Perft(pos, tt.depth)
			if got != tt.want {
				t.Errorf("Perft(kiwipete, %d) = %d, want %d", tt.depth, got, tt.want)
			}
		})
	}
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/8/8/8/8/8/8/4K2k w - - 0 1",
	}
	for _, fen := range fens {
		pos, err := PositionFromFEN(fen)
		if err != nil {
			t.Fatalf("PositionFromFEN(%q): %v", fen, err)
		}
		if got := pos.FEN(); got != fen {
			t.Errorf("FEN round trip: got %q, want %q", got, fen)
		}
	}
}

func TestInsufficientMaterial(t *testing.T) {
	pos, err := PositionFromFEN("8/8/8/8/8/8/8/4K2k w - - 0 1")
	if err != nil {
		t.Fatalf("PositionFromFEN: %v", err)
	}
	if !pos.IsInsufficientMaterial() {
		t.Errorf("K vs K should be insufficient material")
	}

	pos2, err := PositionFromFEN(StartFEN)
	if err != nil {
		t.Fatalf("PositionFromFEN: %v", err)
	}
	if pos2.IsInsufficientMaterial() {
		t.Errorf("start position should not be insufficient material")
	}
}

func TestMoveFromUCI(t *testing.T) {
	pos := StartPosition()
	mv, err := MoveFromUCI(&pos, "e2e4")
	if err != nil {
		t.Fatalf("MoveFromUCI: %v", err)
	}
	if mv.String() != "e2e4" {
		t.Errorf("mv.String() = %q, want e2e4", mv.String())
	}
	if _, err := MoveFromUCI(&pos, "e2e5"); err == nil {
		t.Errorf("e2e5 should not be legal from the start position")
	}
}
