package chess

import "math/rand"

// Zobrist hash components, seeded deterministically so hashes are stable
// across runs (and therefore across test fixtures).
var (
	zobristPiece    [48][64]uint64 // indexed by Piece (ColorFigure packing), Square
	zobristCastle   [16]uint64     // indexed by Castle bitmask
	zobristEnPassant [65]uint64    // indexed by Square, plus one slot for SquareNone
	zobristSideToMove uint64
)

func rand64(r *rand.Rand) uint64 {
	return uint64(r.Int63())<<32 ^ uint64(r.Int63())
}

func init() {
	r := rand.New(rand.NewSource(1))
	for _, c := range [2]Color{White, Black} {
		for f := Pawn; f <= King; f++ {
			p := ColorFigure(c, f)
			for sq := Square(0); sq < 64; sq++ {
				zobristPiece[p][sq] = rand64(r)
			}
		}
	}
	for c := Castle(0); c < 16; c++ {
		zobristCastle[c] = rand64(r)
	}
	for sq := Square(0); sq < 65; sq++ {
		zobristEnPassant[sq] = rand64(r)
	}
	zobristSideToMove = rand64(r)
}
