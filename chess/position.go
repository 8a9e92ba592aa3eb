package chess

import "math/bits"

// castleLoss maps a square to the castling rights permanently forfeited
// the moment any piece leaves from, or arrives on, that square (a king's
// home square or a rook's home square).
var castleLoss [64]Castle

func init() {
	castleLoss[RankFile(0, 4)] = WhiteKingside | WhiteQueenside // e1
	castleLoss[RankFile(0, 0)] = WhiteQueenside                 // a1
	castleLoss[RankFile(0, 7)] = WhiteKingside                  // h1
	castleLoss[RankFile(7, 4)] = BlackKingside | BlackQueenside // e8
	castleLoss[RankFile(7, 0)] = BlackQueenside                 // a8
	castleLoss[RankFile(7, 7)] = BlackKingside                  // h8
}

// Position is the complete, immutable-by-convention state of a chess
// position: bitboards per figure and per color, a mailbox for O(1) piece
// lookup, and the incidental state (side to move, castling rights, en
// passant square, halfmove clock, fullmove number, Zobrist hash) needed
// to make moves and detect draws.
type Position struct {
	ByFigure [7]Bitboard // indexed by Figure; NoFigure unused
	ByColor  [3]Bitboard // indexed by Color; NoColor unused
	Board    [64]Piece

	ToMove         Color
	CastleRights   Castle
	EPSquare       Square // SquareNone if no en-passant target
	HalfmoveClock  int
	FullmoveNumber int
	Hash           uint64
}

// NewEmptyPosition returns a position with no pieces, White to move, no
// castling rights and no en-passant target.
func NewEmptyPosition() Position {
	return Position{EPSquare: SquareNone, ToMove: White, FullmoveNumber: 1}
}

// Occupied returns the union of all occupied squares.
func (pos *Position) Occupied() Bitboard {
	return pos.ByColor[White] | pos.ByColor[Black]
}

// PieceAt returns the piece on sq, or NoPiece if empty.
func (pos *Position) PieceAt(sq Square) Piece {
	return pos.Board[sq]
}

// Put places piece on sq, updating bitboards, mailbox and hash. sq must
// be empty.
func (pos *Position) Put(sq Square, piece Piece) {
	pos.Board[sq] = piece
	bb := sq.Bitboard()
	pos.ByFigure[piece.Figure()] |= bb
	pos.ByColor[piece.Color()] |= bb
	pos.Hash ^= zobristPiece[piece][sq]
}

// Remove clears sq, updating bitboards, mailbox and hash. sq must be occupied.
func (pos *Position) Remove(sq Square) {
	piece := pos.Board[sq]
	bb := sq.Bitboard()
	pos.ByFigure[piece.Figure()] &^= bb
	pos.ByColor[piece.Color()] &^= bb
	pos.Board[sq] = NoPiece
	pos.Hash ^= zobristPiece[piece][sq]
}

func (pos *Position) setCastleRights(c Castle) {
	pos.Hash ^= zobristCastle[pos.CastleRights]
	pos.CastleRights = c
	pos.Hash ^= zobristCastle[c]
}

func (pos *Position) setEPSquare(sq Square) {
	pos.Hash ^= zobristEnPassant[pos.EPSquare]
	pos.EPSquare = sq
	pos.Hash ^= zobristEnPassant[sq]
}

// kingSquare returns the square of color's king. Undefined if there is
// no king of that color on the board.
func (pos *Position) kingSquare(c Color) Square {
	bb := pos.ByFigure[King] & pos.ByColor[c]
	return Square(bits.TrailingZeros64(uint64(bb)))
}

// IsSquareAttacked reports whether sq is attacked by any piece of color by.
func (pos *Position) IsSquareAttacked(sq Square, by Color) bool {
	occ := pos.Occupied()
	if PawnAttacks(sq, by.Opposite())&pos.ByFigure[Pawn]&pos.ByColor[by] != 0 {
		return true
	}
	if KnightAttacks(sq)&pos.ByFigure[Knight]&pos.ByColor[by] != 0 {
		return true
	}
	if KingAttacks(sq)&pos.ByFigure[King]&pos.ByColor[by] != 0 {
		return true
	}
	diag := BishopAttacks(sq, occ)
	if diag&(pos.ByFigure[Bishop]|pos.ByFigure[Queen])&pos.ByColor[by] != 0 {
		return true
	}
	straight := RookAttacks(sq, occ)
	if straight&(pos.ByFigure[Rook]|pos.ByFigure[Queen])&pos.ByColor[by] != 0 {
		return true
	}
	return false
}

// IsCheck reports whether the side to move is in check.
func (pos *Position) IsCheck() bool {
	return pos.IsSquareAttacked(pos.kingSquare(pos.ToMove), pos.ToMove.Opposite())
}

// Play returns the child position resulting from making mv. mv must have
// been produced by LegalMoves or CaptureMoves on pos (or be otherwise
// known pseudo-legal); Play does not itself re-validate legality.
func (pos *Position) Play(mv Move) Position {
	child := *pos

	if mv.Kind == EnPassant {
		capSq := RankFile(mv.From.Rank(), mv.To.File())
		child.Remove(capSq)
	} else if mv.Captured != NoPiece {
		child.Remove(mv.To)
	}

	child.Remove(mv.From)
	if mv.Kind == PromotionMove {
		child.Put(mv.To, mv.Promotion)
	} else {
		child.Put(mv.To, mv.Piece)
	}

	if mv.Kind == CastleMove {
		rank := mv.From.Rank()
		if mv.To.File() == 6 {
			rookFrom, rookTo := RankFile(rank, 7), RankFile(rank, 5)
			rook := child.PieceAt(rookFrom)
			child.Remove(rookFrom)
			child.Put(rookTo, rook)
		} else {
			rookFrom, rookTo := RankFile(rank, 0), RankFile(rank, 3)
			rook := child.PieceAt(rookFrom)
			child.Remove(rookFrom)
			child.Put(rookTo, rook)
		}
	}

	newRights := child.CastleRights &^ castleLoss[mv.From] &^ castleLoss[mv.To]
	if newRights != child.CastleRights {
		child.setCastleRights(newRights)
	}

	if mv.Piece.Figure() == Pawn && mv.To == mv.From+16 {
		child.setEPSquare(RankFile(mv.From.Rank()+1, mv.From.File()))
	} else if mv.Piece.Figure() == Pawn && int(mv.From) == int(mv.To)+16 {
		child.setEPSquare(RankFile(mv.From.Rank()-1, mv.From.File()))
	} else if child.EPSquare != SquareNone {
		child.setEPSquare(SquareNone)
	}

	if mv.Piece.Figure() == Pawn || mv.IsCapture() {
		child.HalfmoveClock = 0
	} else {
		child.HalfmoveClock++
	}
	if pos.ToMove == Black {
		child.FullmoveNumber++
	}

	child.Hash ^= zobristSideToMove
	child.ToMove = pos.ToMove.Opposite()
	return child
}

// pseudoLegalMoves appends every pseudo-legal move for the side to move
// to out. When violentOnly is true, only captures, en passant and queen
// promotions are generated (the move set used by quiescence search).
func (pos *Position) pseudoLegalMoves(violentOnly bool, out []Move) []Move {
	color := pos.ToMove
	own := pos.ByColor[color]
	enemy := pos.ByColor[color.Opposite()]
	occ := own | enemy

	out = pos.genPawnMoves(color, violentOnly, out)

	for bb := pos.ByFigure[Knight] & own; bb != 0; {
		from := bb.Pop()
		targets := KnightAttacks(from) &^ own
		if violentOnly {
			targets &= enemy
		}
		out = pos.appendTargets(out, from, pos.PieceAt(from), targets)
	}
	for bb := pos.ByFigure[Bishop] & own; bb != 0; {
		from := bb.Pop()
		targets := BishopAttacks(from, occ) &^ own
		if violentOnly {
			targets &= enemy
		}
		out = pos.appendTargets(out, from, pos.PieceAt(from), targets)
	}
	for bb := pos.ByFigure[Rook] & own; bb != 0; {
		from := bb.Pop()
		targets := RookAttacks(from, occ) &^ own
		if violentOnly {
			targets &= enemy
		}
		out = pos.appendTargets(out, from, pos.PieceAt(from), targets)
	}
	for bb := pos.ByFigure[Queen] & own; bb != 0; {
		from := bb.Pop()
		targets := QueenAttacks(from, occ) &^ own
		if violentOnly {
			targets &= enemy
		}
		out = pos.appendTargets(out, from, pos.PieceAt(from), targets)
	}

	kingFrom := pos.kingSquare(color)
	kingTargets := KingAttacks(kingFrom) &^ own
	if violentOnly {
		kingTargets &= enemy
	}
	out = pos.appendTargets(out, kingFrom, pos.PieceAt(kingFrom), kingTargets)
	if !violentOnly {
		out = pos.genCastles(color, out)
	}

	return out
}

func (pos *Position) appendTargets(dst []Move, from Square, piece Piece, targets Bitboard) []Move {
	for targets != 0 {
		to := targets.Pop()
		dst = append(dst, Move{From: from, To: to, Kind: Normal, Piece: piece, Captured: pos.PieceAt(to)})
	}
	return dst
}

func (pos *Position) genPawnMoves(color Color, violentOnly bool, out []Move) []Move {
	own := pos.ByColor[color]
	enemy := pos.ByColor[color.Opposite()]
	occ := own | enemy
	pawns := pos.ByFigure[Pawn] & own

	var forward, startRank, promoRank int
	if color == White {
		forward, startRank, promoRank = 8, 1, 7
	} else {
		forward, startRank, promoRank = -8, 6, 0
	}

	for bb := pawns; bb != 0; {
		from := bb.Pop()
		piece := pos.PieceAt(from)
		oneStep := Square(int(from) + forward)

		if occ&oneStep.Bitboard() == 0 {
			if oneStep.Rank() == promoRank {
				out = appendPromotions(out, from, oneStep, piece, NoPiece, violentOnly)
			} else if !violentOnly {
				out = append(out, Move{From: from, To: oneStep, Kind: Normal, Piece: piece})
				if from.Rank() == startRank {
					twoStep := Square(int(from) + 2*forward)
					if occ&twoStep.Bitboard() == 0 {
						out = append(out, Move{From: from, To: twoStep, Kind: Normal, Piece: piece})
					}
				}
			}
		}

		for _, df := range [2]int{-1, 1} {
			f := from.File() + df
			if f < 0 || f > 7 {
				continue
			}
			to := Square(int(oneStep) + df)
			if to.File() != f {
				continue
			}
			if enemy&to.Bitboard() != 0 {
				captured := pos.PieceAt(to)
				if to.Rank() == promoRank {
					out = appendPromotions(out, from, to, piece, captured, violentOnly)
				} else {
					out = append(out, Move{From: from, To: to, Kind: Normal, Piece: piece, Captured: captured})
				}
			} else if to == pos.EPSquare {
				capSq := RankFile(from.Rank(), to.File())
				out = append(out, Move{From: from, To: to, Kind: EnPassant, Piece: piece, Captured: pos.PieceAt(capSq)})
			}
		}
	}
	return out
}

var promotionFigures = [4]Figure{Queen, Rook, Bishop, Knight}

func appendPromotions(out []Move, from, to Square, piece, captured Piece, violentOnly bool) []Move {
	color := piece.Color()
	for _, fig := range promotionFigures {
		if violentOnly && fig != Queen && captured == NoPiece {
			continue
		}
		out = append(out, Move{
			From: from, To: to, Kind: PromotionMove,
			Piece: piece, Captured: captured,
			Promotion: ColorFigure(color, fig),
		})
	}
	return out
}

func (pos *Position) genCastles(color Color, out []Move) []Move {
	occ := pos.Occupied()
	opponent := color.Opposite()
	rank := 0
	kingside, queenside := WhiteKingside, WhiteQueenside
	if color == Black {
		rank = 7
		kingside, queenside = BlackKingside, BlackQueenside
	}
	e := RankFile(rank, 4)
	if pos.kingSquare(color) != e {
		return out
	}
	king := pos.PieceAt(e)

	if pos.CastleRights&kingside != 0 {
		f, g := RankFile(rank, 5), RankFile(rank, 6)
		if occ&(f.Bitboard()|g.Bitboard()) == 0 &&
			!pos.IsSquareAttacked(e, opponent) && !pos.IsSquareAttacked(f, opponent) && !pos.IsSquareAttacked(g, opponent) {
			out = append(out, Move{From: e, To: g, Kind: CastleMove, Piece: king})
		}
	}
	if pos.CastleRights&queenside != 0 {
		b, c, d := RankFile(rank, 1), RankFile(rank, 2), RankFile(rank, 3)
		if occ&(b.Bitboard()|c.Bitboard()|d.Bitboard()) == 0 &&
			!pos.IsSquareAttacked(e, opponent) && !pos.IsSquareAttacked(d, opponent) && !pos.IsSquareAttacked(c, opponent) {
			out = append(out, Move{From: e, To: c, Kind: CastleMove, Piece: king})
		}
	}
	return out
}

// LegalMoves returns every legal move for the side to move.
func (pos *Position) LegalMoves() []Move {
	pseudo := pos.pseudoLegalMoves(false, nil)
	return pos.filterLegal(pseudo)
}

// CaptureMoves returns every legal capture, en passant and queen
// promotion for the side to move — the move set searched by quiescence.
func (pos *Position) CaptureMoves() []Move {
	pseudo := pos.pseudoLegalMoves(true, nil)
	return pos.filterLegal(pseudo)
}

func (pos *Position) filterLegal(pseudo []Move) []Move {
	mover := pos.ToMove
	legal := pseudo[:0:0]
	for _, mv := range pseudo {
		child := pos.Play(mv)
		if !child.IsSquareAttacked(child.kingSquare(mover), mover.Opposite()) {
			legal = append(legal, mv)
		}
	}
	return legal
}

// IsCheckmate reports whether the side to move has no legal moves and is
// in check.
func (pos *Position) IsCheckmate() bool {
	return pos.IsCheck() && len(pos.LegalMoves()) == 0
}

// IsStalemate reports whether the side to move has no legal moves and is
// not in check.
func (pos *Position) IsStalemate() bool {
	return !pos.IsCheck() && len(pos.LegalMoves()) == 0
}

// IsInsufficientMaterial reports whether neither side has enough material
// to deliver checkmate under any sequence of legal moves: no pawns, rooks
// or queens on the board, and at most one minor piece in total.
func (pos *Position) IsInsufficientMaterial() bool {
	if pos.ByFigure[Pawn]|pos.ByFigure[Rook]|pos.ByFigure[Queen] != 0 {
		return false
	}
	minors := (pos.ByFigure[Knight] | pos.ByFigure[Bishop]).PopCount()
	return minors <= 1
}
