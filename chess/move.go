package chess

// MoveKind distinguishes the small set of moves that need special
// handling on top of a plain from/to relocation.
type MoveKind uint8

const (
	Normal MoveKind = iota
	CastleMove
	EnPassant
	PromotionMove
)

// Move is a fully-described, position-dependent move: it carries enough
// information to be undone without consulting the position it was
// generated from, and enough to drive MVV-LVA ordering directly.
type Move struct {
	From, To  Square
	Kind      MoveKind
	Piece     Piece // the moving piece, as it stood on From (pawn even for promotions)
	Captured  Piece // captured piece, NoPiece if none (opponent pawn for en passant)
	Promotion Piece // promoted-to piece, NoPiece unless Kind == PromotionMove
}

// Equal reports whether two moves describe the same transition.
func (m Move) Equal(o Move) bool {
	return m.From == o.From && m.To == o.To && m.Kind == o.Kind && m.Promotion == o.Promotion
}

// IsCapture reports whether the move removes an enemy piece from the board.
func (m Move) IsCapture() bool {
	return m.Captured != NoPiece
}

// AttackerType is the figure of the moving piece, used by MVV-LVA ordering.
func (m Move) AttackerType() Figure {
	return m.Piece.Figure()
}

// VictimType is the figure of the captured piece, used by MVV-LVA ordering.
// Result is meaningless if IsCapture is false.
func (m Move) VictimType() Figure {
	return m.Captured.Figure()
}

var promotionSuffix = [7]byte{Knight: 'n', Bishop: 'b', Rook: 'r', Queen: 'q'}

// String renders the move in UCI long algebraic notation, e.g. "e2e4"
// or "e7e8q" for a queen promotion.
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Kind == PromotionMove {
		s += string(promotionSuffix[m.Promotion.Figure()])
	}
	return s
}

// NullMove is the zero value Move, never produced by legal generation.
var NullMove = Move{}
