package chess

import "fmt"

// MoveFromUCI finds the legal move on pos matching a UCI long algebraic
// string such as "e2e4" or "e7e8q". Returns an error if the string is
// malformed or does not match any legal move.
func MoveFromUCI(pos *Position, s string) (Move, error) {
	if len(s) < 4 || len(s) > 5 {
		return NullMove, fmt.Errorf("chess: invalid UCI move %q", s)
	}
	from, err := SquareFromString(s[0:2])
	if err != nil {
		return NullMove, fmt.Errorf("chess: invalid UCI move %q: %w", s, err)
	}
	to, err := SquareFromString(s[2:4])
	if err != nil {
		return NullMove, fmt.Errorf("chess: invalid UCI move %q: %w", s, err)
	}
	var promo Figure
	if len(s) == 5 {
		switch s[4] {
		case 'q':
			promo = Queen
		case 'r':
			promo = Rook
		case 'b':
			promo = Bishop
		case 'n':
			promo = Knight
		default:
			return NullMove, fmt.Errorf("chess: invalid UCI move %q: bad promotion piece", s)
		}
	}

	for _, mv := range pos.LegalMoves() {
		if mv.From != from || mv.To != to {
			continue
		}
		if mv.Kind == PromotionMove && mv.Promotion.Figure() != promo {
			continue
		}
		if mv.Kind != PromotionMove && promo != NoFigure {
			continue
		}
		return mv, nil
	}
	return NullMove, fmt.Errorf("chess: %q is not a legal move in this position", s)
}
