package chess

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN of the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// StartPosition returns a fresh copy of the standard starting position.
func StartPosition() Position {
	pos, err := PositionFromFEN(StartFEN)
	if err != nil {
		panic("chess: invalid built-in start FEN: " + err.Error())
	}
	return pos
}

var figureFromSymbol = map[byte]Figure{
	'p': Pawn, 'n': Knight, 'b': Bishop, 'r': Rook, 'q': Queen, 'k': King,
}

// PositionFromFEN parses a position from Forsyth-Edwards Notation.
func PositionFromFEN(fen string) (Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return Position{}, fmt.Errorf("chess: FEN %q: need at least 4 fields", fen)
	}
	for len(fields) < 6 {
		fields = append(fields, "0")
	}

	pos := NewEmptyPosition()

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return Position{}, fmt.Errorf("chess: FEN %q: expected 8 ranks, got %d", fen, len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			fig, ok := figureFromSymbol[lower(c)]
			if !ok {
				return Position{}, fmt.Errorf("chess: FEN %q: invalid piece symbol %q", fen, c)
			}
			if file > 7 {
				return Position{}, fmt.Errorf("chess: FEN %q: rank %d overflows", fen, rank+1)
			}
			color := Black
			if c == upper(c) {
				color = White
			}
			pos.Put(RankFile(rank, file), ColorFigure(color, fig))
			file++
		}
	}

	switch fields[1] {
	case "w":
		pos.ToMove = White
	case "b":
		pos.ToMove = Black
		pos.Hash ^= zobristSideToMove
	default:
		return Position{}, fmt.Errorf("chess: FEN %q: invalid side to move %q", fen, fields[1])
	}

	var rights Castle
	if fields[2] != "-" {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				rights |= WhiteKingside
			case 'Q':
				rights |= WhiteQueenside
			case 'k':
				rights |= BlackKingside
			case 'q':
				rights |= BlackQueenside
			default:
				return Position{}, fmt.Errorf("chess: FEN %q: invalid castling field %q", fen, fields[2])
			}
		}
	}
	pos.CastleRights = rights
	pos.Hash ^= zobristCastle[rights]

	if fields[3] != "-" {
		sq, err := SquareFromString(fields[3])
		if err != nil {
			return Position{}, fmt.Errorf("chess: FEN %q: %w", fen, err)
		}
		pos.EPSquare = sq
	}
	pos.Hash ^= zobristEnPassant[pos.EPSquare]

	if n, err := strconv.Atoi(fields[4]); err == nil {
		pos.HalfmoveClock = n
	}
	if n, err := strconv.Atoi(fields[5]); err == nil && n > 0 {
		pos.FullmoveNumber = n
	} else {
		pos.FullmoveNumber = 1
	}

	return pos, nil
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

// FEN renders the position back to Forsyth-Edwards Notation.
func (pos *Position) FEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			piece := pos.PieceAt(RankFile(rank, file))
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	if pos.ToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(pos.CastleRights.String())
	sb.WriteByte(' ')
	sb.WriteString(pos.EPSquare.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(pos.HalfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(pos.FullmoveNumber))
	return sb.String()
}
