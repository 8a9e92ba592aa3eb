package uci

import "testing"

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line     string
		wantName string
		wantArgs []string
	}{
		{"uci", "uci", nil},
		{"isready", "isready", nil},
		{"go depth 6", "go", []string{"depth", "6"}},
		{"  ", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			cmd := ParseCommand(tt.line)
			if cmd.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", cmd.Name, tt.wantName)
			}
			if len(cmd.Args) != len(tt.wantArgs) {
				t.Fatalf("Args = %v, want %v", cmd.Args, tt.wantArgs)
			}
			for i := range cmd.Args {
				if cmd.Args[i] != tt.wantArgs[i] {
					t.Errorf("Args[%d] = %q, want %q", i, cmd.Args[i], tt.wantArgs[i])
				}
			}
		})
	}
}

func TestParseGo(t *testing.T) {
	p := ParseGo([]string{"wtime", "60000", "btime", "59000", "winc", "1000", "depth", "10"})
	if p.WTime != 60000 || p.BTime != 59000 || p.WInc != 1000 || p.Depth != 10 {
		t.Errorf("ParseGo = %+v, unexpected", p)
	}
}

func TestParsePositionStartpos(t *testing.T) {
	p := ParsePosition([]string{"startpos", "moves", "e2e4", "e7e5"})
	if !p.StartPos {
		t.Errorf("expected StartPos")
	}
	if len(p.Moves) != 2 || p.Moves[0] != "e2e4" || p.Moves[1] != "e7e5" {
		t.Errorf("Moves = %v, unexpected", p.Moves)
	}
}

func TestParsePositionFEN(t *testing.T) {
	fen := "8/8/8/8/8/8/8/4K2k w - - 0 1"
	p := ParsePosition(append([]string{"fen"}, split(fen)...))
	if p.StartPos {
		t.Errorf("did not expect StartPos")
	}
	if p.FEN != fen {
		t.Errorf("FEN = %q, want %q", p.FEN, fen)
	}
}

func split(s string) []string {
	var out []string
	word := ""
	for _, c := range s {
		if c == ' ' {
			if word != "" {
				out = append(out, word)
				word = ""
			}
			continue
		}
		word += string(c)
	}
	if word != "" {
		out = append(out, word)
	}
	return out
}

func TestParseSetOptionMultiPV(t *testing.T) {
	p := ParseSetOption([]string{"name", "MultiPV", "value", "3"})
	if p.Name != "MultiPV" || p.Value != "3" {
		t.Errorf("ParseSetOption = %+v, unexpected", p)
	}
}
