package uci

import (
	"bufio"
	"strings"
	"testing"
)

func TestEngineUCIHandshake(t *testing.T) {
	e := NewEngine()
	in := strings.NewReader("uci\nisready\nquit\n")
	var out strings.Builder
	if err := e.Run(in, &out); err != nil {
		t.Fatalf("Run: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "uciok") {
		t.Errorf("expected uciok in output, got:\n%s", got)
	}
	if !strings.Contains(got, "readyok") {
		t.Errorf("expected readyok in output, got:\n%s", got)
	}
}

func TestEngineGoProducesBestmove(t *testing.T) {
	e := NewEngine()
	in := strings.NewReader("position startpos\ngo depth 2\nquit\n")
	var out strings.Builder
	if err := e.Run(in, &out); err != nil {
		t.Fatalf("Run: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "bestmove") {
		t.Errorf("expected a bestmove line, got:\n%s", got)
	}
}

func TestEngineGoFromThreefoldRepetitionStillProducesBestmove(t *testing.T) {
	e := NewEngine()
	in := strings.NewReader("position startpos moves g1f3 g8f6 f3g1 f6g8 g1f3 g8f6 f3g1 f6g8\ngo depth 2\nquit\n")
	var out strings.Builder
	if err := e.Run(in, &out); err != nil {
		t.Fatalf("Run: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "bestmove") {
		t.Errorf("expected a bestmove line even from an already-drawn position, got:\n%s", got)
	}
	if strings.Contains(got, "bestmove 0000") {
		t.Errorf("expected a real legal move, not the null-move fallback, got:\n%s", got)
	}
}

func TestEnginePerft(t *testing.T) {
	e := NewEngine()
	in := strings.NewReader("position startpos\nperft 3\nquit\n")
	var out strings.Builder
	if err := e.Run(in, &out); err != nil {
		t.Fatalf("Run: %v", err)
	}
	scanner := bufio.NewScanner(strings.NewReader(out.String()))
	found := false
	for scanner.Scan() {
		if strings.HasPrefix(scanner.Text(), "perft 3 nodes 8902") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected perft 3 nodes 8902 line, got:\n%s", out.String())
	}
}
