package uci

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/WGCodings/FastPeaPea/chess"
	"github.com/WGCodings/FastPeaPea/search"
)

const (
	engineName   = "FastPeaPea"
	engineAuthor = "WGCodings"

	defaultHashMB  = 64
	defaultMaxPly  = 64
	defaultMaxDepth = 64
	minMultiPV     = 1
	maxMultiPV     = 5
)

// Engine owns the persistent state of one UCI session: the current
// position, the transposition table (which survives across "go"
// commands until "ucinewgame"), and the in-flight search, if any.
type Engine struct {
	pos     chess.Position
	history []uint64 // hash of every position from the game root through pos
	params  search.Params
	tt      *search.TranspositionTable
	multiPV int

	mu       sync.Mutex
	cancel   context.CancelFunc
	searchWG sync.WaitGroup

	// writeMu serializes writes to the protocol output stream between
	// the command loop and the asynchronous "go" goroutine, so an
	// "isready" response can never interleave mid-line with a bestmove.
	writeMu sync.Mutex
}

// NewEngine returns a ready-to-run engine at the standard starting
// position with default options.
func NewEngine() *Engine {
	pos := chess.StartPosition()
	return &Engine{
		pos:     pos,
		history: []uint64{pos.Hash},
		params:  search.DefaultParams(),
		tt:      search.NewTranspositionTable(defaultHashMB),
		multiPV: 1,
	}
}

// Run reads UCI commands from r and writes responses to w until "quit"
// is received or r is exhausted.
func (e *Engine) Run(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	out := bufio.NewWriter(w)
	defer out.Flush()

	for scanner.Scan() {
		cmd := ParseCommand(scanner.Text())
		if cmd.Name == "" {
			continue
		}
		if cmd.Name == "quit" {
			e.stopSearch()
			return nil
		}
		e.dispatch(cmd, out)
	}
	return scanner.Err()
}

// dispatch must never hold writeMu across a call that can block on
// searchWG.Wait() (stopSearch, directly or via handleGo/ucinewgame):
// the in-flight "go" goroutine needs writeMu itself to write its
// bestmove line, so holding it here while waiting would deadlock.
// writeMu is only taken immediately around a synchronous write.
func (e *Engine) dispatch(cmd Command, out *bufio.Writer) {
	switch cmd.Name {
	case "uci":
		e.writeMu.Lock()
		fmt.Fprintf(out, "id name %s\n", engineName)
		fmt.Fprintf(out, "id author %s\n", engineAuthor)
		fmt.Fprintf(out, "option name MultiPV type spin default 1 min %d max %d\n", minMultiPV, maxMultiPV)
		fmt.Fprintln(out, "uciok")
		out.Flush()
		e.writeMu.Unlock()
	case "isready":
		e.writeMu.Lock()
		fmt.Fprintln(out, "readyok")
		out.Flush()
		e.writeMu.Unlock()
	case "ucinewgame":
		e.stopSearch()
		e.tt.Clear()
		e.pos = chess.StartPosition()
		e.history = []uint64{e.pos.Hash}
	case "setoption":
		e.handleSetOption(ParseSetOption(cmd.Args))
	case "position":
		e.handlePosition(ParsePosition(cmd.Args))
	case "go":
		e.handleGo(ParseGo(cmd.Args), out)
	case "stop":
		e.stopSearch()
	case "perft":
		e.handlePerft(cmd.Args, out)
	}
}

func (e *Engine) handleSetOption(p SetOptionParams) {
	if !strings.EqualFold(p.Name, "MultiPV") {
		return
	}
	n, err := strconv.Atoi(p.Value)
	if err != nil {
		return
	}
	if n < minMultiPV {
		n = minMultiPV
	}
	if n > maxMultiPV {
		n = maxMultiPV
	}
	e.mu.Lock()
	e.multiPV = n
	e.mu.Unlock()
}

func (e *Engine) handlePosition(p PositionParams) {
	var pos chess.Position
	if p.StartPos || p.FEN == "" {
		pos = chess.StartPosition()
	} else {
		parsed, err := chess.PositionFromFEN(p.FEN)
		if err != nil {
			return
		}
		pos = parsed
	}
	history := []uint64{pos.Hash}
	for _, mv := range p.Moves {
		m, err := chess.MoveFromUCI(&pos, mv)
		if err != nil {
			return
		}
		pos = pos.Play(m)
		history = append(history, pos.Hash)
	}
	e.mu.Lock()
	e.pos = pos
	e.history = history
	e.mu.Unlock()
}

func (e *Engine) handleGo(p GoParams, out *bufio.Writer) {
	e.stopSearch()

	e.mu.Lock()
	pos := e.pos
	history := e.history
	multiPV := e.multiPV
	params := e.params
	e.mu.Unlock()

	remaining, increment := selectClock(pos.ToMove, p)
	maxDepth := defaultMaxDepth
	if p.Depth > 0 {
		maxDepth = p.Depth
	}
	if p.Infinite && remaining <= 0 {
		// A 24-hour clock gives a budget of hours, so in practice the
		// search ends on "stop" (observed via context cancellation at the
		// next iteration boundary) or maxDepth.
		remaining = 24 * time.Hour
	}

	ctx, cancel := context.WithCancel(context.Background())
	e.mu.Lock()
	e.cancel = cancel
	e.mu.Unlock()

	sc := search.NewContext(params, e.tt, multiPV, defaultMaxPly)
	// history's last entry is pos itself, which search.Run pushes onto
	// Repeats on its own; seed everything before that so a position
	// repeated across real game moves (not just within the search tree)
	// can be recognized as a three-fold repetition.
	if len(history) > 1 {
		sc.Repeats.Seed(history[:len(history)-1])
	}
	tm := search.NewTimeManager()
	if p.MoveTime > 0 {
		tm = fixedMoveTimeManager{d: time.Duration(p.MoveTime) * time.Millisecond}
	}

	e.searchWG.Add(1)
	go func() {
		defer e.searchWG.Done()
		defer cancel()

		start := time.Now()
		mv, ok := search.Run(ctx, sc, pos, maxDepth, tm, remaining, increment)
		elapsed := time.Since(start)

		e.writeMu.Lock()
		defer e.writeMu.Unlock()
		for i := 0; i < sc.MultiPv.Len(); i++ {
			score, line := sc.MultiPv.At(i)
			writeInfo(out, sc, i+1, score, line, elapsed)
		}
		if ok {
			fmt.Fprintf(out, "bestmove %s\n", mv.String())
		} else {
			fmt.Fprintln(out, "bestmove 0000")
		}
		out.Flush()
	}()
}

func writeInfo(out *bufio.Writer, sc *search.Context, multiPVIndex int, score float32, line []chess.Move, elapsed time.Duration) {
	fmt.Fprintf(out, "info depth %d seldepth %d multipv %d score cp %d nodes %d nps %d hashfull %d time %d pv",
		len(line), sc.Stats.SelDepth, multiPVIndex, int(score), sc.Stats.Nodes, sc.Stats.NPS(), sc.TT.Hashfull(), elapsed.Milliseconds())
	for _, mv := range line {
		fmt.Fprintf(out, " %s", mv.String())
	}
	fmt.Fprintln(out)
}

func (e *Engine) handlePerft(args []string, out *bufio.Writer) {
	depth := 4
	if len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil {
			depth = n
		}
	}
	e.mu.Lock()
	pos := e.pos
	e.mu.Unlock()
	nodes := chess.Perft(pos, depth)
	e.writeMu.Lock()
	fmt.Fprintf(out, "perft %d nodes %d\n", depth, nodes)
	out.Flush()
	e.writeMu.Unlock()
}

func (e *Engine) stopSearch() {
	e.mu.Lock()
	cancel := e.cancel
	e.cancel = nil
	e.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	e.searchWG.Wait()
}

func selectClock(toMove chess.Color, p GoParams) (remaining, increment time.Duration) {
	if toMove == chess.White {
		return time.Duration(p.WTime) * time.Millisecond, time.Duration(p.WInc) * time.Millisecond
	}
	return time.Duration(p.BTime) * time.Millisecond, time.Duration(p.BInc) * time.Millisecond
}

// fixedMoveTimeManager always allocates exactly d, for "go movetime".
type fixedMoveTimeManager struct {
	d time.Duration
}

func (f fixedMoveTimeManager) Allocate(time.Duration, time.Duration, int) time.Duration {
	return f.d
}
