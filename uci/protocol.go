// Package uci implements a thin text-protocol front end over the search
// core: parsing UCI commands from stdin and writing "info"/"bestmove"
// responses to stdout. None of the search semantics live here.
package uci

import (
	"strconv"
	"strings"
)

// Command is one parsed line of UCI input: a command name and its
// remaining whitespace-separated tokens.
type Command struct {
	Name string
	Args []string
}

// ParseCommand splits a raw input line into a Command. An empty or
// whitespace-only line parses to a Command with an empty Name.
func ParseCommand(line string) Command {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}
	}
	return Command{Name: fields[0], Args: fields[1:]}
}

// GoParams is the parsed argument set of a "go" command.
type GoParams struct {
	WTime, BTime   int // milliseconds, 0 if not given
	WInc, BInc     int // milliseconds
	MoveTime       int // milliseconds, explicit fixed move time if > 0
	Depth          int // explicit fixed depth if > 0
	Infinite       bool
	MovesToGo      int
}

// ParseGo parses the arguments following "go".
func ParseGo(args []string) GoParams {
	var p GoParams
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "infinite":
			p.Infinite = true
		case "wtime":
			i++
			p.WTime = atoiSafe(args, i)
		case "btime":
			i++
			p.BTime = atoiSafe(args, i)
		case "winc":
			i++
			p.WInc = atoiSafe(args, i)
		case "binc":
			i++
			p.BInc = atoiSafe(args, i)
		case "movetime":
			i++
			p.MoveTime = atoiSafe(args, i)
		case "depth":
			i++
			p.Depth = atoiSafe(args, i)
		case "movestogo":
			i++
			p.MovesToGo = atoiSafe(args, i)
		}
	}
	return p
}

func atoiSafe(args []string, i int) int {
	if i < 0 || i >= len(args) {
		return 0
	}
	n, err := strconv.Atoi(args[i])
	if err != nil {
		return 0
	}
	return n
}

// PositionParams is the parsed argument set of a "position" command.
type PositionParams struct {
	StartPos bool
	FEN      string // set when StartPos is false
	Moves    []string
}

// ParsePosition parses the arguments following "position".
func ParsePosition(args []string) PositionParams {
	var p PositionParams
	if len(args) == 0 {
		return p
	}
	i := 0
	if args[0] == "startpos" {
		p.StartPos = true
		i = 1
	} else if args[0] == "fen" {
		i = 1
		var fenParts []string
		for i < len(args) && args[i] != "moves" {
			fenParts = append(fenParts, args[i])
			i++
		}
		p.FEN = strings.Join(fenParts, " ")
	}
	for i < len(args) {
		if args[i] == "moves" {
			i++
			continue
		}
		p.Moves = append(p.Moves, args[i])
		i++
	}
	return p
}

// SetOptionParams is the parsed argument set of a "setoption" command.
type SetOptionParams struct {
	Name  string
	Value string
}

// ParseSetOption parses the arguments following "setoption".
func ParseSetOption(args []string) SetOptionParams {
	var p SetOptionParams
	var name, value []string
	mode := ""
	for _, a := range args {
		switch a {
		case "name":
			mode = "name"
			continue
		case "value":
			mode = "value"
			continue
		}
		switch mode {
		case "name":
			name = append(name, a)
		case "value":
			value = append(value, a)
		}
	}
	p.Name = strings.Join(name, " ")
	p.Value = strings.Join(value, " ")
	return p
}
