// Command fastpeapea runs the engine as a UCI process communicating
// over stdin/stdout.
package main

import (
	"fmt"
	"os"

	"github.com/WGCodings/FastPeaPea/uci"
)

func main() {
	engine := uci.NewEngine()
	if err := engine.Run(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "fastpeapea:", err)
		os.Exit(1)
	}
}
