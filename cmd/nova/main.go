// nova is a minimal text driver for the engine package: load a position, apply
// moves, and ask the engine for its own move, one line of input at a time.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/herohde/nova/pkg/engine"
	"github.com/seekerror/logw"
)

var depth = flag.Int("depth", 4, "search depth limit in plies")

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: nova [options]

nova reads commands from stdin, one per line, and writes responses to stdout:

  position <fen>    load the given position (or "startpos")
  move <lan>         apply a move in long algebraic notation, e.g. "e2e4"
  go                  search and print the engine's chosen move
  quit                exit

Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	e := engine.New(ctx, "nova")
	logw.Infof(ctx, "%v ready, depth=%v", e.Name(), *depth)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "position":
			if len(fields) < 2 {
				fmt.Println("error: position requires an argument")
				continue
			}
			position := strings.Join(fields[1:], " ")
			if fields[1] == "startpos" {
				position = engine.StartPosition
			}
			if err := e.Load(ctx, position); err != nil {
				fmt.Printf("error: %v\n", err)
			}

		case "move":
			if len(fields) != 2 {
				fmt.Println("error: move requires exactly one argument")
				continue
			}
			if err := e.ApplyLongAlgebraic(ctx, fields[1]); err != nil {
				fmt.Printf("error: %v\n", err)
			}

		case "go":
			best, err := e.BestMove(ctx, *depth)
			if err != nil {
				fmt.Printf("error: %v\n", err)
				continue
			}
			fmt.Printf("bestmove %v\n", best)

		case "quit":
			return

		default:
			fmt.Printf("error: unknown command %q\n", fields[0])
		}
	}

	if err := scanner.Err(); err != nil {
		logw.Exitf(ctx, "reading stdin: %v", err)
	}
}
