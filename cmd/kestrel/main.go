// kestrel is a console chess engine: bitboard move generation, alpha-beta search with
// quiescence and a transposition table, and tapered evaluation.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/herohde/kestrel/pkg/engine"
	"github.com/herohde/kestrel/pkg/engine/console"
)

var (
	depth = flag.Int("depth", 0, "Default search depth limit (zero if no limit)")
	hash  = flag.Uint("hash", 64, "Transposition table size in MB")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: kestrel [options]

KESTREL is a console chess engine.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	e := engine.New(ctx, "kestrel", "herohde", engine.Options{Depth: *depth, Hash: *hash})
	d := console.NewDriver(e)

	in := engine.ReadStdinLines(ctx)
	out := make(chan string, 100)
	go d.Run(ctx, in, out)

	for line := range out {
		fmt.Println(line)
	}
}
