// Command tilesearch solves and benchmarks tile-swap puzzles.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/katalvlaran/statesearch/internal/cli"
)

func main() {
	if err := cli.New().Execute(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "tilesearch:", err)
		os.Exit(1)
	}
}
