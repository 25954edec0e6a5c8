// GoCube Puzzle - terminal front end for the interactive cube engine.
package main

import (
	"github.com/SeamusWaldron/gocube_puzzle/internal/cli"
)

func main() {
	cli.Execute()
}
