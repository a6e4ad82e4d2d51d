// GoCube Simulator - CLI application for playing a virtual Rubik's Cube.
package main

import (
	"github.com/SeamusWaldron/gocube_sim/internal/cli"
)

func main() {
	cli.Execute()
}
