package main

import (
	"github.com/bethropolis/ctx-clip/internal/cli"
)

func main() {
	cli.Execute()
}
