package main

import (
	"os"

	"github.com/litefire/litefire/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
