//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"fallgrid/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	board, err := cfg.Load()
	if err != nil {
		log.Fatalf("load board: %v", err)
	}

	game := app.New(board, cfg.Scale)
	size := board.Size()

	ebiten.SetWindowTitle("fallgrid — " + board.Name())
	ebiten.SetWindowSize(size.Cols*cfg.Scale, size.Rows*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
