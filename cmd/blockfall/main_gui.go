//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"blockfall/internal/app"
	"blockfall/internal/tetris"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	board := tetris.New(tetris.Config{
		Rows:         cfg.Rows,
		Cols:         cfg.Cols,
		TicksPerDrop: cfg.TPS * 4 / 5,
		Seed:         cfg.Seed,
	})

	game := app.New(board, cfg.Scale, cfg.Seed)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("blockfall")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
