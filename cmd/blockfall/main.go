//go:build !ebiten

package main

import (
	"flag"
	"log"

	"blockfall/internal/app"
	"blockfall/internal/term"
	"blockfall/internal/tetris"
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

	ui, err := term.New(board, cfg.TPS, cfg.Seed)
	if err != nil {
		log.Fatal(err)
	}
	if err := ui.Run(); err != nil {
		log.Fatal(err)
	}
}
