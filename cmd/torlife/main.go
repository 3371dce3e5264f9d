//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"torlife/internal/app"
	"torlife/internal/core"
	_ "torlife/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	var game *app.Game
	ctrl, err := cfg.Controller(func(ev core.CellsChanged) {
		game.CellsChanged(ev)
	})
	if err != nil {
		log.Fatal(err)
	}
	game = app.New(ctrl, cfg.Scale, cfg.Seed)

	ebiten.SetWindowTitle("torlife — " + cfg.Rule)
	ebiten.SetWindowSize(ctrl.Cols()*cfg.Scale, ctrl.Rows()*cfg.Scale)

	ctrl.Start()
	defer ctrl.Stop()

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
