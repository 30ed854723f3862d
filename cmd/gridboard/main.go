package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"gridboard/internal/canvas"
)

func main() {
	var (
		configPath string
		width      int
		height     int
	)
	flag.StringVar(&configPath, "config", "", "path to a YAML config file (defaults apply when empty)")
	flag.IntVar(&width, "w", 1280, "window width in pixels")
	flag.IntVar(&height, "h", 800, "window height in pixels")
	flag.Parse()

	cfg := canvas.DefaultConfig()
	if configPath != "" {
		var err error
		cfg, err = canvas.LoadConfig(configPath)
		if err != nil {
			log.Fatal(err)
		}
	}

	widget, err := canvas.New(cfg, demoItems(), width, height)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("Gridboard")
	ebiten.SetWindowSize(width, height)
	if err := ebiten.RunGame(widget); err != nil {
		log.Fatal(err)
	}
}

// demoItems seeds a fixed set of markers so pan, zoom and grid lock are
// visible out of the box. Real callers supply their own feed to canvas.New.
func demoItems() []canvas.Item {
	return []canvas.Item{
		{ID: "origin", X: 0, Y: 0, Label: "origin"},
		{ID: "a1", X: 160, Y: 96, Label: "alpha"},
		{ID: "b2", X: 480, Y: 320, Label: "bravo"},
		{ID: "c3", X: -224, Y: 128, Label: "charlie"},
		{ID: "d4", X: 320, Y: -160, Label: "delta"},
		{ID: "e5", X: -96, Y: -288, Label: "echo"},
		{ID: "f6", X: 704, Y: 64, Label: "foxtrot"},
	}
}
