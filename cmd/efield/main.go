package main

import (
	"flag"
	"log"

	"efield/internal/config"
	"efield/internal/game"
)

func main() {
	configPath := flag.String("config", "efield.yaml", "path to settings file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	game.New(cfg).Run()
}
