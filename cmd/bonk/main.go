package main

import (
	"log"
	"os"

	"github.com/MrSnakeDoc/bonk/internal/app"
	"github.com/MrSnakeDoc/bonk/internal/commands"
)

func main() {
	a, err := app.New()
	if err != nil {
		log.Fatalf("❌ bonk failed to start: %v", err)
	}
	defer func() { _ = a.Log.Sync() }()

	if err := commands.NewRootCmd(a).Execute(); err != nil {
		a.Log.Errorf("%v", err)
		os.Exit(1)
	}
}
