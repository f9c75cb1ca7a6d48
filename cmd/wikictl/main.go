package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/wikiweb/wikictl/internal/client/cli"
	"github.com/wikiweb/wikictl/internal/client/config"
)

func main() {

	// A missing .env file is fine; the environment stays as-is.
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
