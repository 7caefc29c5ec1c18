package main

import (
	"context"
	"log"
	"os"

	"github.com/tahamajeedkhan/SafeRice-Server/internal/cli"
	"github.com/tahamajeedkhan/SafeRice-Server/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	if err := app.Run(ctx, os.Args[1:]); err != nil {
		log.Fatalf("%v", err)
	}

}
