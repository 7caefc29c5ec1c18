package main

import (
	"context"
	"log"

	"github.com/tahamajeedkhan/SafeRice-Server/internal/server"
	"github.com/tahamajeedkhan/SafeRice-Server/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
