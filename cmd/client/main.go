package main

import (
	"context"
	"log"

	"github.com/Soham964/AGRO/internal/client/cli"
	"github.com/Soham964/AGRO/internal/client/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
