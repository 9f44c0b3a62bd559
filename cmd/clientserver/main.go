package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/voyagegate/internal/client"
	"github.com/dmitrijs2005/voyagegate/internal/client/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := client.NewApp(cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
