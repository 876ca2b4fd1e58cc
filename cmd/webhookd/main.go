package main

import (
	"log"

	"payswitch/config"
	"payswitch/internal/api"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Config error: %s", err)
	}
	if err := api.Run(cfg); err != nil {
		log.Fatalf("Run error: %s", err)
	}
}
