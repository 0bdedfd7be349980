package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/wanerdev/creaparty2020/internal/app"
	"github.com/wanerdev/creaparty2020/internal/config"
)

func main() {
	// .env is optional, real env vars win either way.
	_ = godotenv.Load()

	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("app run: %v", err)
	}
}
