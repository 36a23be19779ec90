package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/tabledeck/blackjack/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using the environment as is")
	}

	cfg, err := server.ConfigFromEnv()
	if err != nil {
		log.Fatal(err.Error())
	}

	s := server.New(cfg)
	log.Printf("Listening on %s...", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, s))
}
