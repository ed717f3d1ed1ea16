package main

import (
	"log"

	"gadgetmart-auth/internal/config"
	"gadgetmart-auth/internal/server"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Auth: No .env file found, relying on system env vars")
	}

	cfg := config.Load()
	server.NewServer(cfg) // handles lifecycle & shutdown internally
}
