package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/rmachado/logkeep/internal/server"
)

func main() {
	godotenv.Load(".env")
	config, err := server.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	srv, err := server.NewServer(config)
	if err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	err = srv.Start(ctx)
	if err != nil {
		log.Fatalf("Server exited with error: %v", err)
	}
}
