package main

import (
	"log"

	"ai-assistant-admin-be/internal/bootstrap"
	"ai-assistant-admin-be/internal/config"
	"ai-assistant-admin-be/internal/server"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(cfg)
	defer container.Logger.Sync()

	// 3. Initialize Server
	srv := server.New(cfg, container)

	// 4. Run Server
	log.Fatal(srv.Run())
}
