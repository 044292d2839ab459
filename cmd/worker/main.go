// Command worker runs the scoring worker standalone, so scoring capacity
// can scale independently of the HTTP frontend (spec section 9: "must be
// able to run on any instance — it only needs the job contract"). It needs
// no server key: a dispatched job already carries the round's seed.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"boggle-server/internal/boggle"
	"boggle-server/internal/config"
	"boggle-server/internal/database"
	"boggle-server/internal/queue"
	"boggle-server/internal/store"
	"boggle-server/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	redisClient, err := database.NewRedisConnection(cfg.RedisURL)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	catalog := boggle.NewCatalog(cfg.DiceDir, cfg.DictionaryDir)
	st := store.New(db)
	q := queue.New(redisClient, "")
	w := worker.New(st, catalog)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Printf("worker: starting %d pool goroutines", cfg.WorkerPoolSize)
	done := make(chan struct{}, cfg.WorkerPoolSize)
	for i := 0; i < cfg.WorkerPoolSize; i++ {
		go func() {
			w.Run(ctx, q)
			done <- struct{}{}
		}()
	}

	for i := 0; i < cfg.WorkerPoolSize; i++ {
		<-done
	}
	log.Println("worker: shut down")
}
