package storage

import (
	"context"
	"log"
	"time"

	config "pgstay-server/configs"

	"github.com/go-redis/redis/v8"
)

var Redis *redis.Client

func InitializeRedis() {
	addr := config.Config("REDIS_URL")
	if addr == "" {
		addr = "localhost:6379"
		log.Println("⚠️ REDIS_URL not set, using localhost:6379 (development mode)")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: config.Config("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("🔥 Redis ping failed for %s: %v", addr, err)
		Redis = nil
		return
	}

	Redis = client
	log.Println("✅ Redis initialized with address:", addr)
}
