package database

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var (
	RedisClient *redis.Client
	RedisCtx    = context.Background()
	RedisURI    string
)

// InitRedis เชื่อมต่อ Redis (ใช้เก็บ refresh token และ cache สถิติ)
func InitRedis() {
	RedisURI = os.Getenv("REDIS_URI") // เช่น localhost:6379
	if RedisURI == "" {
		log.Println("⚠️ REDIS_URI not set. Redis features disabled.")
		return
	}

	RedisClient = redis.NewClient(&redis.Options{
		Addr:     RedisURI,
		Password: "", // ถ้าไม่มีรหัสผ่าน
		DB:       0,
	})
	_, err := RedisClient.Ping(RedisCtx).Result()
	if err != nil {
		log.Println("⚠️ Failed to connect Redis:", err)
		RedisClient = nil
		return
	}

	log.Println("✅ Redis connected successfully")
}
