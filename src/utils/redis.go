package utils

import (
	"fmt"
	"time"

	DB "Backend-AdmitHub/src/database"

	"github.com/redis/go-redis/v9"
)

// StoreRefreshToken เก็บ refresh token ใน Redis พร้อม expiration
// Returns nil if Redis is not available (development mode)
func StoreRefreshToken(userID, refreshToken string, expiresIn time.Duration) error {
	if DB.RedisClient == nil {
		// ไม่มี Redis ใน dev mode - ข้าม
		return nil
	}

	key := fmt.Sprintf("refresh_token:%s", userID)
	err := DB.RedisClient.Set(DB.RedisCtx, key, refreshToken, expiresIn).Err()
	if err != nil {
		return fmt.Errorf("failed to store refresh token: %v", err)
	}
	return nil
}

// ValidateRefreshToken ตรวจสอบว่า refresh token ตรงกับที่เก็บไว้ใน Redis หรือไม่
// Returns true if Redis is not available (development mode - skip validation)
func ValidateRefreshToken(userID, refreshToken string) (bool, error) {
	if DB.RedisClient == nil {
		// ไม่มี Redis ใน dev mode - ข้ามการตรวจสอบ (อนุญาตให้ผ่าน)
		return true, nil
	}

	key := fmt.Sprintf("refresh_token:%s", userID)
	storedToken, err := DB.RedisClient.Get(DB.RedisCtx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil // Token ไม่มีใน Redis
		}
		return false, err
	}

	return storedToken == refreshToken, nil
}

// RevokeRefreshToken ลบ refresh token ออกจาก Redis (ใช้ตอน logout)
func RevokeRefreshToken(userID string) error {
	if DB.RedisClient == nil {
		return nil
	}

	key := fmt.Sprintf("refresh_token:%s", userID)
	return DB.RedisClient.Del(DB.RedisCtx, key).Err()
}
