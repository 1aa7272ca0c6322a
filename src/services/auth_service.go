package services

import (
	"Backend-AdmitHub/src/database"
	"Backend-AdmitHub/src/models"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

const (
	maxLoginAttempts = 5
	loginCooldown    = 10 * time.Minute
)

// AuthenticateUser ตรวจสอบ email + password สำหรับทั้ง Applicant และ Admin
func AuthenticateUser(email, password string) (*models.User, error) {
	ctx := context.Background()

	var dbUser models.User
	err := database.UserCollection.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&dbUser)
	if err != nil {
		return nil, errors.New("Invalid email or password")
	}

	// ตรวจสอบ password
	if err := bcrypt.CompareHashAndPassword([]byte(dbUser.Password), []byte(password)); err != nil {
		return nil, errors.New("Invalid password")
	}

	return &models.User{
		ID:    dbUser.ID,
		Name:  dbUser.Name,
		Email: dbUser.Email,
		Role:  dbUser.Role,
	}, nil
}

// IsRateLimited เช็คว่า email นี้ login ผิดเกินจำนวนครั้งที่กำหนดหรือยัง
// ไม่มี Redis = ไม่จำกัด (dev mode)
func IsRateLimited(email string) bool {
	if database.RedisClient == nil {
		return false
	}

	key := fmt.Sprintf("login_attempts:%s", strings.ToLower(email))
	count, err := database.RedisClient.Get(database.RedisCtx, key).Int()
	if err != nil {
		return false
	}
	return count >= maxLoginAttempts
}

// GetRemainingCooldownTime เวลาที่เหลือก่อน login ได้อีกครั้ง
func GetRemainingCooldownTime(email string) time.Duration {
	if database.RedisClient == nil {
		return 0
	}

	key := fmt.Sprintf("login_attempts:%s", strings.ToLower(email))
	ttl, err := database.RedisClient.TTL(database.RedisCtx, key).Result()
	if err != nil || ttl < 0 {
		return 0
	}
	return ttl
}

// LogLoginAttempt บันทึกผลการ login — ผิดสะสมครบ cooldown ใน Redis, สำเร็จแล้วล้าง
func LogLoginAttempt(email, ip string, success bool) {
	log.Printf("🔑 Login attempt: email=%s ip=%s success=%v", email, ip, success)

	if database.RedisClient == nil {
		return
	}

	key := fmt.Sprintf("login_attempts:%s", strings.ToLower(email))
	if success {
		if err := database.RedisClient.Del(database.RedisCtx, key).Err(); err != nil {
			log.Println("⚠️ Failed to reset login attempts:", err)
		}
		return
	}

	count, err := database.RedisClient.Incr(database.RedisCtx, key).Result()
	if err != nil {
		log.Println("⚠️ Failed to record login attempt:", err)
		return
	}
	if count == 1 {
		database.RedisClient.Expire(database.RedisCtx, key, loginCooldown)
	}
}
