package services

import (
	DB "Backend-AdmitHub/src/database"
	"Backend-AdmitHub/src/models"
	"context"
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// หลักสูตรตั้งต้นใน catalog เรียงตามคะแนนขั้นต่ำ
var defaultPrograms = []struct {
	Name     string
	Category models.ProgramCategory
	MinScore float64
	Seats    int
}{
	{"Computer Science Engineering", models.CategoryEngineering, 75, 120},
	{"Mechanical Engineering", models.CategoryEngineering, 65, 90},
	{"Business Administration", models.CategoryManagement, 60, 150},
	{"Physics", models.CategoryScience, 55, 60},
	{"Economics", models.CategoryCommerce, 50, 100},
	{"English Literature", models.CategoryArts, 40, 80},
}

// generateRandomPassword สร้างรหัสผ่านแบบสุ่ม
func generateRandomPassword(length int) (string, error) {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*"
	password := make([]byte, length)

	for i := range password {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		password[i] = charset[num.Int64()]
	}

	return string(password), nil
}

// hashPassword แปลงรหัสผ่านเป็น bcrypt hash
func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// SeedPrograms เติม catalog ถ้ายังว่างอยู่
func SeedPrograms() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := DB.ProgramCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var docs []interface{}
	for _, p := range defaultPrograms {
		name := p.Name
		seats := p.Seats
		docs = append(docs, models.Program{
			ID:       primitive.NewObjectID(),
			Name:     &name,
			Category: p.Category,
			MinScore: p.MinScore,
			Seats:    &seats,
		})
	}

	if _, err := DB.ProgramCollection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("seed programs failed: %w", err)
	}

	log.Printf("✅ Seeded %d programs", len(docs))
	return nil
}

// SeedAdminUser สร้างบัญชี admin ตั้งต้น (รหัสผ่านจาก env หรือสุ่มแล้ว log ออกมา)
func SeedAdminUser() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@admithub.local"
	}

	count, err := DB.UserCollection.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password, err = generateRandomPassword(12)
		if err != nil {
			return err
		}
		log.Println("🔑 Generated admin password:", password)
	}

	hashed, err := hashPassword(password)
	if err != nil {
		return err
	}

	admin := models.User{
		ID:       primitive.NewObjectID(),
		Email:    email,
		Password: hashed,
		Role:     "Admin",
		Name:     "Admissions Admin",
	}
	if _, err := DB.UserCollection.InsertOne(ctx, admin); err != nil {
		return fmt.Errorf("seed admin failed: %w", err)
	}

	log.Println("✅ Seeded admin user:", email)
	return nil
}
