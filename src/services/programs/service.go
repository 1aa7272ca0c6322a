package programs

import (
	DB "Backend-AdmitHub/src/database"
	"Backend-AdmitHub/src/models"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrProgramNotFound = errors.New("program not found")

// ✅ 1. ดึง catalog ทั้งหมด เรียงตามลำดับที่เพิ่มเข้ามา (recommender พึ่งลำดับนี้)
func GetAllPrograms() ([]models.Program, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := DB.ProgramCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	programs := []models.Program{}
	if err := cursor.All(ctx, &programs); err != nil {
		return nil, err
	}
	return programs, nil
}

// ✅ 2. ดึงหลักสูตรตาม ID
func GetProgramByID(id primitive.ObjectID) (*models.Program, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var program models.Program
	if err := DB.ProgramCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&program); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}
	return &program, nil
}

// ✅ 3. เพิ่มหลักสูตรใหม่เข้า catalog (admin เท่านั้น)
func CreateProgram(program *models.Program) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if program.Name == nil || *program.Name == "" {
		return errors.New("program name is required")
	}
	if program.MinScore < 0 || program.MinScore > 100 {
		return errors.New("minScore must be between 0 and 100")
	}

	program.ID = primitive.NewObjectID()
	if _, err := DB.ProgramCollection.InsertOne(ctx, program); err != nil {
		return fmt.Errorf("insert program failed: %w", err)
	}

	log.Println("✅ Program created:", program.ID.Hex())
	return nil
}

// ✅ 4. แก้ไขหลักสูตร
func UpdateProgram(id primitive.ObjectID, program *models.Program) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if program.MinScore < 0 || program.MinScore > 100 {
		return errors.New("minScore must be between 0 and 100")
	}

	update := bson.M{"$set": bson.M{
		"name":     program.Name,
		"category": program.Category,
		"minScore": program.MinScore,
		"seats":    program.Seats,
	}}

	result, err := DB.ProgramCollection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrProgramNotFound
	}
	return nil
}

// ✅ 5. ลบหลักสูตรออกจาก catalog
func DeleteProgram(id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := DB.ProgramCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrProgramNotFound
	}
	return nil
}
