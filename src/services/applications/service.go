package applications

import (
	DB "Backend-AdmitHub/src/database"
	"Backend-AdmitHub/src/jobs"
	"Backend-AdmitHub/src/models"
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// แปลง stage เป็นชื่อฟิลด์ bson ของ record
var stageFields = map[models.ApplicationStage]string{
	models.StageSubmitted:            "submitStatus",
	models.StageDocumentVerification: "documentStatus",
	models.StageUnderReview:          "reviewStatus",
	models.StageInterview:            "interviewStatus",
	models.StageFinalDecision:        "finalStatus",
}

// ✅ 1. สร้างใบสมัครใหม่ (เริ่มที่ submitted/completed ขั้นตอนอื่น pending)
func CreateApplication(applicantID, courseID primitive.ObjectID) (*models.Application, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// ตรวจว่าหลักสูตรที่สมัครมีอยู่จริง
	count, err := DB.ProgramCollection.CountDocuments(ctx, bson.M{"_id": courseID})
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrProgramNotFound
	}

	app := NewApplication(applicantID, courseID)
	if _, err := DB.ApplicationCollection.InsertOne(ctx, app); err != nil {
		return nil, fmt.Errorf("insert application failed: %w", err)
	}

	log.Println("✅ Application created:", app.ID.Hex())
	return app, nil
}

// ✅ 2. ดึงใบสมัครทั้งหมดแบบแบ่งหน้า (filter ตาม stage ได้)
func GetAllApplications(params models.PaginationParams, stageFilter []string) ([]models.Application, int64, int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	params.Normalize()

	filter := bson.M{}
	if len(stageFilter) > 0 {
		filter["stage"] = bson.M{"$in": stageFilter}
	}
	// ถ้า search เป็น ObjectID ให้ค้นตาม applicantId
	if params.Search != "" {
		if applicantID, err := primitive.ObjectIDFromHex(params.Search); err == nil {
			filter["applicantId"] = applicantID
		}
	}

	total, err := DB.ApplicationCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, 0, err
	}

	findOptions := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(params.GetSortOrder())

	cursor, err := DB.ApplicationCollection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, 0, err
	}
	defer cursor.Close(ctx)

	var apps []models.Application
	if err := cursor.All(ctx, &apps); err != nil {
		return nil, 0, 0, err
	}

	totalPages := int((total + int64(params.Limit) - 1) / int64(params.Limit))
	return apps, total, totalPages, nil
}

// ✅ 3. ดึงใบสมัครตาม ID พร้อมเปอร์เซ็นต์ความคืบหน้า
func GetApplicationByID(id primitive.ObjectID) (*models.ApplicationDto, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var app models.Application
	if err := DB.ApplicationCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&app); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}

	return &models.ApplicationDto{Application: app, Progress: Progress(&app)}, nil
}

// ✅ 4. ดึงใบสมัครทั้งหมดของผู้สมัครคนหนึ่ง
func GetApplicationsByApplicant(applicantID primitive.ObjectID) ([]models.ApplicationDto, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := DB.ApplicationCollection.Find(ctx, bson.M{"applicantId": applicantID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	result := []models.ApplicationDto{}
	for cursor.Next(ctx) {
		var app models.Application
		if err := cursor.Decode(&app); err != nil {
			continue
		}
		result = append(result, models.ApplicationDto{Application: app, Progress: Progress(&app)})
	}
	return result, nil
}

// ✅ 5. ปรับสถานะใบสมัครหนึ่งใบ พร้อม optimistic precondition
//   - expected = nil คือไม่ได้ส่งสถานะที่เคยเห็นมา ใช้ค่าที่อ่านได้ตอนนี้เป็น precondition แทน
//     (ยังกันการเขียนทับระหว่าง read กับ write ได้)
func AdvanceApplication(id primitive.ObjectID, target models.ApplicationStage, status models.StageStatus, remarks string, expected *StagePrecondition) (*models.Application, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// 1) อ่านสถานะปัจจุบัน
	var app models.Application
	if err := DB.ApplicationCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&app); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}

	// 2) เทียบกับสถานะที่ caller เคยเห็น
	if err := CheckPrecondition(&app, expected); err != nil {
		return nil, err
	}

	storedStage := app.Stage
	storedStatus := StageRecordOf(&app, storedStage).Status

	// 3) apply transition บน struct (pure) — ผิดกติกา state machine จะ error ตรงนี้
	if err := Advance(&app, target, status, remarks); err != nil {
		return nil, err
	}

	// 4) เขียนกลับ โดย filter ต้องเจอสถานะเดิมที่เพิ่งอ่านมา (optimistic check ที่ตัวฐานข้อมูล)
	filter := bson.M{
		"_id":   id,
		"stage": storedStage,
		stageFields[storedStage] + ".status": storedStatus,
	}
	update := bson.M{"$set": bson.M{
		"stage":           app.Stage,
		"submitStatus":    app.SubmitStatus,
		"documentStatus":  app.DocumentStatus,
		"reviewStatus":    app.ReviewStatus,
		"interviewStatus": app.InterviewStatus,
		"finalStatus":     app.FinalStatus,
	}}

	result, err := DB.ApplicationCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, fmt.Errorf("update application failed: %w", err)
	}

	// มีคนอื่นแก้ไประหว่าง read กับ write → แยกว่าเป็น not found / closed / conflict
	if result.MatchedCount == 0 {
		var current models.Application
		if err := DB.ApplicationCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&current); err != nil {
			if err == mongo.ErrNoDocuments {
				return nil, ErrApplicationNotFound
			}
			return nil, err
		}
		if IsClosed(&current) {
			return nil, ErrApplicationClosed
		}
		return nil, ErrConflict
	}

	// 5) ตัดสินผลสุดท้ายแล้ว → ยิง notification task (fire-and-forget)
	if target == models.StageFinalDecision &&
		(status == models.StatusApproved || status == models.StatusRejected) {
		enqueueDecisionNotify(app.ID.Hex(), string(status))
	}

	return &app, nil
}

// enqueueDecisionNotify ส่ง task แจ้งผลให้ worker — ล้มเหลวแค่ log ไม่กระทบ transition
func enqueueDecisionNotify(applicationID, decision string) {
	if DB.AsynqClient == nil {
		return
	}
	task, err := jobs.NewDecisionNotifyTask(applicationID, decision)
	if err != nil {
		log.Println("❌ Failed to create decision notify task:", err)
		return
	}
	if _, err := DB.AsynqClient.Enqueue(task); err != nil {
		log.Println("❌ Failed to enqueue decision notify task:", err)
		return
	}
	log.Println("✅ Decision notify task enqueued:", applicationID)
}
