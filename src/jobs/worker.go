package jobs

import (
	"Backend-AdmitHub/src/database"
	"Backend-AdmitHub/src/services/statistics"
	"context"
	"encoding/json"
	"log"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleDecisionNotifyTask แจ้งผลการตัดสินให้ผู้สมัคร
// การส่งจริง (email/SMS) เป็นหน้าที่ของระบบภายนอก — ที่นี่แค่ resolve ข้อมูลและ log
func HandleDecisionNotifyTask(ctx context.Context, t *asynq.Task) error {
	log.Println("🎯 Start decision notify handler")

	var payload DecisionPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("❌ Payload decode error:", err)
		return err
	}

	id, err := primitive.ObjectIDFromHex(payload.ApplicationID)
	if err != nil {
		log.Println("❌ Invalid application id in payload:", payload.ApplicationID)
		return err
	}

	// ✅ ตรวจสอบว่าใบสมัครยังมีอยู่ไหม
	var app bson.M
	err = database.ApplicationCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&app)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			log.Println("⚠️ Application not found. Possibly deleted. Skipping task:", id.Hex())
			return nil // ✅ ไม่ถือว่า error
		}
		log.Println("❌ Failed to find application:", err)
		return err
	}

	log.Printf("✅ Decision notification dispatched: application=%s decision=%s", id.Hex(), payload.Decision)
	return nil
}

// HandleStatsRefreshTask คำนวณสถิติ dashboard ใหม่แล้วอัปเดต cache
func HandleStatsRefreshTask(ctx context.Context, t *asynq.Task) error {
	if err := statistics.RefreshStatisticsCache(); err != nil {
		log.Println("❌ Failed to refresh statistics cache:", err)
		return err
	}
	log.Println("✅ Statistics cache refreshed")
	return nil
}

// StartWorker รัน asynq worker ใน goroutine (ข้ามถ้าไม่มี Redis)
func StartWorker() {
	if database.RedisURI == "" {
		log.Println("⚠️ Redis not available. Asynq worker will not start.")
		return
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: database.RedisURI},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeDecisionNotify, HandleDecisionNotifyTask)
	mux.HandleFunc(TypeStatsRefresh, HandleStatsRefreshTask)

	go func() {
		if err := srv.Run(mux); err != nil {
			log.Println("❌ Asynq worker stopped:", err)
		}
	}()

	log.Println("✅ Asynq worker started")
}
