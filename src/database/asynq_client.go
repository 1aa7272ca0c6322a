package database

import (
	"log"

	"github.com/hibiken/asynq"
)

var AsynqClient *asynq.Client

// InitAsynq สร้าง client สำหรับ enqueue งาน background (แจ้งผลการพิจารณา, refresh สถิติ)
// ข้ามถ้าไม่มี Redis — ระบบหลักยังทำงานได้ แค่ไม่มีงาน background
func InitAsynq() {
	if RedisClient == nil || RedisURI == "" {
		log.Println("⚠️ Redis not available. Background tasks disabled.")
		return
	}

	AsynqClient = asynq.NewClient(asynq.RedisClientOpt{Addr: RedisURI})
	log.Println("✅ Asynq Client initialized successfully")
}
