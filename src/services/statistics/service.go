package statistics

import (
	DB "Backend-AdmitHub/src/database"
	"Backend-AdmitHub/src/models"
	"context"
	"encoding/json"
	"log"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

const (
	statisticsCacheKey = "admithub:statistics"
	statisticsCacheTTL = 60 * time.Second
)

var allBuckets = []models.StatusBucket{
	models.BucketPending,
	models.BucketUnderReview,
	models.BucketApproved,
	models.BucketRejected,
}

// BucketFor จัดใบสมัครหนึ่งใบเข้ากลุ่มสถานะเดียวเสมอ (ผลรวมทุกกลุ่ม = total)
func BucketFor(app *models.Application) models.StatusBucket {
	switch app.FinalStatus.Status {
	case models.StatusApproved:
		return models.BucketApproved
	case models.StatusRejected:
		return models.BucketRejected
	}

	switch app.Stage {
	case models.StageUnderReview, models.StageInterview, models.StageFinalDecision:
		return models.BucketUnderReview
	}
	return models.BucketPending
}

// BuildSnapshot นับจำนวนและเปอร์เซ็นต์รายกลุ่ม (pure — ไม่แก้ไข input)
// total = 0 ได้เปอร์เซ็นต์ 0 ทุกกลุ่ม ไม่มี division by zero
func BuildSnapshot(apps []models.Application) *models.StatisticsSnapshot {
	snapshot := &models.StatisticsSnapshot{
		Total:       len(apps),
		Counts:      map[models.StatusBucket]int{},
		Percentages: map[models.StatusBucket]float64{},
	}
	for _, bucket := range allBuckets {
		snapshot.Counts[bucket] = 0
		snapshot.Percentages[bucket] = 0
	}

	for i := range apps {
		snapshot.Counts[BucketFor(&apps[i])]++
	}

	if snapshot.Total > 0 {
		for bucket, count := range snapshot.Counts {
			snapshot.Percentages[bucket] = float64(count) / float64(snapshot.Total) * 100
		}
	}

	return snapshot
}

// BuildMonthlyTrend นับจำนวนยื่น/อนุมัติ รายเดือนจาก submittedAt (เรียงเดือนจากเก่าไปใหม่)
func BuildMonthlyTrend(apps []models.Application) []models.MonthlyTrendPoint {
	byMonth := map[string]*models.MonthlyTrendPoint{}

	for i := range apps {
		month := apps[i].SubmittedAt.Format("2006-01")
		point, ok := byMonth[month]
		if !ok {
			point = &models.MonthlyTrendPoint{Month: month}
			byMonth[month] = point
		}
		point.Submitted++
		if apps[i].FinalStatus.Status == models.StatusApproved {
			point.Approved++
		}
	}

	months := make([]string, 0, len(byMonth))
	for month := range byMonth {
		months = append(months, month)
	}
	sort.Strings(months)

	trend := make([]models.MonthlyTrendPoint, 0, len(months))
	for _, month := range months {
		trend = append(trend, *byMonth[month])
	}
	return trend
}

// ✅ 1. สถิติรวมสำหรับ dashboard (cache ใน Redis 60 วินาที)
func GetAdmissionStatistics() (*models.StatisticsSnapshot, error) {
	// ลองอ่านจาก cache ก่อน
	if DB.RedisClient != nil {
		cached, err := DB.RedisClient.Get(DB.RedisCtx, statisticsCacheKey).Result()
		if err == nil {
			var snapshot models.StatisticsSnapshot
			if err := json.Unmarshal([]byte(cached), &snapshot); err == nil {
				return &snapshot, nil
			}
		}
	}

	apps, err := fetchAllApplications()
	if err != nil {
		return nil, err
	}
	snapshot := BuildSnapshot(apps)

	if DB.RedisClient != nil {
		if data, err := json.Marshal(snapshot); err == nil {
			if err := DB.RedisClient.Set(DB.RedisCtx, statisticsCacheKey, data, statisticsCacheTTL).Err(); err != nil {
				log.Println("⚠️ Failed to cache statistics:", err)
			}
		}
	}

	return snapshot, nil
}

// ✅ 2. แนวโน้มรายเดือนสำหรับหน้า analytics
func GetAdmissionAnalytics() ([]models.MonthlyTrendPoint, error) {
	apps, err := fetchAllApplications()
	if err != nil {
		return nil, err
	}
	return BuildMonthlyTrend(apps), nil
}

// RefreshStatisticsCache คำนวณสถิติใหม่และเขียนทับ cache (เรียกจาก background job)
func RefreshStatisticsCache() error {
	if DB.RedisClient != nil {
		if err := DB.RedisClient.Del(DB.RedisCtx, statisticsCacheKey).Err(); err != nil {
			log.Println("⚠️ Failed to invalidate statistics cache:", err)
		}
	}
	_, err := GetAdmissionStatistics()
	return err
}

func fetchAllApplications() ([]models.Application, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := DB.ApplicationCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var apps []models.Application
	if err := cursor.All(ctx, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}
