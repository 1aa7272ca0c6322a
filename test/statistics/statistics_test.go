package statistics

import (
	"math/rand"
	"testing"
	"time"

	"Backend-AdmitHub/src/models"
	"Backend-AdmitHub/src/services/statistics"
	"Backend-AdmitHub/test"

	"github.com/stretchr/testify/assert"
)

func appWith(stage models.ApplicationStage, finalStatus models.StageStatus, submittedAt time.Time) models.Application {
	return models.Application{
		Stage:       stage,
		FinalStatus: models.StageRecord{Status: finalStatus},
		SubmittedAt: submittedAt,
	}
}

func TestStatisticsAggregator(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Statistics Aggregator Tests")
	defer suiteResult.PrintSummary()

	t.Run("TestBucketAssignment", func(t *testing.T) {
		timer := test.NewTestTimer("Bucket Assignment")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Bucket Assignment", Duration: duration, Passed: true})
		}()

		now := time.Now()
		testCases := []struct {
			name     string
			app      models.Application
			expected models.StatusBucket
		}{
			{"submitted is pending", appWith(models.StageSubmitted, models.StatusPending, now), models.BucketPending},
			{"document verification is pending", appWith(models.StageDocumentVerification, models.StatusPending, now), models.BucketPending},
			{"under review", appWith(models.StageUnderReview, models.StatusPending, now), models.BucketUnderReview},
			{"interview counts as under review", appWith(models.StageInterview, models.StatusPending, now), models.BucketUnderReview},
			{"final decision still open", appWith(models.StageFinalDecision, models.StatusPending, now), models.BucketUnderReview},
			{"approved", appWith(models.StageFinalDecision, models.StatusApproved, now), models.BucketApproved},
			{"rejected", appWith(models.StageFinalDecision, models.StatusRejected, now), models.BucketRejected},
		}

		for _, tc := range testCases {
			app := tc.app
			assert.Equal(t, tc.expected, statistics.BucketFor(&app), tc.name)
		}
	})

	t.Run("TestSnapshotCountsAndPercentages", func(t *testing.T) {
		timer := test.NewTestTimer("Snapshot Counts")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Snapshot Counts", Duration: duration, Passed: true})
		}()

		now := time.Now()
		apps := []models.Application{
			appWith(models.StageSubmitted, models.StatusPending, now),
			appWith(models.StageDocumentVerification, models.StatusPending, now),
			appWith(models.StageUnderReview, models.StatusPending, now),
			appWith(models.StageFinalDecision, models.StatusApproved, now),
		}

		snapshot := statistics.BuildSnapshot(apps)

		assert.Equal(t, 4, snapshot.Total)
		assert.Equal(t, 2, snapshot.Counts[models.BucketPending])
		assert.Equal(t, 1, snapshot.Counts[models.BucketUnderReview])
		assert.Equal(t, 1, snapshot.Counts[models.BucketApproved])
		assert.Equal(t, 0, snapshot.Counts[models.BucketRejected])

		assert.InDelta(t, 50, snapshot.Percentages[models.BucketPending], 0.001)
		assert.InDelta(t, 25, snapshot.Percentages[models.BucketUnderReview], 0.001)
		assert.InDelta(t, 25, snapshot.Percentages[models.BucketApproved], 0.001)
		assert.InDelta(t, 0, snapshot.Percentages[models.BucketRejected], 0.001)
	})

	t.Run("TestEmptySnapshotIsZeroSafe", func(t *testing.T) {
		timer := test.NewTestTimer("Empty Snapshot")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Empty Snapshot", Duration: duration, Passed: true})
		}()

		snapshot := statistics.BuildSnapshot([]models.Application{})

		assert.Equal(t, 0, snapshot.Total)
		// ทุกกลุ่มต้องมี key ครบ ไม่ใช่ map ว่าง
		assert.Len(t, snapshot.Counts, 4)
		assert.Len(t, snapshot.Percentages, 4)
		for bucket, pct := range snapshot.Percentages {
			assert.Zero(t, pct, string(bucket))
		}
	})

	t.Run("TestBucketsPartitionTotal", func(t *testing.T) {
		timer := test.NewTestTimer("Buckets Partition Total")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Buckets Partition Total", Duration: duration, Passed: true})
		}()

		stages := []models.ApplicationStage{
			models.StageSubmitted,
			models.StageDocumentVerification,
			models.StageUnderReview,
			models.StageInterview,
			models.StageFinalDecision,
		}
		finals := []models.StageStatus{models.StatusPending, models.StatusApproved, models.StatusRejected}

		rng := rand.New(rand.NewSource(7))
		apps := make([]models.Application, 500)
		for i := range apps {
			apps[i] = appWith(stages[rng.Intn(len(stages))], finals[rng.Intn(len(finals))], time.Now())
		}

		snapshot := statistics.BuildSnapshot(apps)

		sum := 0
		pctSum := 0.0
		for _, bucket := range []models.StatusBucket{models.BucketPending, models.BucketUnderReview, models.BucketApproved, models.BucketRejected} {
			sum += snapshot.Counts[bucket]
			pctSum += snapshot.Percentages[bucket]
		}
		assert.Equal(t, snapshot.Total, sum)
		assert.InDelta(t, 100, pctSum, 0.001)
	})

	t.Run("TestMonthlyTrendSortedByMonth", func(t *testing.T) {
		timer := test.NewTestTimer("Monthly Trend Sorted")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Monthly Trend Sorted", Duration: duration, Passed: true})
		}()

		jan := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
		mar := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
		feb := time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC)

		apps := []models.Application{
			appWith(models.StageFinalDecision, models.StatusApproved, mar),
			appWith(models.StageSubmitted, models.StatusPending, jan),
			appWith(models.StageFinalDecision, models.StatusRejected, feb),
			appWith(models.StageFinalDecision, models.StatusApproved, jan),
			appWith(models.StageUnderReview, models.StatusPending, jan),
		}

		trend := statistics.BuildMonthlyTrend(apps)

		assert.Len(t, trend, 3)
		assert.Equal(t, "2026-01", trend[0].Month)
		assert.Equal(t, "2026-02", trend[1].Month)
		assert.Equal(t, "2026-03", trend[2].Month)

		assert.Equal(t, 3, trend[0].Submitted)
		assert.Equal(t, 1, trend[0].Approved)
		assert.Equal(t, 1, trend[1].Submitted)
		assert.Equal(t, 0, trend[1].Approved)
		assert.Equal(t, 1, trend[2].Submitted)
		assert.Equal(t, 1, trend[2].Approved)
	})

	t.Run("TestMonthlyTrendEmptyInput", func(t *testing.T) {
		timer := test.NewTestTimer("Monthly Trend Empty")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Monthly Trend Empty", Duration: duration, Passed: true})
		}()

		trend := statistics.BuildMonthlyTrend(nil)
		assert.NotNil(t, trend)
		assert.Empty(t, trend)
	})
}
