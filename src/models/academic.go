package models

// AcademicProfile ข้อมูลคะแนนของผู้สมัครที่ใช้คำนวณ eligibility
// คะแนนวิชาการอยู่ในช่วง 0-100, กิจกรรมเสริม 0-10
type AcademicProfile struct {
	TenthMarks      float64 `json:"tenthMarks" bson:"tenthMarks" validate:"min=0,max=100" example:"90"`
	TwelfthMarks    float64 `json:"twelfthMarks" bson:"twelfthMarks" validate:"min=0,max=100" example:"85"`
	EntranceScore   float64 `json:"entranceScore" bson:"entranceScore" validate:"min=0,max=100" example:"78"`
	Extracurricular float64 `json:"extracurricular" bson:"extracurricular" validate:"min=0,max=10" example:"6"`
	Category        string  `json:"category" bson:"category" validate:"oneof=general obc sc st" example:"general"`
}

// EligibilityTier ระดับ eligibility จากคะแนนรวม
type EligibilityTier string

const (
	TierNotEligible           EligibilityTier = "not_eligible"
	TierConditionallyEligible EligibilityTier = "conditionally_eligible"
	TierEligible              EligibilityTier = "eligible"
	TierHighlyEligible        EligibilityTier = "highly_eligible"
)

// ScoreBreakdown คะแนนถ่วงน้ำหนักรายองค์ประกอบ
type ScoreBreakdown struct {
	Tenth           float64 `json:"tenth" example:"18"`
	Twelfth         float64 `json:"twelfth" example:"25.5"`
	Entrance        float64 `json:"entrance" example:"31.2"`
	Extracurricular float64 `json:"extracurricular" example:"6"`
	CategoryBonus   float64 `json:"categoryBonus" example:"0"`
}

// EligibilityResult ผลการคำนวณ (derived — คำนวณใหม่ทุกครั้ง ไม่บันทึกแยก)
type EligibilityResult struct {
	Score     float64         `json:"score" example:"80.7"`
	Tier      EligibilityTier `json:"tier" example:"highly_eligible"`
	Breakdown ScoreBreakdown  `json:"breakdown"`
}

// IsEligible ทุก tier ยกเว้น not_eligible ถือว่าผ่านเกณฑ์สำหรับการแนะนำหลักสูตร
func (r *EligibilityResult) IsEligible() bool {
	return r.Tier != TierNotEligible
}
