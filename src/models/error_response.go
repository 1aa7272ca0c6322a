package models

// ErrorResponse โครงสร้างมาตรฐานสำหรับการส่ง Error
type ErrorResponse struct {
	Status  int    `json:"status"`          // HTTP Status Code
	Message string `json:"message"`         // รายละเอียดของ Error
	Kind    string `json:"kind,omitempty"`  // ชนิดของ error เช่น not_found, conflict
	Field   string `json:"field,omitempty"` // ฟิลด์ที่ validate ไม่ผ่าน (ถ้ามี)
}
