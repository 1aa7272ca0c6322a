package applications

import "errors"

// error ทั้งหมดเป็น local, synchronous, non-fatal — ส่งกลับ caller เสมอ ไม่ทำให้ process ตาย
var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrProgramNotFound     = errors.New("program not found")
	ErrInvalidTransition   = errors.New("invalid stage transition")
	ErrApplicationClosed   = errors.New("application already closed")
	ErrConflict            = errors.New("application was modified by another request")
)

// ErrorKind แปลง error เป็นชนิดสั้นๆ สำหรับ per-item result ของ bulk operation
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrApplicationNotFound), errors.Is(err, ErrProgramNotFound):
		return "not_found"
	case errors.Is(err, ErrApplicationClosed):
		return "application_closed"
	case errors.Is(err, ErrInvalidTransition):
		return "invalid_transition"
	case errors.Is(err, ErrConflict):
		return "conflict"
	default:
		return "internal"
	}
}
