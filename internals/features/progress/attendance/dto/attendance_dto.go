package dto

import "github.com/google/uuid"

type MarkAttendanceRequest struct {
	StudentID uuid.UUID `json:"attendance_student_id" validate:"required"`
	Date      string    `json:"attendance_date" validate:"required,datetime=2006-01-02"`
	Status    string    `json:"attendance_status" validate:"required,oneof=present absent"`
}

// Batch untuk satu halaqah sekali jalan (layar absensi roster).
type BatchMarkAttendanceRequest struct {
	Date    string                 `json:"attendance_date" validate:"required,datetime=2006-01-02"`
	Entries []BatchAttendanceEntry `json:"entries" validate:"required,min=1,dive"`
}

type BatchAttendanceEntry struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Status    string    `json:"status" validate:"required,oneof=present absent"`
}

type BatchMarkAttendanceResult struct {
	Saved  int `json:"saved"`
	Failed int `json:"failed"`
}
