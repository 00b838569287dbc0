package dto

import (
	"github.com/google/uuid"
)

type CreatePointEntryRequest struct {
	StudentID uuid.UUID  `json:"point_entry_student_id" validate:"required"`
	Date      string     `json:"point_entry_date" validate:"required,datetime=2006-01-02"`
	Type      string     `json:"point_entry_type" validate:"required"`
	Points    int        `json:"point_entry_points" validate:"required"`
	Reason    string     `json:"point_entry_reason" validate:"omitempty,max=500"`
	TeacherID *uuid.UUID `json:"point_entry_teacher_id" validate:"omitempty"`
}
