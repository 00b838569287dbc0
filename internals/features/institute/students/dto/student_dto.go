package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateStudentRequest struct {
	Name          string     `json:"student_name" validate:"required,max=150"`
	Level         string     `json:"student_level" validate:"required"`
	CircleID      *uuid.UUID `json:"student_circle_id" validate:"omitempty"`
	GuardianPhone *string    `json:"student_guardian_phone" validate:"omitempty,max=30"`
	Notes         *string    `json:"student_notes" validate:"omitempty"`
}

type PatchStudentRequest struct {
	Name          *string    `json:"student_name" validate:"omitempty,max=150"`
	Level         *string    `json:"student_level" validate:"omitempty"`
	CircleID      *uuid.UUID `json:"student_circle_id" validate:"omitempty"`
	GuardianPhone *string    `json:"student_guardian_phone" validate:"omitempty,max=30"`
	Notes         *string    `json:"student_notes" validate:"omitempty"`
}

type StudentResponse struct {
	ID            uuid.UUID  `json:"student_id"`
	Name          string     `json:"student_name"`
	Level         string     `json:"student_level"`
	CircleID      *uuid.UUID `json:"student_circle_id,omitempty"`
	GuardianPhone *string    `json:"student_guardian_phone,omitempty"`
	Notes         *string    `json:"student_notes,omitempty"`
	IsActive      bool       `json:"student_is_active"`
	CreatedAt     time.Time  `json:"student_created_at"`
	UpdatedAt     time.Time  `json:"student_updated_at"`
}
