// file: internals/features/progress/exams/dto/exam_entry_dto.go
package dto

type CreateExamEntryRequest struct {
	StudentID string `json:"student_id" validate:"required,uuid"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Attempt   int    `json:"attempt" validate:"omitempty,min=1"`
	Stage     string `json:"stage" validate:"required"`

	MemorizationScore *float64 `json:"memorization_score,omitempty" validate:"omitempty,min=0,max=100"`
	TajwidScore       *float64 `json:"tajwid_score,omitempty" validate:"omitempty,min=0,max=100"`
	FluencyScore      *float64 `json:"fluency_score,omitempty" validate:"omitempty,min=0,max=100"`

	Grade string  `json:"grade"`
	Notes *string `json:"notes,omitempty"`
}

type PatchExamEntryRequest struct {
	Date    *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Attempt *int    `json:"attempt" validate:"omitempty,min=1"`
	Stage   *string `json:"stage"`

	MemorizationScore *float64 `json:"memorization_score" validate:"omitempty,min=0,max=100"`
	TajwidScore       *float64 `json:"tajwid_score" validate:"omitempty,min=0,max=100"`
	FluencyScore      *float64 `json:"fluency_score" validate:"omitempty,min=0,max=100"`

	Grade *string `json:"grade"`
	Notes *string `json:"notes"`
}
