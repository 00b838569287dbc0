// file: internals/features/progress/beginner_recitations/dto/beginner_recitation_dto.go
package dto

type CreateBeginnerRecitationRequest struct {
	StudentID string  `json:"student_id" validate:"required,uuid"`
	Date      string  `json:"date" validate:"required,datetime=2006-01-02"`
	Page      int     `json:"page" validate:"required,min=1"`
	Lines     []int64 `json:"lines" validate:"required,min=1,dive,min=1,max=10"`
	Grade     string  `json:"grade" validate:"required"`
}
