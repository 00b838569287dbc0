// file: internals/features/progress/daily_work/dto/daily_work_dto.go
package dto

// Isian satu hari untuk satu santri. Halaman diterima sebagai string
// bebas ("5-7,10") dan di-expand oleh helper sebelum disimpan.
type DailyWorkFields struct {
	RecitationCount int     `json:"recitation_count" validate:"min=0"`
	RecitationPages string  `json:"recitation_pages"`
	RecitationGrade *string `json:"recitation_grade,omitempty"`

	ReviewCount int     `json:"review_count" validate:"min=0"`
	ReviewPages string  `json:"review_pages"`
	ReviewGrade *string `json:"review_grade,omitempty"`

	HadithCount int     `json:"hadith_count" validate:"min=0"`
	HadithGrade *string `json:"hadith_grade,omitempty"`

	BehaviorGrade *string `json:"behavior_grade,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	BonusPoints   int     `json:"bonus_points"`
}

type UpsertDailyWorkRequest struct {
	StudentID string `json:"student_id" validate:"required,uuid"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	// merge: jumlah dijumlahkan, halaman digabung, nilai baru menang.
	// replace: timpa seluruh isian hari itu.
	Mode string `json:"mode" validate:"omitempty,oneof=merge replace"`

	DailyWorkFields
}

// Baris quick-entry: nama ikut dikirim supaya error validasi bisa
// dilaporkan per santri tanpa lookup tambahan.
type QuickEntryRow struct {
	StudentID   string `json:"student_id" validate:"required,uuid"`
	StudentName string `json:"student_name"`

	DailyWorkFields
}

type BatchQuickEntryRequest struct {
	Date    string          `json:"date" validate:"required,datetime=2006-01-02"`
	Mode    string          `json:"mode" validate:"omitempty,oneof=merge replace"`
	Entries []QuickEntryRow `json:"entries" validate:"required,min=1,dive"`
}

type BatchQuickEntryResult struct {
	Saved   int `json:"saved"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
}

// Error validasi pra-simpan, dilaporkan per santri.
type QuickEntryValidationError struct {
	StudentName string `json:"student_name"`
	Message     string `json:"message"`
}
