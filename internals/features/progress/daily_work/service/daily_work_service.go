// file: internals/features/progress/daily_work/service/daily_work_service.go
package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"tahfidzku_backend/internals/constants"
	"tahfidzku_backend/internals/features/progress/daily_work/dto"
	"tahfidzku_backend/internals/features/progress/daily_work/model"
	helper "tahfidzku_backend/internals/helpers"
)

const (
	ModeMerge   = "merge"
	ModeReplace = "replace"
)

// ErrValidation menandai error isian (bukan error DB) supaya controller
// bisa membalas 400, bukan 500.
var ErrValidation = errors.New("validasi isian gagal")

// ValidateFields memeriksa isian satu santri SEBELUM ada yang ditulis.
// Dipakai upsert tunggal maupun pre-check batch quick-entry.
func ValidateFields(f dto.DailyWorkFields) error {
	if !helper.ValidatePageInput(f.RecitationPages) {
		return fmt.Errorf("%w: format halaman hafalan tidak valid", ErrValidation)
	}
	if !helper.ValidatePageInput(f.ReviewPages) {
		return fmt.Errorf("%w: format halaman muraja'ah tidak valid", ErrValidation)
	}
	if helper.ExpandPageRanges(f.RecitationPages) != "" && f.RecitationGrade == nil {
		return fmt.Errorf("%w: halaman hafalan diisi tapi nilai kosong", ErrValidation)
	}
	if helper.ExpandPageRanges(f.ReviewPages) != "" && f.ReviewGrade == nil {
		return fmt.Errorf("%w: halaman muraja'ah diisi tapi nilai kosong", ErrValidation)
	}
	for _, g := range []*string{f.RecitationGrade, f.ReviewGrade, f.HadithGrade} {
		if g != nil && !constants.IsValidGrade(*g) {
			return fmt.Errorf("%w: nilai %q tidak dikenal", ErrValidation, *g)
		}
	}
	if f.BehaviorGrade != nil && !constants.IsValidBehaviorGrade(*f.BehaviorGrade) {
		return fmt.Errorf("%w: nilai adab %q tidak dikenal", ErrValidation, *f.BehaviorGrade)
	}
	return nil
}

// IsEmpty true bila baris quick-entry tidak menyentuh apa pun (di-skip).
func IsEmpty(f dto.DailyWorkFields) bool {
	return f.RecitationCount == 0 && f.RecitationPages == "" && f.RecitationGrade == nil &&
		f.ReviewCount == 0 && f.ReviewPages == "" && f.ReviewGrade == nil &&
		f.HadithCount == 0 && f.HadithGrade == nil &&
		f.BehaviorGrade == nil && f.Notes == nil && f.BonusPoints == 0
}

// UpsertDailyWork menulis setoran satu (santri, tanggal) secara idempoten.
// merge: jumlah dijumlahkan, daftar halaman digabung tanpa duplikat,
// nilai baru (bila diisi) menang. replace: baris lama ditimpa penuh.
func UpsertDailyWork(db *gorm.DB, studentID uuid.UUID, date datatypes.Date, f dto.DailyWorkFields, mode string, teacherID *uuid.UUID) (*model.DailyWorkModel, error) {
	if err := ValidateFields(f); err != nil {
		return nil, err
	}
	if mode == "" {
		mode = ModeMerge
	}

	recPages := helper.ParsePageList(helper.ExpandPageRanges(f.RecitationPages))
	revPages := helper.ParsePageList(helper.ExpandPageRanges(f.ReviewPages))

	var row model.DailyWorkModel
	err := db.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Where("daily_work_student_id = ? AND daily_work_date = ?", studentID, date).
			First(&row).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			row = model.DailyWorkModel{
				DailyWorkStudentID:       studentID,
				DailyWorkDate:            date,
				DailyWorkRecitationCount: f.RecitationCount,
				DailyWorkRecitationPages: recPages,
				DailyWorkRecitationGrade: f.RecitationGrade,
				DailyWorkReviewCount:     f.ReviewCount,
				DailyWorkReviewPages:     revPages,
				DailyWorkReviewGrade:     f.ReviewGrade,
				DailyWorkHadithCount:     f.HadithCount,
				DailyWorkHadithGrade:     f.HadithGrade,
				DailyWorkBehaviorGrade:   f.BehaviorGrade,
				DailyWorkNotes:           f.Notes,
				DailyWorkBonusPoints:     f.BonusPoints,
				DailyWorkTeacherID:       teacherID,
			}
			return tx.Create(&row).Error
		case err != nil:
			return err
		}

		if mode == ModeReplace {
			row.DailyWorkRecitationCount = f.RecitationCount
			row.DailyWorkRecitationPages = recPages
			row.DailyWorkRecitationGrade = f.RecitationGrade
			row.DailyWorkReviewCount = f.ReviewCount
			row.DailyWorkReviewPages = revPages
			row.DailyWorkReviewGrade = f.ReviewGrade
			row.DailyWorkHadithCount = f.HadithCount
			row.DailyWorkHadithGrade = f.HadithGrade
			row.DailyWorkBehaviorGrade = f.BehaviorGrade
			row.DailyWorkNotes = f.Notes
			row.DailyWorkBonusPoints = f.BonusPoints
		} else {
			row.DailyWorkRecitationCount += f.RecitationCount
			row.DailyWorkRecitationPages = helper.UnionPageLists(row.DailyWorkRecitationPages, recPages)
			row.DailyWorkReviewCount += f.ReviewCount
			row.DailyWorkReviewPages = helper.UnionPageLists(row.DailyWorkReviewPages, revPages)
			row.DailyWorkHadithCount += f.HadithCount
			row.DailyWorkBonusPoints += f.BonusPoints
			if f.RecitationGrade != nil {
				row.DailyWorkRecitationGrade = f.RecitationGrade
			}
			if f.ReviewGrade != nil {
				row.DailyWorkReviewGrade = f.ReviewGrade
			}
			if f.HadithGrade != nil {
				row.DailyWorkHadithGrade = f.HadithGrade
			}
			if f.BehaviorGrade != nil {
				row.DailyWorkBehaviorGrade = f.BehaviorGrade
			}
			if f.Notes != nil {
				row.DailyWorkNotes = f.Notes
			}
		}
		if teacherID != nil {
			row.DailyWorkTeacherID = teacherID
		}
		return tx.Save(&row).Error
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}
