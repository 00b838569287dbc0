package constants

// ==========================
// 🎓 Nilai bacaan (tasmi'/muraja'ah/hadits/ujian)
// Vocab tertutup, dipakai lintas fitur. "إعادة" = sentinel ulang:
// halaman dengan nilai ini TIDAK dihitung ke total halaman manapun.
// ==========================
const (
	GradeMumtaz        = "ممتاز"
	GradeMumtazMinus   = "ممتاز-"
	GradeJayyidJiddanP = "جيد جداً+"
	GradeJayyidJiddan  = "جيد جداً"
	GradeJayyidJiddanM = "جيد جداً-"
	GradeJayyidPlus    = "جيد+"
	GradeJayyid        = "جيد"
	GradeMaqbulPlus    = "مقبول+"
	GradeMaqbul        = "مقبول"
	GradeIadah         = "إعادة" // ulang — tidak masuk hitungan progres
)

// Skor numerik per nilai (dipakai ujian & rekap)
var GradeScores = map[string]int{
	GradeMumtaz:        100,
	GradeMumtazMinus:   95,
	GradeJayyidJiddanP: 90,
	GradeJayyidJiddan:  85,
	GradeJayyidJiddanM: 80,
	GradeJayyidPlus:    75,
	GradeJayyid:        70,
	GradeMaqbulPlus:    65,
	GradeMaqbul:        60,
	GradeIadah:         0,
}

func IsValidGrade(g string) bool {
	_, ok := GradeScores[g]
	return ok
}

// ==========================
// 🧒 Nilai adab/perilaku (skala 4, terpisah dari nilai bacaan)
// ==========================
var BehaviorGradeValues = map[string]int{
	GradeMumtaz:       4,
	GradeJayyidJiddan: 3,
	GradeJayyid:       2,
	GradeMaqbul:       1,
}

const BehaviorUnspecified = "غير محدد"

func IsValidBehaviorGrade(g string) bool {
	_, ok := BehaviorGradeValues[g]
	return ok
}

// BehaviorLabelFromAverage memetakan rata-rata numerik kembali ke label.
func BehaviorLabelFromAverage(avg float64) string {
	switch {
	case avg >= 3.5:
		return GradeMumtaz
	case avg >= 2.5:
		return GradeJayyidJiddan
	case avg >= 1.5:
		return GradeJayyid
	case avg >= 0.5:
		return GradeMaqbul
	default:
		return BehaviorUnspecified
	}
}

// ==========================
// 📖 Jenjang santri
// ==========================
const (
	LevelTamhidi = "تمهيدي" // pemula (per baris)
	LevelTilawah = "تلاوة"  // jalur tilawah
	LevelHafizh  = "حافظ"   // jalur hafalan
)

var AllLevels = []string{LevelTamhidi, LevelTilawah, LevelHafizh}

func IsValidLevel(l string) bool {
	for _, v := range AllLevels {
		if v == l {
			return true
		}
	}
	return false
}

// ==========================
// ⭐ Jenis poin (ledger append-only, saldo selalu dihitung dari SUM)
// ==========================
const (
	PointTypeEnthusiasm = "enthusiasm"
	PointTypeGeneral    = "general"
	PointTypeBonus      = "bonus"
	PointTypePenalty    = "penalty"
	PointTypeRecitation = "recitation"
	PointTypeReview     = "review"
	PointTypeHadith     = "hadith"
	PointTypeBehavior   = "behavior"
)

var AllPointTypes = []string{
	PointTypeEnthusiasm,
	PointTypeGeneral,
	PointTypeBonus,
	PointTypePenalty,
	PointTypeRecitation,
	PointTypeReview,
	PointTypeHadith,
	PointTypeBehavior,
}

func IsValidPointType(t string) bool {
	for _, v := range AllPointTypes {
		if v == t {
			return true
		}
	}
	return false
}

// ==========================
// 🗓 Status kehadiran
// ==========================
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
)

// Label "halaman terakhir" saat santri belum punya data sama sekali
const LastPageNone = "لا يوجد"
