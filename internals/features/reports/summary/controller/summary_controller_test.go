// file: internals/features/reports/summary/controller/summary_controller_test.go
package controller

import (
	"testing"
	"time"
)

func TestShiftToClassDay(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"kamis tetap", "2026-03-05", "2026-03-05"},
		{"jumat mundur ke kamis", "2026-03-06", "2026-03-05"},
		{"sabtu mundur ke kamis", "2026-03-07", "2026-03-05"},
		{"ahad tetap", "2026-03-08", "2026-03-08"},
		{"senin tetap", "2026-03-09", "2026-03-09"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := time.Parse("2006-01-02", tt.in)
			if err != nil {
				t.Fatal(err)
			}
			got := shiftToClassDay(in).Format("2006-01-02")
			if got != tt.want {
				t.Errorf("shiftToClassDay(%s) = %s, mau %s", tt.in, got, tt.want)
			}
		})
	}
}
