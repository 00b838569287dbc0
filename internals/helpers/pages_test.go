package helper

import "testing"

func TestExpandPageRanges(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"range plus literal", "5-7,10", "5,6,7,10"},
		{"single page range", "9-9", "9"},
		{"inverted range dropped", "10-5", ""},
		{"mixed ranges and literals", "10-15,201,203", "10,11,12,13,14,15,201,203"},
		{"range with spaces", " 3 - 5 , 20", "3,4,5,20"},
		{"literals only", "1,2,3", "1,2,3"},
		{"empty input", "", ""},
		{"dangling comma", "7,", "7"},
		{"inverted range keeps literals", "10-5,42", "42"},
		{"two ranges", "1-2,8-9", "1,2,8,9"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExpandPageRanges(tc.in)
			if got != tc.want {
				t.Errorf("ExpandPageRanges(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestValidatePageInput(t *testing.T) {
	valid := []string{"", "1,2,3", "10-15, 20", " 7 "}
	for _, in := range valid {
		if !ValidatePageInput(in) {
			t.Errorf("ValidatePageInput(%q) = false, want true", in)
		}
	}

	invalid := []string{"1;2", "abc", "10-15a", "١٢"}
	for _, in := range invalid {
		if ValidatePageInput(in) {
			t.Errorf("ValidatePageInput(%q) = true, want false", in)
		}
	}
}

func TestParseAndJoinPageList(t *testing.T) {
	pages := ParsePageList("3, 5,7")
	if len(pages) != 3 || pages[0] != 3 || pages[1] != 5 || pages[2] != 7 {
		t.Fatalf("ParsePageList = %v, want [3 5 7]", pages)
	}
	if got := JoinPageList(pages); got != "3,5,7" {
		t.Errorf("JoinPageList = %q, want %q", got, "3,5,7")
	}
	if got := JoinPageList(nil); got != "" {
		t.Errorf("JoinPageList(nil) = %q, want empty", got)
	}
}

func TestUnionPageLists(t *testing.T) {
	got := UnionPageLists([]int64{1, 2, 3}, []int64{3, 4, 1, 5})
	want := []int64{1, 2, 3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("UnionPageLists = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("UnionPageLists = %v, want %v", got, want)
		}
	}
}
