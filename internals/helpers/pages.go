// file: internals/helpers/pages.go
package helper

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/lib/pq"
)

// Input halaman dari form guru: angka, koma, spasi, dan strip range saja.
var (
	pageInputRe = regexp.MustCompile(`^[0-9,\s\-]*$`)
	pageRangeRe = regexp.MustCompile(`(\d+)\s*-\s*(\d+)`)
	digitsRe    = regexp.MustCompile(`^\d+$`)
)

// ValidatePageInput menolak karakter selain angka/koma/spasi/strip.
// Dipanggil sebelum ExpandPageRanges; pesan error per santri disusun caller.
func ValidatePageInput(raw string) bool {
	return pageInputRe.MatchString(raw)
}

// ExpandPageRanges mengubah campuran literal & range ("10-15,201,203")
// menjadi daftar halaman lengkap ("10,11,12,13,14,15,201,203").
// Range terbalik (mis. "10-5") dibuang diam-diam: tidak di-expand
// dan tidak disimpan sebagai literal.
func ExpandPageRanges(raw string) string {
	var expanded []string

	rest := pageRangeRe.ReplaceAllStringFunc(raw, func(m string) string {
		sub := pageRangeRe.FindStringSubmatch(m)
		start, err1 := strconv.Atoi(sub[1])
		end, err2 := strconv.Atoi(sub[2])
		if err1 == nil && err2 == nil && start <= end {
			for i := start; i <= end; i++ {
				expanded = append(expanded, strconv.Itoa(i))
			}
		}
		return "" // range (valid maupun terbalik) dihapus dari teks
	})

	out := expanded
	for _, tok := range strings.Split(rest, ",") {
		tok = strings.TrimSpace(tok)
		if digitsRe.MatchString(tok) {
			out = append(out, tok)
		}
	}
	return strings.Join(out, ",")
}

// ParsePageList mengubah daftar "1,2,3" menjadi array int untuk kolom int[].
func ParsePageList(list string) pq.Int64Array {
	var pages pq.Int64Array
	for _, tok := range strings.Split(list, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		n, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			continue
		}
		pages = append(pages, n)
	}
	return pages
}

// JoinPageList kebalikan ParsePageList (untuk response DTO).
func JoinPageList(pages []int64) string {
	if len(pages) == 0 {
		return ""
	}
	toks := make([]string, 0, len(pages))
	for _, p := range pages {
		toks = append(toks, strconv.FormatInt(p, 10))
	}
	return strings.Join(toks, ",")
}

// UnionPageLists menggabungkan dua daftar halaman tanpa duplikat,
// mempertahankan urutan kemunculan (dipakai merge daily work).
func UnionPageLists(a, b []int64) pq.Int64Array {
	seen := make(map[int64]bool, len(a)+len(b))
	var out pq.Int64Array
	for _, p := range a {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	for _, p := range b {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}
