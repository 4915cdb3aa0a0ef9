// file: internals/helpers/cell.go
package helper

import "strings"

// Cell mengambil nilai field dari satu record sheet secara case-insensitive.
// Header di spreadsheet diketik manual sehingga kapitalisasinya tidak konsisten
// ("Tanggal Lahir" vs "TANGGAL LAHIR"); field yang tidak ada mengembalikan ""
// tanpa error.
func Cell(rec map[string]string, field string) string {
	if rec == nil {
		return ""
	}
	if v, ok := rec[field]; ok {
		return v
	}
	for k, v := range rec {
		if strings.EqualFold(k, field) {
			return v
		}
	}
	return ""
}

// CellTrim: Cell + TrimSpace, untuk field yang dibandingkan sebagai identitas.
func CellTrim(rec map[string]string, field string) string {
	return strings.TrimSpace(Cell(rec, field))
}
