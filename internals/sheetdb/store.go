// file: internals/sheetdb/store.go
package sheetdb

import (
	"context"
	"strings"
)

// Record: satu baris data sheet, key mengikuti header di baris pertama.
// Sel kosong selalu "" (tidak pernah nil).
type Record map[string]string

// Store: kontrak penyimpanan rows-as-records di atas spreadsheet.
//
// Posisi memakai penomoran sheet asli (1-based): baris 1 = header,
// baris data mulai 2. DeleteAt menggeser semua baris setelahnya naik satu,
// jadi posisi hasil ReadAll lama tidak boleh dipercaya setelah ada tulisan.
type Store interface {
	// ReadAll membaca seluruh tabel; baris pertama jadi skema, sisanya Record.
	ReadAll(ctx context.Context, table string) ([]Record, error)

	// Append memetakan field record ke urutan header tabel (case-insensitive);
	// header tanpa pasangan ditulis "". Baris masuk di ekor tabel.
	Append(ctx context.Context, table string, rec Record) error

	// UpdateAt menimpa SATU baris penuh pada posisi 1-based. Tidak ada partial
	// update: field yang tidak dikirim jadi "".
	UpdateAt(ctx context.Context, table string, pos int, rec Record) error

	// DeleteAt menghapus fisik satu baris pada posisi 1-based.
	DeleteAt(ctx context.Context, table string, pos int) error
}

// DataRowPos: posisi sheet untuk baris data ke-i hasil ReadAll (i mulai 0).
func DataRowPos(i int) int { return i + 2 }

// mapToHeaders menyusun nilai record mengikuti urutan header tabel,
// pencocokan key case-insensitive; header yang tidak dikirim jadi "".
func mapToHeaders(headers []string, rec Record) []string {
	lower := make(map[string]string, len(rec))
	for k, v := range rec {
		lower[strings.ToLower(strings.TrimSpace(k))] = v
	}
	out := make([]string, len(headers))
	for i, h := range headers {
		out[i] = lower[strings.ToLower(strings.TrimSpace(h))]
	}
	return out
}
