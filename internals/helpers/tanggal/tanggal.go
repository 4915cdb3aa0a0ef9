// file: internals/helpers/tanggal/tanggal.go
package tanggal

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel dipakai saat tanggal lahir kosong atau tidak bisa diparse.
const Sentinel = "-"

// Layout utama yang dipakai spreadsheet.
const (
	LayoutTanggal   = "02/01/2006"
	LayoutTimestamp = "02/01/2006 15:04:05"
	LayoutISO       = "2006-01-02"
	LayoutPanjang   = "2 January 2006" // hasil substitusi bulan Indonesia
)

// Bulan Indonesia → Inggris. Substitusi string langsung sebelum parse,
// supaya "20 Maret 2010" bisa diparse parser standar.
var bulanIndo = map[string]string{
	"januari":   "January",
	"februari":  "February",
	"maret":     "March",
	"april":     "April",
	"mei":       "May",
	"juni":      "June",
	"juli":      "July",
	"agustus":   "August",
	"september": "September",
	"oktober":   "October",
	"november":  "November",
	"desember":  "December",
}

// Urutan tampilan dipakai FormatIndo.
var namaBulan = []string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

var ErrTidakValid = errors.New("tanggal tidak valid")

// gantiBulan: substitusi nama bulan Indonesia (case-insensitive).
func gantiBulan(s string) string {
	lower := strings.ToLower(s)
	for indo, eng := range bulanIndo {
		if idx := strings.Index(lower, indo); idx >= 0 {
			return s[:idx] + eng + s[idx+len(indo):]
		}
	}
	return s
}

// Parse menerima "dd/MM/yyyy", "yyyy-MM-dd", atau bentuk panjang
// ("20 Maret 2010" / "20 March 2010"). String kosong atau tidak dikenal
// mengembalikan ErrTidakValid, bukan panic.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrTidakValid
	}
	s = gantiBulan(s)
	for _, layout := range []string{LayoutTanggal, LayoutISO, LayoutPanjang, "02 January 2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrTidakValid
}

// ParseTimestamp menerima "dd/MM/yyyy HH:mm:ss"; fallback ke Parse biasa
// (timestamp lama kadang hanya tanggal). Gagal parse = zero time, dipakai
// sebagai "paling tua" saat sorting.
func ParseTimestamp(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(LayoutTimestamp, s); err == nil {
		return t
	}
	if t, err := Parse(s); err == nil {
		return t
	}
	return time.Time{}
}

// Umur menghitung umur (tahun penuh) pada tanggal acuan. Dikurangi satu bila
// ulang tahun di tahun acuan belum lewat.
func Umur(lahir, acuan time.Time) int {
	u := acuan.Year() - lahir.Year()
	if acuan.Month() < lahir.Month() ||
		(acuan.Month() == lahir.Month() && acuan.Day() < lahir.Day()) {
		u--
	}
	if u < 0 {
		u = 0
	}
	return u
}

// UmurString: umur dari string tanggal lahir mentah. Kosong / tidak bisa
// diparse → Sentinel "-" (dinormalkan, tidak lagi meng-echo string mentah).
func UmurString(tanggalLahir string, acuan time.Time) string {
	lahir, err := Parse(tanggalLahir)
	if err != nil {
		return Sentinel
	}
	return fmt.Sprintf("%d", Umur(lahir, acuan))
}

// FormatIndo menampilkan tanggal dengan bulan Indonesia, mis. "20 Maret 2010".
func FormatIndo(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), namaBulan[int(t.Month())-1], t.Year())
}

// FormatTimestamp: format timestamp tulis standar sheet.
func FormatTimestamp(t time.Time) string {
	return t.Format(LayoutTimestamp)
}
