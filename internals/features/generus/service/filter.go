// file: internals/features/generus/service/filter.go
package service

import (
	"sort"
	"strings"

	"generusku_backend/internals/features/generus/model"
	"generusku_backend/internals/helpers/tanggal"
)

// Batas umur default. Rentang hanya diterapkan bila berbeda dari default,
// supaya slider yang tidak disentuh tidak ikut menyaring.
const (
	UmurMinDefault = 0
	UmurMaxDefault = 100
)

// Filter: nilai immutable yang menggambarkan satu keadaan penyaringan.
// Caller memegang transisi state; fungsi di sini murni.
type Filter struct {
	Desa     []string
	Kelompok []string
	Gender   string
	Jenjang  []string
	Nama     string
	UmurMin  int
	UmurMax  int

	// TanpaTanggalLahir: hanya record yang tanggal lahirnya kosong / tidak
	// bisa diparse.
	TanpaTanggalLahir bool

	// Duplikat: mode deteksi nama ganda. Predikat lain diabaikan oleh engine
	// (bukan sekadar dimatikan UI seperti versi lama).
	Duplikat bool
}

func DefaultFilter() Filter {
	return Filter{UmurMin: UmurMinDefault, UmurMax: UmurMaxDefault}
}

// Terapkan menjalankan filter + sort di atas snapshot roster.
//
// Mode duplikat: grup nama (lowercase+trim) dengan anggota ≥2, urut nama naik
// lalu timestamp turun. Mode normal: semua predikat di-AND, urut timestamp
// turun (timestamp kosong/tidak valid dianggap paling tua).
func Terapkan(list []model.GenerusModel, f Filter) []model.GenerusModel {
	if f.Duplikat {
		return terapkanDuplikat(list)
	}

	out := make([]model.GenerusModel, 0, len(list))
	for _, m := range list {
		if !cocok(m, f) {
			continue
		}
		out = append(out, m)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return tanggal.ParseTimestamp(out[i].Timestamp).After(tanggal.ParseTimestamp(out[j].Timestamp))
	})
	return out
}

func cocok(m model.GenerusModel, f Filter) bool {
	if !dalamSet(m.Desa, f.Desa) {
		return false
	}
	if !dalamSet(m.Kelompok, f.Kelompok) {
		return false
	}
	if f.Gender != "" && !strings.EqualFold(m.Gender, f.Gender) {
		return false
	}
	if !dalamSet(m.JenjangKelas, f.Jenjang) {
		return false
	}
	if q := strings.TrimSpace(f.Nama); q != "" {
		if !strings.Contains(strings.ToLower(m.Nama), strings.ToLower(q)) {
			return false
		}
	}
	if f.TanpaTanggalLahir && m.Umur != tanggal.Sentinel {
		return false
	}
	if f.UmurMin != UmurMinDefault || f.UmurMax != UmurMaxDefault {
		u, ok := umurAngka(m.Umur)
		if !ok || u < f.UmurMin || u > f.UmurMax {
			return false
		}
	}
	return true
}

func terapkanDuplikat(list []model.GenerusModel) []model.GenerusModel {
	freq := make(map[string]int, len(list))
	for _, m := range list {
		freq[normNama(m.Nama)]++
	}
	out := make([]model.GenerusModel, 0)
	for _, m := range list {
		if freq[normNama(m.Nama)] >= 2 {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := normNama(out[i].Nama), normNama(out[j].Nama)
		if a != b {
			return a < b
		}
		return tanggal.ParseTimestamp(out[i].Timestamp).After(tanggal.ParseTimestamp(out[j].Timestamp))
	})
	return out
}

// Paginate memotong hasil filter secara offset/limit. Halaman di luar
// jangkauan mengembalikan slice kosong.
func Paginate(list []model.GenerusModel, page, perPage int) []model.GenerusModel {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		return nil
	}
	start := (page - 1) * perPage
	if start >= len(list) {
		return []model.GenerusModel{}
	}
	end := start + perPage
	if end > len(list) {
		end = len(list)
	}
	return list[start:end]
}

func normNama(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// dalamSet: OR antar nilai terpilih, case-insensitive; set kosong = lolos.
func dalamSet(v string, set []string) bool {
	if len(set) == 0 {
		return true
	}
	for _, s := range set {
		if strings.EqualFold(strings.TrimSpace(v), strings.TrimSpace(s)) {
			return true
		}
	}
	return false
}

func umurAngka(umur string) (int, bool) {
	n := 0
	if umur == "" || umur == tanggal.Sentinel {
		return 0, false
	}
	for _, r := range umur {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}
