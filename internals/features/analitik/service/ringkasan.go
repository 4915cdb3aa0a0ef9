// file: internals/features/analitik/service/ringkasan.go
package service

import (
	"strings"

	"generusku_backend/internals/constants"
	"generusku_backend/internals/features/generus/model"
)

// LokasiCount: satu baris ringkasan (desa atau kelompok).
type LokasiCount struct {
	Nama      string `json:"nama"`
	Jumlah    int    `json:"jumlah"`
	Terdaftar bool   `json:"terdaftar"` // false = ada di data tapi tidak ada di taksonomi
}

// RingkasanDesa menghitung jumlah generus per desa. Semua desa taksonomi
// di-seed nol lebih dulu supaya lokasi kosong tetap tampil; nilai di luar
// taksonomi dihitung di bawah labelnya sendiri, tidak ditolak.
func RingkasanDesa(list []model.GenerusModel) []LokasiCount {
	return hitung(list, constants.AllDesa(), func(m model.GenerusModel) string { return m.Desa })
}

// RingkasanKelompok: drill-down per kelompok dalam satu desa.
func RingkasanKelompok(list []model.GenerusModel, desa string) []LokasiCount {
	dalamDesa := make([]model.GenerusModel, 0)
	for _, m := range list {
		if strings.EqualFold(strings.TrimSpace(m.Desa), strings.TrimSpace(desa)) {
			dalamDesa = append(dalamDesa, m)
		}
	}
	return hitung(dalamDesa, constants.KelompokOf(desa), func(m model.GenerusModel) string { return m.Kelompok })
}

func hitung(list []model.GenerusModel, seed []string, key func(model.GenerusModel) string) []LokasiCount {
	urutan := make([]string, 0, len(seed))
	idx := make(map[string]int, len(seed))
	counts := make(map[string]int, len(seed))

	for _, s := range seed {
		k := strings.ToLower(s)
		if _, ok := idx[k]; !ok {
			idx[k] = len(urutan)
			urutan = append(urutan, s)
		}
	}

	for _, m := range list {
		label := strings.TrimSpace(key(m))
		if label == "" {
			label = "(kosong)"
		}
		k := strings.ToLower(label)
		if _, ok := idx[k]; !ok {
			// label liar di luar taksonomi: tetap dihitung, ditandai tak terdaftar
			idx[k] = len(urutan)
			urutan = append(urutan, label)
		}
		counts[k]++
	}

	terdaftar := make(map[string]bool, len(seed))
	for _, s := range seed {
		terdaftar[strings.ToLower(s)] = true
	}

	out := make([]LokasiCount, 0, len(urutan))
	for _, label := range urutan {
		k := strings.ToLower(label)
		out = append(out, LokasiCount{
			Nama:      label,
			Jumlah:    counts[k],
			Terdaftar: terdaftar[k],
		})
	}
	return out
}
