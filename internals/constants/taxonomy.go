package constants

import "strings"

// Nama tabel (sheet) di spreadsheet
const (
	SheetGenerus = "Generus"
	SheetSampah  = "Sampah"
	SheetConfig  = "Config"
)

// DesaEntry: satu desa beserta daftar kelompok yang terdaftar di bawahnya.
// Urutan dipertahankan karena dipakai untuk seeding ringkasan & dropdown.
type DesaEntry struct {
	Desa     string
	Kelompok []string
}

// ✅ Taksonomi lokasi resmi (dua level: Desa → Kelompok)
var LocationTaxonomy = []DesaEntry{
	{Desa: "Sukolilo", Kelompok: []string{"Keputih", "Gebang", "Semolowaru", "Medokan"}},
	{Desa: "Rungkut", Kelompok: []string{"Rungkut Kidul", "Kali Rungkut", "Penjaringan", "Wonorejo"}},
	{Desa: "Gunung Anyar", Kelompok: []string{"Gunung Anyar Lor", "Gunung Anyar Tambak", "Rungkut Menanggal"}},
	{Desa: "Tenggilis", Kelompok: []string{"Tenggilis Mejoyo", "Kendangsari", "Kutisari", "Panjang Jiwo"}},
}

// AllDesa mengembalikan daftar nama desa sesuai urutan taksonomi.
func AllDesa() []string {
	out := make([]string, 0, len(LocationTaxonomy))
	for _, e := range LocationTaxonomy {
		out = append(out, e.Desa)
	}
	return out
}

// KelompokOf mengembalikan daftar kelompok untuk satu desa (case-insensitive).
// Desa yang tidak terdaftar mengembalikan slice kosong, bukan error.
func KelompokOf(desa string) []string {
	for _, e := range LocationTaxonomy {
		if strings.EqualFold(e.Desa, strings.TrimSpace(desa)) {
			return e.Kelompok
		}
	}
	return nil
}

// IsValidPair: apakah pasangan desa/kelompok terdaftar di taksonomi.
func IsValidPair(desa, kelompok string) bool {
	for _, k := range KelompokOf(desa) {
		if strings.EqualFold(k, strings.TrimSpace(kelompok)) {
			return true
		}
	}
	return false
}
