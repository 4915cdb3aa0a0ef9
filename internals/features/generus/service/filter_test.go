package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"generusku_backend/internals/features/generus/model"
)

func contoh() []model.GenerusModel {
	acuan := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	data := []model.GenerusModel{
		{ID: "1", Nama: "Ahmad", Desa: "Sukolilo", Kelompok: "Keputih", Gender: "L", TanggalLahir: "15/08/2015", Timestamp: "01/01/2024 10:00:00"},
		{ID: "2", Nama: "Budi", Desa: "Rungkut", Kelompok: "Wonorejo", Gender: "L", TanggalLahir: "01/01/2008", Timestamp: "03/01/2024 10:00:00"},
		{ID: "3", Nama: "Citra", Desa: "Sukolilo", Kelompok: "Gebang", Gender: "P", TanggalLahir: "10/10/2010", Timestamp: "02/01/2024 10:00:00"},
		{ID: "4", Nama: "ahmad ", Desa: "Tenggilis", Kelompok: "Kutisari", Gender: "L", TanggalLahir: "", Timestamp: "04/01/2024 10:00:00"},
		{ID: "5", Nama: "Dewi", Desa: "Rungkut", Kelompok: "Wonorejo", Gender: "P", TanggalLahir: "xx/xx", Timestamp: ""},
	}
	for i := range data {
		Hiasi(&data[i], acuan)
	}
	return data
}

func idDari(list []model.GenerusModel) []string {
	out := make([]string, 0, len(list))
	for _, m := range list {
		out = append(out, m.ID)
	}
	return out
}

func TestTerapkanDefaultUrutTimestampTurun(t *testing.T) {
	got := Terapkan(contoh(), DefaultFilter())
	// timestamp kosong (ID 5) paling tua → paling bawah
	assert.Equal(t, []string{"4", "2", "3", "1", "5"}, idDari(got))
}

func TestTerapkanPredikat(t *testing.T) {
	list := contoh()

	f := DefaultFilter()
	f.Desa = []string{"sukolilo"} // case-insensitive
	assert.ElementsMatch(t, []string{"1", "3"}, idDari(Terapkan(list, f)))

	f = DefaultFilter()
	f.Gender = "p"
	assert.ElementsMatch(t, []string{"3", "5"}, idDari(Terapkan(list, f)))

	f = DefaultFilter()
	f.Nama = "ahm"
	assert.ElementsMatch(t, []string{"1", "4"}, idDari(Terapkan(list, f)))

	f = DefaultFilter()
	f.Jenjang = []string{"Caberawit A"}
	assert.ElementsMatch(t, []string{"1"}, idDari(Terapkan(list, f)))

	f = DefaultFilter()
	f.TanpaTanggalLahir = true
	assert.ElementsMatch(t, []string{"4", "5"}, idDari(Terapkan(list, f)))

	// rentang umur hanya aktif bila berbeda dari default
	f = DefaultFilter()
	f.UmurMin, f.UmurMax = 8, 14
	assert.ElementsMatch(t, []string{"1", "3"}, idDari(Terapkan(list, f)))
}

// Predikat independen komutatif: gabungan = irisan hasil masing-masing.
func TestTerapkanKomutatif(t *testing.T) {
	list := contoh()

	desa := DefaultFilter()
	desa.Desa = []string{"Rungkut"}
	gender := DefaultFilter()
	gender.Gender = "P"
	gabung := DefaultFilter()
	gabung.Desa = []string{"Rungkut"}
	gabung.Gender = "P"

	hasilDesa := map[string]bool{}
	for _, id := range idDari(Terapkan(list, desa)) {
		hasilDesa[id] = true
	}
	var irisan []string
	for _, id := range idDari(Terapkan(list, gender)) {
		if hasilDesa[id] {
			irisan = append(irisan, id)
		}
	}
	assert.ElementsMatch(t, irisan, idDari(Terapkan(list, gabung)))
}

func TestTerapkanDuplikat(t *testing.T) {
	list := contoh()
	f := DefaultFilter()
	f.Duplikat = true
	// predikat lain diabaikan oleh engine di mode duplikat
	f.Desa = []string{"Rungkut"}

	got := Terapkan(list, f)
	// hanya grup "ahmad" (ID 1 dan 4; normalisasi lowercase+trim)
	require.Len(t, got, 2)
	// nama naik, timestamp turun di dalam grup: ID 4 (04/01) sebelum ID 1 (01/01)
	assert.Equal(t, []string{"4", "1"}, idDari(got))
}

// Menyambung semua halaman menghasilkan list utuh tanpa celah/duplikat.
func TestPaginatePartisi(t *testing.T) {
	list := Terapkan(contoh(), DefaultFilter())

	for _, per := range []int{1, 2, 3, 10} {
		var gabungan []string
		for page := 1; ; page++ {
			chunk := Paginate(list, page, per)
			if len(chunk) == 0 {
				break
			}
			gabungan = append(gabungan, idDari(chunk)...)
		}
		assert.Equal(t, idDari(list), gabungan, "per_page=%d", per)
	}

	assert.Empty(t, Paginate(list, 99, 10))
}
