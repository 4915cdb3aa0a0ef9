package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"generusku_backend/internals/constants"
	"generusku_backend/internals/features/generus/model"
)

func TestKategorikan(t *testing.T) {
	kw := map[string][]string{
		"Sastra":   {"membaca", "menulis"},
		"Olahraga": {"futsal"},
	}

	assert.Equal(t, []string{"Sastra"}, Kategorikan("saya suka membaca dan menulis", kw))
	// satu teks boleh cocok beberapa kategori sekaligus
	assert.Equal(t, []string{"Olahraga", "Sastra"}, Kategorikan("futsal dan membaca", kw))
	// tidak ada yang cocok → Lainnya, dan hanya Lainnya
	assert.Equal(t, []string{KategoriLainnya}, Kategorikan("xyz", kw))
}

func TestHitungKategori(t *testing.T) {
	kw := map[string][]string{"Sastra": {"membaca"}, "Olahraga": {"futsal"}}
	counts := HitungKategori([]string{"membaca buku", "futsal", "berkebun", ""}, kw)

	assert.Equal(t, 1, counts["Sastra"])
	assert.Equal(t, 1, counts["Olahraga"])
	assert.Equal(t, 1, counts[KategoriLainnya]) // teks kosong tidak dihitung
}

func TestTemukanKataBaru(t *testing.T) {
	kw := map[string][]string{"Sastra": {"membaca"}}
	teks := []string{
		"berkebun dan memancing",
		"berkebun",
		"membaca novel", // sudah terkategori, tidak dipindai
	}

	got := TemukanKataBaru(teks, kw, 5)
	require.NotEmpty(t, got)
	assert.Equal(t, "berkebun", got[0].Token)
	assert.Equal(t, 2, got[0].Jumlah)
	for _, tc := range got {
		assert.NotEqual(t, "membaca", tc.Token, "token yang sudah diklaim tidak boleh muncul")
		assert.NotEqual(t, "novel", tc.Token, "teks terkategori tidak ikut dipindai")
	}
}

func TestRingkasanDesaSeedNol(t *testing.T) {
	list := []model.GenerusModel{
		{Nama: "A", Desa: "Sukolilo"},
		{Nama: "B", Desa: "sukolilo"}, // casing beda = desa yang sama
		{Nama: "C", Desa: "Planet Mars"},
	}

	got := RingkasanDesa(list)

	byNama := map[string]LokasiCount{}
	for _, lc := range got {
		byNama[lc.Nama] = lc
	}

	// semua desa taksonomi tampil walau nol
	for _, desa := range constants.AllDesa() {
		_, ok := byNama[desa]
		assert.True(t, ok, "desa %s harus ter-seed", desa)
	}
	assert.Equal(t, 2, byNama["Sukolilo"].Jumlah)
	assert.True(t, byNama["Sukolilo"].Terdaftar)
	assert.Equal(t, 0, byNama["Rungkut"].Jumlah)

	// label liar tetap dihitung, ditandai tidak terdaftar
	assert.Equal(t, 1, byNama["Planet Mars"].Jumlah)
	assert.False(t, byNama["Planet Mars"].Terdaftar)
}

func TestRingkasanKelompok(t *testing.T) {
	list := []model.GenerusModel{
		{Nama: "A", Desa: "Sukolilo", Kelompok: "Keputih"},
		{Nama: "B", Desa: "Sukolilo", Kelompok: "keputih"},
		{Nama: "C", Desa: "Rungkut", Kelompok: "Wonorejo"}, // desa lain, tidak ikut
	}

	got := RingkasanKelompok(list, "Sukolilo")
	byNama := map[string]int{}
	for _, lc := range got {
		byNama[lc.Nama] = lc.Jumlah
	}
	assert.Equal(t, 2, byNama["Keputih"])
	assert.Equal(t, 0, byNama["Gebang"])
	_, adaWonorejo := byNama["Wonorejo"]
	assert.False(t, adaWonorejo)
}

func TestMismatch(t *testing.T) {
	list := []model.GenerusModel{
		{ID: "1", Desa: "Sukolilo", Kelompok: "Keputih"},   // valid
		{ID: "2", Desa: "Sukolilo", Kelompok: "Wonorejo"},  // kelompok milik desa lain
		{ID: "3", Desa: "Atlantis", Kelompok: "Keputih"},   // desa tidak terdaftar
		{ID: "4", Desa: "sukolilo", Kelompok: "keputih"},   // valid (case-insensitive)
	}

	got := Mismatch(list)
	ids := make([]string, 0, len(got))
	for _, m := range got {
		ids = append(ids, m.ID)
	}
	assert.ElementsMatch(t, []string{"2", "3"}, ids)
}
