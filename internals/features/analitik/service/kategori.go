// file: internals/features/analitik/service/kategori.go
package service

import (
	"sort"
	"strings"
)

// KategoriLainnya menampung teks yang tidak cocok dengan kategori manapun.
const KategoriLainnya = "Lainnya"

// Kata kunci bawaan, dipakai bila admin belum menyimpan map sendiri di
// konfigurasi. Keyword selalu lowercase.
var DefaultKataKunci = map[string]map[string][]string{
	"hobi": {
		"Olahraga":  {"sepak bola", "futsal", "badminton", "renang", "voli", "basket", "lari"},
		"Seni":      {"menggambar", "melukis", "menyanyi", "musik", "menari", "kaligrafi"},
		"Sastra":    {"membaca", "menulis", "puisi", "cerita"},
		"Teknologi": {"komputer", "coding", "game", "robotik", "desain grafis"},
		"Memasak":   {"masak", "memasak", "kue", "baking"},
	},
	"skill": {
		"Mengajar":   {"mengajar", "tilawati", "mendongeng"},
		"Organisasi": {"organisasi", "memimpin", "public speaking", "mc"},
		"Teknik":     {"elektro", "otomotif", "las", "servis"},
		"Digital":    {"editing", "video", "desain", "fotografi", "coding"},
		"Wirausaha":  {"jualan", "dagang", "usaha", "bisnis"},
	},
}

// Kategorikan mengembalikan semua kategori yang kata kuncinya muncul sebagai
// substring di teks (lowercase). Satu teks boleh masuk beberapa kategori;
// "Lainnya" hanya bila tidak ada yang cocok sama sekali.
func Kategorikan(teks string, kataKunci map[string][]string) []string {
	lower := strings.ToLower(teks)
	out := make([]string, 0, 2)
	for kategori, kws := range kataKunci {
		for _, kw := range kws {
			if kw != "" && strings.Contains(lower, kw) {
				out = append(out, kategori)
				break
			}
		}
	}
	if len(out) == 0 {
		return []string{KategoriLainnya}
	}
	sort.Strings(out) // urutan stabil untuk response & test
	return out
}

// HitungKategori menghitung jumlah teks per kategori di seluruh dataset.
// Kategori dengan nol kecocokan tetap tampil.
func HitungKategori(teksList []string, kataKunci map[string][]string) map[string]int {
	counts := make(map[string]int, len(kataKunci)+1)
	for kategori := range kataKunci {
		counts[kategori] = 0
	}
	counts[KategoriLainnya] = 0

	for _, teks := range teksList {
		if strings.TrimSpace(teks) == "" {
			continue
		}
		for _, kategori := range Kategorikan(teks, kataKunci) {
			counts[kategori]++
		}
	}
	return counts
}

// TokenCount: satu kandidat kata kunci baru beserta frekuensinya.
type TokenCount struct {
	Token  string `json:"token"`
	Jumlah int    `json:"jumlah"`
}

// TemukanKataBaru memindai teks yang jatuh ke "Lainnya", memecahnya jadi
// token, lalu mengembalikan token terpopuler yang belum diklaim kata kunci
// manapun. Murni advisory — tidak ada kategorisasi otomatis.
func TemukanKataBaru(teksList []string, kataKunci map[string][]string, limit int) []TokenCount {
	if limit <= 0 {
		limit = 10
	}

	diklaim := make(map[string]bool)
	for _, kws := range kataKunci {
		for _, kw := range kws {
			for _, t := range tokenisasi(kw) {
				diklaim[t] = true
			}
		}
	}

	freq := make(map[string]int)
	for _, teks := range teksList {
		if strings.TrimSpace(teks) == "" {
			continue
		}
		kategori := Kategorikan(teks, kataKunci)
		if len(kategori) != 1 || kategori[0] != KategoriLainnya {
			continue
		}
		for _, t := range tokenisasi(teks) {
			if !diklaim[t] && !stopword[t] {
				freq[t]++
			}
		}
	}

	out := make([]TokenCount, 0, len(freq))
	for t, n := range freq {
		out = append(out, TokenCount{Token: t, Jumlah: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Jumlah != out[j].Jumlah {
			return out[i].Jumlah > out[j].Jumlah
		}
		return out[i].Token < out[j].Token
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Kata sambung umum yang tidak berguna sebagai kandidat kata kunci.
var stopword = map[string]bool{
	"dan": true, "atau": true, "yang": true, "saya": true, "suka": true,
	"juga": true, "dengan": true, "di": true, "ke": true, "dari": true,
	"bermain": true, "main": true,
}

func tokenisasi(teks string) []string {
	fields := strings.FieldsFunc(strings.ToLower(teks), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) >= 3 {
			out = append(out, f)
		}
	}
	return out
}
