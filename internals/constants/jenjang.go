package constants

// JenjangThreshold: satu jenjang kelas beserta umur minimumnya.
type JenjangThreshold struct {
	Nama    string
	MinUmur int
}

// JenjangBelum dipakai saat umur di bawah jenjang terendah atau tidak diketahui.
const JenjangBelum = "-"

// ✅ Ambang jenjang, urut dari terendah ke tertinggi.
// Klasifikasi memeriksa dari tertinggi ke bawah dan mengambil jenjang
// pertama yang umur minimumnya terpenuhi.
var DefaultJenjangThresholds = []JenjangThreshold{
	{Nama: "PAUD", MinUmur: 3},
	{Nama: "Caberawit A", MinUmur: 7},
	{Nama: "Caberawit B", MinUmur: 9},
	{Nama: "Caberawit C", MinUmur: 11},
	{Nama: "Pra Remaja", MinUmur: 13},
	{Nama: "Remaja", MinUmur: 16},
	{Nama: "Pra Nikah", MinUmur: 19},
}

// AllJenjang mengembalikan nama jenjang sesuai urutan ambang.
func AllJenjang() []string {
	out := make([]string, 0, len(DefaultJenjangThresholds))
	for _, t := range DefaultJenjangThresholds {
		out = append(out, t.Nama)
	}
	return out
}
