package service

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"generusku_backend/internals/constants"
)

func TestKlasifikasi(t *testing.T) {
	th := constants.DefaultJenjangThresholds

	cases := []struct {
		umur string
		want string
	}{
		{"2", "-"}, // di bawah ambang terendah
		{"3", "PAUD"},
		{"6", "PAUD"},
		{"7", "Caberawit A"},
		{"8", "Caberawit A"}, // skenario 15/08/2015 dievaluasi 20/03/2024
		{"9", "Caberawit B"},
		{"11", "Caberawit C"},
		{"13", "Pra Remaja"},
		{"16", "Remaja"},
		{"19", "Pra Nikah"},
		{"40", "Pra Nikah"},
		{"-", "-"},
		{"", "-"},
		{"abc", "-"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Klasifikasi(tc.umur, th), "umur %q", tc.umur)
	}
}

// Setiap umur masuk tepat satu jenjang: ambangnya ≤ umur, dan tidak ada
// jenjang lebih tinggi yang ambangnya juga terpenuhi.
func TestKlasifikasiMonotonDanTotal(t *testing.T) {
	th := constants.DefaultJenjangThresholds

	for umur := 0; umur <= 60; umur++ {
		got := Klasifikasi(strconv.Itoa(umur), th)

		if umur < th[0].MinUmur {
			assert.Equal(t, constants.JenjangBelum, got, "umur %d", umur)
			continue
		}
		var idx = -1
		for i, j := range th {
			if j.Nama == got {
				idx = i
			}
		}
		if assert.GreaterOrEqual(t, idx, 0, "umur %d → %q tidak dikenal", umur, got) {
			assert.LessOrEqual(t, th[idx].MinUmur, umur, "umur %d", umur)
			if idx+1 < len(th) {
				assert.Greater(t, th[idx+1].MinUmur, umur, "umur %d: ada jenjang lebih tinggi yang juga lolos", umur)
			}
		}
	}
}
