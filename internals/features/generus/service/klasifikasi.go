// file: internals/features/generus/service/klasifikasi.go
package service

import (
	"strconv"

	"generusku_backend/internals/constants"
)

// Klasifikasi memetakan umur ke jenjang kelas. Ambang diperiksa dari
// tertinggi ke terendah; jenjang pertama yang umur minimumnya ≤ umur menang.
// Umur non-numerik (termasuk sentinel "-") atau di bawah ambang terendah
// menghasilkan "-".
func Klasifikasi(umur string, thresholds []constants.JenjangThreshold) string {
	n, err := strconv.Atoi(umur)
	if err != nil {
		return constants.JenjangBelum
	}
	for i := len(thresholds) - 1; i >= 0; i-- {
		if n >= thresholds[i].MinUmur {
			return thresholds[i].Nama
		}
	}
	return constants.JenjangBelum
}
