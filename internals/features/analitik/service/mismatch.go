// file: internals/features/analitik/service/mismatch.go
package service

import (
	"generusku_backend/internals/constants"
	"generusku_backend/internals/features/generus/model"
)

// Mismatch mengembalikan record yang pasangan desa/kelompok-nya tidak
// terdaftar di taksonomi (case-insensitive). Predikat murni, tanpa mutasi.
func Mismatch(list []model.GenerusModel) []model.GenerusModel {
	out := make([]model.GenerusModel, 0)
	for _, m := range list {
		if !constants.IsValidPair(m.Desa, m.Kelompok) {
			out = append(out, m)
		}
	}
	return out
}
