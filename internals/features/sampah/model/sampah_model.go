// file: internals/features/sampah/model/sampah_model.go
package model

import (
	generusModel "generusku_backend/internals/features/generus/model"
	helper "generusku_backend/internals/helpers"
	"generusku_backend/internals/sheetdb"
)

// Kolom tambahan di sheet Sampah (arsip). Kolom roster ikut semua.
const (
	ColMenikah     = "Menikah"
	ColPindah      = "Pindah"
	ColAlasan      = "Alasan"
	ColDihapusPada = "Dihapus Pada"
	NilaiBenar     = "Ya"
	NilaiSalah     = "Tidak"
)

// Headers: urutan kolom sheet Sampah.
var Headers = append(append([]string{}, generusModel.Headers...),
	ColMenikah, ColPindah, ColAlasan, ColDihapusPada)

// SampahModel: satu record terarsip beserta metadata penghapusan.
type SampahModel struct {
	generusModel.GenerusModel

	Menikah     bool
	Pindah      bool
	Alasan      string
	DihapusPada string
}

func FromRecord(rec sheetdb.Record, pos int) SampahModel {
	return SampahModel{
		GenerusModel: generusModel.FromRecord(rec, pos),
		Menikah:      helper.CellTrim(rec, ColMenikah) == NilaiBenar,
		Pindah:       helper.CellTrim(rec, ColPindah) == NilaiBenar,
		Alasan:       helper.Cell(rec, ColAlasan),
		DihapusPada:  helper.CellTrim(rec, ColDihapusPada),
	}
}

func (m SampahModel) ToRecord() sheetdb.Record {
	rec := m.GenerusModel.ToRecord()
	rec[ColMenikah] = yaTidak(m.Menikah)
	rec[ColPindah] = yaTidak(m.Pindah)
	rec[ColAlasan] = m.Alasan
	rec[ColDihapusPada] = m.DihapusPada
	return rec
}

func yaTidak(b bool) string {
	if b {
		return NilaiBenar
	}
	return NilaiSalah
}
