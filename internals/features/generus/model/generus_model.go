// file: internals/features/generus/model/generus_model.go
package model

import (
	helper "generusku_backend/internals/helpers"
	"generusku_backend/internals/sheetdb"
)

// Nama kolom di sheet Generus. Pencocokan selalu case-insensitive karena
// header diketik manual.
const (
	ColID           = "ID"
	ColNama         = "Nama"
	ColDesa         = "Desa"
	ColKelompok     = "Kelompok"
	ColGender       = "Gender"
	ColTanggalLahir = "Tanggal Lahir"
	ColHobi         = "Hobi"
	ColSkill        = "Skill"
	ColTimestamp    = "Timestamp"
)

// Headers: urutan kolom standar saat membuat tabel baru (mis. MemoryStore).
var Headers = []string{
	ColID, ColNama, ColDesa, ColKelompok, ColGender,
	ColTanggalLahir, ColHobi, ColSkill, ColTimestamp,
}

// GenerusModel: satu baris roster. Umur dan JenjangKelas dihitung saat baca,
// tidak pernah ditulis balik ke sheet. RowPos = posisi baris sheet (1-based,
// data mulai 2) dan hanya valid untuk snapshot baca tempat ia berasal.
type GenerusModel struct {
	ID           string
	Nama         string
	Desa         string
	Kelompok     string
	Gender       string
	TanggalLahir string
	Hobi         string
	Skill        string
	Timestamp    string

	Umur         string
	JenjangKelas string

	RowPos int
}

// FromRecord membaca field mentah dari satu record sheet. Field turunan
// (Umur, JenjangKelas) diisi oleh service.
func FromRecord(rec sheetdb.Record, pos int) GenerusModel {
	return GenerusModel{
		ID:           helper.CellTrim(rec, ColID),
		Nama:         helper.CellTrim(rec, ColNama),
		Desa:         helper.CellTrim(rec, ColDesa),
		Kelompok:     helper.CellTrim(rec, ColKelompok),
		Gender:       helper.CellTrim(rec, ColGender),
		TanggalLahir: helper.CellTrim(rec, ColTanggalLahir),
		Hobi:         helper.Cell(rec, ColHobi),
		Skill:        helper.Cell(rec, ColSkill),
		Timestamp:    helper.CellTrim(rec, ColTimestamp),
		RowPos:       pos,
	}
}

// ToRecord menyusun record tulis penuh. Field turunan sengaja tidak ikut.
func (m GenerusModel) ToRecord() sheetdb.Record {
	return sheetdb.Record{
		ColID:           m.ID,
		ColNama:         m.Nama,
		ColDesa:         m.Desa,
		ColKelompok:     m.Kelompok,
		ColGender:       m.Gender,
		ColTanggalLahir: m.TanggalLahir,
		ColHobi:         m.Hobi,
		ColSkill:        m.Skill,
		ColTimestamp:    m.Timestamp,
	}
}
