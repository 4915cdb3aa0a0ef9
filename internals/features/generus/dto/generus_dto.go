// file: internals/features/generus/dto/generus_dto.go
package dto

import (
	"strings"

	"generusku_backend/internals/features/generus/model"
)

// ========================== REQUEST ==========================

type CreateGenerusRequest struct {
	Nama         string `json:"nama" validate:"required,min=2,max=100"`
	Desa         string `json:"desa" validate:"required"`
	Kelompok     string `json:"kelompok" validate:"required"`
	Gender       string `json:"gender" validate:"omitempty,oneof=L P"`
	TanggalLahir string `json:"tanggal_lahir"` // dd/MM/yyyy, boleh kosong
	Hobi         string `json:"hobi"`
	Skill        string `json:"skill"`
}

// Normalisasi memangkas spasi field identitas.
func (r *CreateGenerusRequest) Normalisasi() {
	r.Nama = strings.TrimSpace(r.Nama)
	r.Desa = strings.TrimSpace(r.Desa)
	r.Kelompok = strings.TrimSpace(r.Kelompok)
	r.Gender = strings.ToUpper(strings.TrimSpace(r.Gender))
	r.TanggalLahir = strings.TrimSpace(r.TanggalLahir)
}

func (r CreateGenerusRequest) ToModel() model.GenerusModel {
	return model.GenerusModel{
		Nama:         r.Nama,
		Desa:         r.Desa,
		Kelompok:     r.Kelompok,
		Gender:       r.Gender,
		TanggalLahir: r.TanggalLahir,
		Hobi:         r.Hobi,
		Skill:        r.Skill,
	}
}

// Update memakai bentuk yang sama: tulisan ke sheet selalu satu baris penuh.
type UpdateGenerusRequest = CreateGenerusRequest

// HapusGenerusRequest: metadata arsip saat satu generus dipindah ke Sampah.
type HapusGenerusRequest struct {
	Menikah bool   `json:"menikah"`
	Pindah  bool   `json:"pindah"`
	Alasan  string `json:"alasan" validate:"max=500"`
}

// ========================== RESPONSE ==========================

type GenerusResponse struct {
	ID           string `json:"id"`
	Nama         string `json:"nama"`
	Desa         string `json:"desa"`
	Kelompok     string `json:"kelompok"`
	Gender       string `json:"gender"`
	TanggalLahir string `json:"tanggal_lahir"`
	Umur         string `json:"umur"`
	JenjangKelas string `json:"jenjang_kelas"`
	Hobi         string `json:"hobi"`
	Skill        string `json:"skill"`
	Timestamp    string `json:"timestamp"`
}

func FromModel(m model.GenerusModel) GenerusResponse {
	return GenerusResponse{
		ID:           m.ID,
		Nama:         m.Nama,
		Desa:         m.Desa,
		Kelompok:     m.Kelompok,
		Gender:       m.Gender,
		TanggalLahir: m.TanggalLahir,
		Umur:         m.Umur,
		JenjangKelas: m.JenjangKelas,
		Hobi:         m.Hobi,
		Skill:        m.Skill,
		Timestamp:    m.Timestamp,
	}
}

func FromModels(list []model.GenerusModel) []GenerusResponse {
	out := make([]GenerusResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromModel(m))
	}
	return out
}
