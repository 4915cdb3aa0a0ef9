// file: internals/features/sampah/dto/sampah_dto.go
package dto

import (
	generusDTO "generusku_backend/internals/features/generus/dto"
	"generusku_backend/internals/features/sampah/model"
)

type SampahResponse struct {
	generusDTO.GenerusResponse

	Menikah     bool   `json:"menikah"`
	Pindah      bool   `json:"pindah"`
	Alasan      string `json:"alasan"`
	DihapusPada string `json:"dihapus_pada"`
}

func FromModel(m model.SampahModel) SampahResponse {
	return SampahResponse{
		GenerusResponse: generusDTO.FromModel(m.GenerusModel),
		Menikah:         m.Menikah,
		Pindah:          m.Pindah,
		Alasan:          m.Alasan,
		DihapusPada:     m.DihapusPada,
	}
}

func FromModels(list []model.SampahModel) []SampahResponse {
	out := make([]SampahResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromModel(m))
	}
	return out
}
