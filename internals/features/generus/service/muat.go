// file: internals/features/generus/service/muat.go
package service

import (
	"context"
	"strings"
	"time"

	"generusku_backend/internals/constants"
	"generusku_backend/internals/features/generus/model"
	"generusku_backend/internals/helpers/tanggal"
	"generusku_backend/internals/sheetdb"
)

// LoadAll membaca seluruh roster (selalu full table scan, tidak ada fetch
// inkremental) lalu mengisi field turunan Umur & JenjangKelas terhadap
// tanggal acuan.
func LoadAll(ctx context.Context, store sheetdb.Store, acuan time.Time) ([]model.GenerusModel, error) {
	recs, err := store.ReadAll(ctx, constants.SheetGenerus)
	if err != nil {
		return nil, err
	}
	out := make([]model.GenerusModel, 0, len(recs))
	for i, rec := range recs {
		m := model.FromRecord(rec, sheetdb.DataRowPos(i))
		Hiasi(&m, acuan)
		out = append(out, m)
	}
	return out, nil
}

// Hiasi mengisi Umur dan JenjangKelas dari tanggal lahir mentah.
func Hiasi(m *model.GenerusModel, acuan time.Time) {
	m.Umur = tanggal.UmurString(m.TanggalLahir, acuan)
	m.JenjangKelas = Klasifikasi(m.Umur, constants.DefaultJenjangThresholds)
}

// FindByID mencari satu generus di snapshot berdasarkan ID sintetis.
func FindByID(list []model.GenerusModel, id string) (model.GenerusModel, bool) {
	id = strings.TrimSpace(id)
	if id == "" {
		return model.GenerusModel{}, false
	}
	for _, m := range list {
		if strings.EqualFold(m.ID, id) {
			return m, true
		}
	}
	return model.GenerusModel{}, false
}

// ResolvePos membaca ulang tabel lalu mencari posisi baris untuk satu ID.
// Posisi dari snapshot lama tidak pernah dipercaya: delete menggeser semua
// baris di bawahnya, jadi resolusi ID→posisi wajib terjadi sesaat sebelum
// tiap tulisan.
func ResolvePos(ctx context.Context, store sheetdb.Store, id string, acuan time.Time) (model.GenerusModel, error) {
	list, err := LoadAll(ctx, store, acuan)
	if err != nil {
		return model.GenerusModel{}, err
	}
	m, ok := FindByID(list, id)
	if !ok {
		return model.GenerusModel{}, ErrTidakDitemukan
	}
	return m, nil
}
