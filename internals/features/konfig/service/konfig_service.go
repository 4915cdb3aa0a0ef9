// file: internals/features/konfig/service/konfig_service.go
package service

import (
	"context"
	"strings"

	"github.com/bytedance/sonic"

	"generusku_backend/internals/constants"
	helper "generusku_backend/internals/helpers"
	"generusku_backend/internals/sheetdb"
)

// Kolom sheet Config (key→value JSON).
const (
	ColKey   = "Key"
	ColValue = "Value"
)

var Headers = []string{ColKey, ColValue}

// Key yang dipakai aplikasi.
const (
	KeyAdminPassword = "admin_password"
	PrefixKolom      = "kolom:"      // kolom:<view> → daftar kolom yang tampil
	PrefixKataKunci  = "kata_kunci:" // kata_kunci:<field> → map kategori→keywords
)

// KonfigService: blob konfigurasi bersama di sheet Config. Dibaca utuh,
// ditulis per key; last-writer-wins tanpa versioning (sama dengan aslinya).
type KonfigService struct {
	Store sheetdb.Store
}

func NewKonfigService(store sheetdb.Store) *KonfigService {
	return &KonfigService{Store: store}
}

// GetRaw mengambil value mentah untuk satu key. (found=false bukan error.)
func (s *KonfigService) GetRaw(ctx context.Context, key string) (string, bool, error) {
	recs, err := s.Store.ReadAll(ctx, constants.SheetConfig)
	if err != nil {
		return "", false, err
	}
	for _, rec := range recs {
		if strings.EqualFold(helper.CellTrim(rec, ColKey), key) {
			return helper.Cell(rec, ColValue), true, nil
		}
	}
	return "", false, nil
}

// Get men-decode value JSON ke out.
func (s *KonfigService) Get(ctx context.Context, key string, out any) (bool, error) {
	raw, ok, err := s.GetRaw(ctx, key)
	if err != nil || !ok {
		return ok, err
	}
	if err := sonic.Unmarshal([]byte(raw), out); err != nil {
		return true, err
	}
	return true, nil
}

// Set menulis satu key: update in place bila sudah ada, append bila belum.
func (s *KonfigService) Set(ctx context.Context, key string, value any) error {
	raw, err := sonic.Marshal(value)
	if err != nil {
		return err
	}
	return s.SetRaw(ctx, key, string(raw))
}

func (s *KonfigService) SetRaw(ctx context.Context, key, raw string) error {
	recs, err := s.Store.ReadAll(ctx, constants.SheetConfig)
	if err != nil {
		return err
	}
	rec := sheetdb.Record{ColKey: key, ColValue: raw}
	for i, r := range recs {
		if strings.EqualFold(helper.CellTrim(r, ColKey), key) {
			return s.Store.UpdateAt(ctx, constants.SheetConfig, sheetdb.DataRowPos(i), rec)
		}
	}
	return s.Store.Append(ctx, constants.SheetConfig, rec)
}
