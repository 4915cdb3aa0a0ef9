// file: internals/features/sampah/controller/sampah_controller.go
package controller

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"generusku_backend/internals/constants"
	generusService "generusku_backend/internals/features/generus/service"
	sampahDTO "generusku_backend/internals/features/sampah/dto"
	"generusku_backend/internals/features/sampah/model"
	helper "generusku_backend/internals/helpers"
	"generusku_backend/internals/helpers/tanggal"
	"generusku_backend/internals/sheetdb"
)

type SampahController struct {
	Store sheetdb.Store
	Now   func() time.Time
}

func NewSampahController(store sheetdb.Store) *SampahController {
	return &SampahController{Store: store, Now: time.Now}
}

func (h *SampahController) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

// GET /sampah
func (h *SampahController) List(c *fiber.Ctx) error {
	list, err := h.muatSemua(c.UserContext())
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal membaca sampah: "+err.Error())
	}

	paging := helper.ResolvePaging(c)
	start := (paging.Page - 1) * paging.PerPage
	if start > len(list) {
		start = len(list)
	}
	end := start + paging.PerPage
	if end > len(list) {
		end = len(list)
	}

	pg := helper.BuildPagination(len(list), paging)
	pg.Count = end - start
	return helper.JsonList(c, "Data sampah", sampahDTO.FromModels(list[start:end]), pg)
}

// POST /sampah/:id/restore — kembalikan satu record arsip ke roster hidup,
// metadata penghapusan dibuang dan timestamp ditulis ulang.
func (h *SampahController) Restore(c *fiber.Ctx) error {
	m, err := h.cari(c.UserContext(), c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Record sampah tidak ditemukan")
	}

	hidup := m.GenerusModel
	hidup.Timestamp = tanggal.FormatTimestamp(h.now())
	if err := h.Store.Append(c.UserContext(), constants.SheetGenerus, hidup.ToRecord()); err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal mengembalikan generus: "+err.Error())
	}
	if err := h.Store.DeleteAt(c.UserContext(), constants.SheetSampah, m.RowPos); err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal membersihkan arsip: "+err.Error())
	}

	generusService.Hiasi(&hidup, h.now())
	return helper.JsonOK(c, "Generus dikembalikan dari sampah", sampahDTO.FromModel(model.SampahModel{GenerusModel: hidup}))
}

// DELETE /sampah/:id — hapus permanen dari arsip.
func (h *SampahController) Purge(c *fiber.Ctx) error {
	m, err := h.cari(c.UserContext(), c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Record sampah tidak ditemukan")
	}
	if err := h.Store.DeleteAt(c.UserContext(), constants.SheetSampah, m.RowPos); err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal menghapus permanen: "+err.Error())
	}
	return helper.JsonDeleted(c, "Record dihapus permanen", sampahDTO.FromModel(m))
}

func (h *SampahController) muatSemua(ctx context.Context) ([]model.SampahModel, error) {
	recs, err := h.Store.ReadAll(ctx, constants.SheetSampah)
	if err != nil {
		return nil, err
	}
	out := make([]model.SampahModel, 0, len(recs))
	for i, rec := range recs {
		m := model.FromRecord(rec, sheetdb.DataRowPos(i))
		generusService.Hiasi(&m.GenerusModel, h.now())
		out = append(out, m)
	}
	return out, nil
}

// cari me-resolve ID → posisi terhadap baca segar, sama seperti roster hidup.
func (h *SampahController) cari(ctx context.Context, id string) (model.SampahModel, error) {
	list, err := h.muatSemua(ctx)
	if err != nil {
		return model.SampahModel{}, err
	}
	id = strings.TrimSpace(id)
	for _, m := range list {
		if strings.EqualFold(m.ID, id) && m.ID != "" {
			return m, nil
		}
	}
	return model.SampahModel{}, generusService.ErrTidakDitemukan
}
