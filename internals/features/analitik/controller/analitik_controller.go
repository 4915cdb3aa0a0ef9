// file: internals/features/analitik/controller/analitik_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"generusku_backend/internals/features/analitik/service"
	generusDTO "generusku_backend/internals/features/generus/dto"
	generusModel "generusku_backend/internals/features/generus/model"
	generusService "generusku_backend/internals/features/generus/service"
	konfigService "generusku_backend/internals/features/konfig/service"
	helper "generusku_backend/internals/helpers"
	"generusku_backend/internals/sheetdb"
)

type AnalitikController struct {
	Store  sheetdb.Store
	Konfig *konfigService.KonfigService
	Now    func() time.Time
}

func NewAnalitikController(store sheetdb.Store) *AnalitikController {
	return &AnalitikController{
		Store:  store,
		Konfig: konfigService.NewKonfigService(store),
		Now:    time.Now,
	}
}

func (h *AnalitikController) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

// GET /analytics/ringkasan[?desa=Sukolilo]
// Tanpa desa: hitungan per desa (seed nol dari taksonomi). Dengan desa:
// drill-down per kelompok di desa itu.
func (h *AnalitikController) Ringkasan(c *fiber.Ctx) error {
	list, err := generusService.LoadAll(c.UserContext(), h.Store, h.now())
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal membaca data generus: "+err.Error())
	}

	if desa := strings.TrimSpace(c.Query("desa")); desa != "" {
		return helper.JsonOK(c, "Ringkasan kelompok", fiber.Map{
			"desa":     desa,
			"kelompok": service.RingkasanKelompok(list, desa),
		})
	}
	return helper.JsonOK(c, "Ringkasan desa", fiber.Map{
		"total": len(list),
		"desa":  service.RingkasanDesa(list),
	})
}

// GET /analytics/mismatch — record yang pasangan desa/kelompok-nya tidak ada
// di taksonomi.
func (h *AnalitikController) Mismatch(c *fiber.Ctx) error {
	list, err := generusService.LoadAll(c.UserContext(), h.Store, h.now())
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal membaca data generus: "+err.Error())
	}
	salah := service.Mismatch(list)
	return helper.JsonOK(c, "Audit desa/kelompok", fiber.Map{
		"jumlah": len(salah),
		"data":   generusDTO.FromModels(salah),
	})
}

// GET /analytics/kategori?field=hobi|skill — hitungan record per kategori.
func (h *AnalitikController) Kategori(c *fiber.Ctx) error {
	field, teksList, kataKunci, err := h.siapkanKategori(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Kategori "+field, fiber.Map{
		"field":    field,
		"kategori": service.HitungKategori(teksList, kataKunci),
	})
}

// GET /analytics/kategori/discover?field=hobi|skill&limit=10 — kandidat kata
// kunci baru dari bucket Lainnya. Murni advisory.
func (h *AnalitikController) Discover(c *fiber.Ctx) error {
	field, teksList, kataKunci, err := h.siapkanKategori(c)
	if err != nil {
		return err
	}
	limit := c.QueryInt("limit", 10)
	return helper.JsonOK(c, "Kandidat kata kunci "+field, fiber.Map{
		"field":    field,
		"kandidat": service.TemukanKataBaru(teksList, kataKunci, limit),
	})
}

// siapkanKategori memuat roster + map kata kunci (konfigurasi admin kalau
// ada, bawaan kalau belum).
func (h *AnalitikController) siapkanKategori(c *fiber.Ctx) (string, []string, map[string][]string, error) {
	field := strings.ToLower(strings.TrimSpace(c.Query("field", "hobi")))
	if field != "hobi" && field != "skill" {
		return "", nil, nil, helper.JsonError(c, fiber.StatusBadRequest, "Field harus hobi atau skill")
	}

	list, err := generusService.LoadAll(c.UserContext(), h.Store, h.now())
	if err != nil {
		return "", nil, nil, helper.JsonError(c, fiber.StatusBadGateway, "Gagal membaca data generus: "+err.Error())
	}

	teksList := make([]string, 0, len(list))
	for _, m := range list {
		teksList = append(teksList, ambilField(m, field))
	}

	kataKunci := map[string][]string{}
	ok, err := h.Konfig.Get(c.UserContext(), konfigService.PrefixKataKunci+field, &kataKunci)
	if err != nil || !ok || len(kataKunci) == 0 {
		kataKunci = service.DefaultKataKunci[field]
	}
	return field, teksList, kataKunci, nil
}

func ambilField(m generusModel.GenerusModel, field string) string {
	if field == "skill" {
		return m.Skill
	}
	return m.Hobi
}
