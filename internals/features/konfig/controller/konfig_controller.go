// file: internals/features/konfig/controller/konfig_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"generusku_backend/internals/features/konfig/service"
	helper "generusku_backend/internals/helpers"
	"generusku_backend/internals/sheetdb"
)

var validate = validator.New()

type KonfigController struct {
	Konfig *service.KonfigService
}

func NewKonfigController(store sheetdb.Store) *KonfigController {
	return &KonfigController{Konfig: service.NewKonfigService(store)}
}

// Daftar view yang punya preferensi kolom sendiri.
var viewValid = map[string]bool{
	"tabel": true,
	"kartu": true,
	"cetak": true,
}

/* ========================== KOLOM PER VIEW ========================== */

// GET /config/kolom/:view
func (h *KonfigController) GetKolom(c *fiber.Ctx) error {
	view := strings.ToLower(c.Params("view"))
	if !viewValid[view] {
		return helper.JsonError(c, fiber.StatusNotFound, "View tidak dikenal")
	}

	var kolom []string
	ok, err := h.Konfig.Get(c.UserContext(), service.PrefixKolom+view, &kolom)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal membaca konfigurasi: "+err.Error())
	}
	if !ok {
		kolom = []string{} // belum pernah disimpan = default kosong, UI pakai bawaannya
	}
	return helper.JsonOK(c, "Preferensi kolom", fiber.Map{"view": view, "kolom": kolom})
}

// PUT /config/kolom/:view
func (h *KonfigController) PutKolom(c *fiber.Ctx) error {
	view := strings.ToLower(c.Params("view"))
	if !viewValid[view] {
		return helper.JsonError(c, fiber.StatusNotFound, "View tidak dikenal")
	}

	var req struct {
		Kolom []string `json:"kolom" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.Konfig.Set(c.UserContext(), service.PrefixKolom+view, req.Kolom); err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal menyimpan konfigurasi: "+err.Error())
	}
	return helper.JsonUpdated(c, "Preferensi kolom disimpan", fiber.Map{"view": view, "kolom": req.Kolom})
}

/* ========================== KATA KUNCI KATEGORI ========================== */

// GET /config/kata-kunci?field=hobi|skill
func (h *KonfigController) GetKataKunci(c *fiber.Ctx) error {
	field, err := fieldParam(c)
	if err != nil {
		return err
	}

	var m map[string][]string
	ok, errGet := h.Konfig.Get(c.UserContext(), service.PrefixKataKunci+field, &m)
	if errGet != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal membaca konfigurasi: "+errGet.Error())
	}
	if !ok {
		m = map[string][]string{}
	}
	return helper.JsonOK(c, "Kata kunci kategori", fiber.Map{"field": field, "kata_kunci": m})
}

// PUT /config/kata-kunci?field=hobi|skill
func (h *KonfigController) PutKataKunci(c *fiber.Ctx) error {
	field, err := fieldParam(c)
	if err != nil {
		return err
	}

	var req struct {
		KataKunci map[string][]string `json:"kata_kunci" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// keyword disimpan lowercase supaya pencocokan substring konsisten
	norm := make(map[string][]string, len(req.KataKunci))
	for kategori, kws := range req.KataKunci {
		clean := make([]string, 0, len(kws))
		for _, kw := range kws {
			if kw = strings.ToLower(strings.TrimSpace(kw)); kw != "" {
				clean = append(clean, kw)
			}
		}
		norm[strings.TrimSpace(kategori)] = clean
	}

	if err := h.Konfig.Set(c.UserContext(), service.PrefixKataKunci+field, norm); err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal menyimpan konfigurasi: "+err.Error())
	}
	return helper.JsonUpdated(c, "Kata kunci kategori disimpan", fiber.Map{"field": field, "kata_kunci": norm})
}

/* ========================== PASSWORD ADMIN ========================== */

// PUT /config/password — rotasi password admin; disimpan sebagai hash bcrypt.
func (h *KonfigController) PutPassword(c *fiber.Ctx) error {
	var req struct {
		PasswordBaru string `json:"password_baru" validate:"required,min=6"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.PasswordBaru), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}
	if err := h.Konfig.SetRaw(c.UserContext(), service.KeyAdminPassword, string(hash)); err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal menyimpan password: "+err.Error())
	}
	return helper.JsonUpdated(c, "Password admin diperbarui", nil)
}

func fieldParam(c *fiber.Ctx) (string, error) {
	field := strings.ToLower(strings.TrimSpace(c.Query("field", "hobi")))
	if field != "hobi" && field != "skill" {
		return "", helper.JsonError(c, fiber.StatusBadRequest, "Field harus hobi atau skill")
	}
	return field, nil
}
