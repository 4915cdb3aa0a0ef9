// file: internals/features/generus/controller/generus_controller.go
package controller

import (
	"bytes"
	"encoding/csv"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"generusku_backend/internals/constants"
	generusDTO "generusku_backend/internals/features/generus/dto"
	"generusku_backend/internals/features/generus/service"
	sampahModel "generusku_backend/internals/features/sampah/model"
	helper "generusku_backend/internals/helpers"
	"generusku_backend/internals/helpers/tanggal"
	"generusku_backend/internals/sheetdb"
)

var validate = validator.New()

type GenerusController struct {
	Store sheetdb.Store

	// Now bisa dioverride di test; default time.Now.
	Now func() time.Time
}

func NewGenerusController(store sheetdb.Store) *GenerusController {
	return &GenerusController{Store: store, Now: time.Now}
}

func (h *GenerusController) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

/* =========================================================
   LIST + FILTER
   GET /generus?desa=&kelompok=&gender=&jenjang=&nama=&umur_min=&umur_max=
               &tanpa_tanggal_lahir=&duplikat=&page=&per_page=
   ========================================================= */
func (h *GenerusController) List(c *fiber.Ctx) error {
	f := parseFilter(c)

	list, err := service.LoadAll(c.UserContext(), h.Store, h.now())
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal membaca data generus: "+err.Error())
	}

	filtered := service.Terapkan(list, f)

	paging := helper.ResolvePaging(c)
	page := service.Paginate(filtered, paging.Page, paging.PerPage)

	pg := helper.BuildPagination(len(filtered), paging)
	pg.Count = len(page)
	return helper.JsonList(c, "Data generus", generusDTO.FromModels(page), pg)
}

/* =========================================================
   EXPORT CSV (dataset terfilter, tanpa pagination)
   GET /generus/export
   ========================================================= */
func (h *GenerusController) ExportCSV(c *fiber.Ctx) error {
	f := parseFilter(c)

	list, err := service.LoadAll(c.UserContext(), h.Store, h.now())
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal membaca data generus: "+err.Error())
	}
	filtered := service.Terapkan(list, f)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"Nama", "Desa", "Kelompok", "Gender", "Tanggal Lahir", "Umur", "Jenjang Kelas", "Hobi", "Skill", "Timestamp"})
	for _, m := range filtered {
		_ = w.Write([]string{m.Nama, m.Desa, m.Kelompok, m.Gender, m.TanggalLahir, m.Umur, m.JenjangKelas, m.Hobi, m.Skill, m.Timestamp})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyusun CSV")
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="generus.csv"`)
	return c.Send(buf.Bytes())
}

/* =========================================================
   GET BY ID
   GET /generus/:id
   ========================================================= */
func (h *GenerusController) GetByID(c *fiber.Ctx) error {
	list, err := service.LoadAll(c.UserContext(), h.Store, h.now())
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal membaca data generus: "+err.Error())
	}
	m, ok := service.FindByID(list, c.Params("id"))
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Generus tidak ditemukan")
	}
	return helper.JsonOK(c, "Detail generus", generusDTO.FromModel(m))
}

/* =========================================================
   CREATE
   POST /generus
   ========================================================= */
func (h *GenerusController) Create(c *fiber.Ctx) error {
	var req generusDTO.CreateGenerusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalisasi()
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel()
	m.ID = uuid.NewString()
	m.Timestamp = tanggal.FormatTimestamp(h.now())

	if err := h.Store.Append(c.UserContext(), constants.SheetGenerus, m.ToRecord()); err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal menyimpan generus: "+err.Error())
	}

	service.Hiasi(&m, h.now())
	return helper.JsonCreated(c, "Generus berhasil ditambahkan", generusDTO.FromModel(m))
}

/* =========================================================
   UPDATE (timpa satu baris penuh)
   PUT /generus/:id
   ========================================================= */
func (h *GenerusController) Update(c *fiber.Ctx) error {
	var req generusDTO.UpdateGenerusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalisasi()
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// Posisi diresolve ulang dari ID tepat sebelum menulis; posisi snapshot
	// lama bisa sudah bergeser oleh delete lain.
	lama, err := service.ResolvePos(c.UserContext(), h.Store, c.Params("id"), h.now())
	if err != nil {
		if errors.Is(err, service.ErrTidakDitemukan) {
			return helper.JsonError(c, fiber.StatusNotFound, "Generus tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal membaca data generus: "+err.Error())
	}

	m := req.ToModel()
	m.ID = lama.ID
	m.Timestamp = tanggal.FormatTimestamp(h.now())

	if err := h.Store.UpdateAt(c.UserContext(), constants.SheetGenerus, lama.RowPos, m.ToRecord()); err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal memperbarui generus: "+err.Error())
	}

	service.Hiasi(&m, h.now())
	return helper.JsonUpdated(c, "Generus berhasil diperbarui", generusDTO.FromModel(m))
}

/* =========================================================
   DELETE → arsip ke Sampah, lalu hapus fisik dari roster
   DELETE /generus/:id
   ========================================================= */
func (h *GenerusController) Delete(c *fiber.Ctx) error {
	var req generusDTO.HapusGenerusRequest
	// body opsional; tanpa body = hapus tanpa metadata
	_ = c.BodyParser(&req)
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m, err := service.ResolvePos(c.UserContext(), h.Store, c.Params("id"), h.now())
	if err != nil {
		if errors.Is(err, service.ErrTidakDitemukan) {
			return helper.JsonError(c, fiber.StatusNotFound, "Generus tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal membaca data generus: "+err.Error())
	}

	arsip := sampahModel.SampahModel{
		GenerusModel: m,
		Menikah:      req.Menikah,
		Pindah:       req.Pindah,
		Alasan:       strings.TrimSpace(req.Alasan),
		DihapusPada:  tanggal.FormatTimestamp(h.now()),
	}
	if err := h.Store.Append(c.UserContext(), constants.SheetSampah, arsip.ToRecord()); err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal mengarsipkan generus: "+err.Error())
	}

	// Arsip dulu baru hapus: kalau delete gagal, data tidak hilang (paling
	// buruk ada duplikat di Sampah).
	if err := h.Store.DeleteAt(c.UserContext(), constants.SheetGenerus, m.RowPos); err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal menghapus generus: "+err.Error())
	}
	return helper.JsonDeleted(c, "Generus dipindahkan ke sampah", generusDTO.FromModel(m))
}

/* =========================================================
   BACKFILL ID
   POST /generus/backfill-id
   Baris lama dari era penomoran posisi belum punya kolom ID; endpoint ini
   mengisinya sekali supaya semua mutasi bisa beralamat ID.
   ========================================================= */
func (h *GenerusController) BackfillID(c *fiber.Ctx) error {
	list, err := service.LoadAll(c.UserContext(), h.Store, h.now())
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal membaca data generus: "+err.Error())
	}

	diisi := 0
	for _, m := range list {
		if m.ID != "" {
			continue
		}
		m.ID = uuid.NewString()
		if err := h.Store.UpdateAt(c.UserContext(), constants.SheetGenerus, m.RowPos, m.ToRecord()); err != nil {
			return helper.JsonError(c, fiber.StatusBadGateway, "Gagal mengisi ID: "+err.Error())
		}
		diisi++
	}
	return helper.JsonOK(c, "Backfill ID selesai", fiber.Map{"terisi": diisi, "total": len(list)})
}

/* ========================== QUERY PARSER ========================== */

// parseFilter membangun Filter immutable dari query string. Nilai multi
// dikirim sebagai CSV (desa=Sukolilo,Rungkut).
func parseFilter(c *fiber.Ctx) service.Filter {
	f := service.DefaultFilter()
	f.Desa = splitCSV(c.Query("desa"))
	f.Kelompok = splitCSV(c.Query("kelompok"))
	f.Gender = strings.TrimSpace(c.Query("gender"))
	f.Jenjang = splitCSV(c.Query("jenjang"))
	f.Nama = c.Query("nama")
	f.UmurMin = c.QueryInt("umur_min", service.UmurMinDefault)
	f.UmurMax = c.QueryInt("umur_max", service.UmurMaxDefault)
	f.TanpaTanggalLahir = c.QueryBool("tanpa_tanggal_lahir")
	f.Duplikat = c.QueryBool("duplikat")
	return f
}

func splitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
