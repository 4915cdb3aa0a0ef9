package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"generusku_backend/internals/constants"
	generusModel "generusku_backend/internals/features/generus/model"
	sampahController "generusku_backend/internals/features/sampah/controller"
	sampahModel "generusku_backend/internals/features/sampah/model"
	"generusku_backend/internals/sheetdb"
)

func acuanTest() time.Time {
	return time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)
}

func newTestApp(t *testing.T) (*fiber.App, *sheetdb.MemoryStore) {
	t.Helper()

	store := sheetdb.NewMemoryStore()
	store.CreateTable(constants.SheetGenerus, generusModel.Headers)
	store.CreateTable(constants.SheetSampah, sampahModel.Headers)

	gc := NewGenerusController(store)
	gc.Now = acuanTest
	sc := sampahController.NewSampahController(store)
	sc.Now = acuanTest

	app := fiber.New()
	grp := app.Group("/generus")
	grp.Get("/", gc.List)
	grp.Get("/export", gc.ExportCSV)
	grp.Post("/backfill-id", gc.BackfillID)
	grp.Get("/:id", gc.GetByID)
	grp.Post("/", gc.Create)
	grp.Put("/:id", gc.Update)
	grp.Delete("/:id", gc.Delete)

	smp := app.Group("/sampah")
	smp.Get("/", sc.List)
	smp.Post("/:id/restore", sc.Restore)
	smp.Delete("/:id", sc.Purge)

	return app, store
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, map[string]any) {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]any{}
	if len(raw) > 0 && strings.Contains(resp.Header.Get(fiber.HeaderContentType), "json") {
		require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	}
	return resp.StatusCode, out
}

func dataObj(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	obj, ok := body["data"].(map[string]any)
	require.True(t, ok, "data bukan objek: %v", body)
	return obj
}

func TestCreateListRoundTrip(t *testing.T) {
	app, _ := newTestApp(t)

	code, body := doJSON(t, app, http.MethodPost, "/generus/", map[string]any{
		"nama":          "Ahmad Fauzi",
		"desa":          "Sukolilo",
		"kelompok":      "Keputih",
		"gender":        "L",
		"tanggal_lahir": "15/08/2015",
		"hobi":          "membaca",
	})
	require.Equal(t, http.StatusCreated, code)
	dibuat := dataObj(t, body)
	require.NotEmpty(t, dibuat["id"])
	// turunan dihitung saat baca: 15/08/2015 pada 20/03/2024 → 8 → Caberawit A
	assert.Equal(t, "8", dibuat["umur"])
	assert.Equal(t, "Caberawit A", dibuat["jenjang_kelas"])

	code, body = doJSON(t, app, http.MethodGet, "/generus/", nil)
	require.Equal(t, http.StatusOK, code)
	items := body["data"].([]any)
	require.Len(t, items, 1)
	it := items[0].(map[string]any)
	// nilai yang dikirim terbaca kembali utuh
	assert.Equal(t, "Ahmad Fauzi", it["nama"])
	assert.Equal(t, "Sukolilo", it["desa"])
	assert.Equal(t, "Keputih", it["kelompok"])
	assert.Equal(t, "15/08/2015", it["tanggal_lahir"])
}

func TestCreateValidasi(t *testing.T) {
	app, _ := newTestApp(t)

	code, _ := doJSON(t, app, http.MethodPost, "/generus/", map[string]any{"nama": "X"})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = doJSON(t, app, http.MethodPost, "/generus/", map[string]any{
		"nama": "Ahmad", "desa": "Sukolilo", "kelompok": "Keputih", "gender": "Z",
	})
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestUpdateMenimpaDanMenjagaID(t *testing.T) {
	app, _ := newTestApp(t)

	_, body := doJSON(t, app, http.MethodPost, "/generus/", map[string]any{
		"nama": "Ahmad", "desa": "Sukolilo", "kelompok": "Keputih", "hobi": "membaca",
	})
	id := dataObj(t, body)["id"].(string)

	code, body := doJSON(t, app, http.MethodPut, "/generus/"+id, map[string]any{
		"nama": "Ahmad Baru", "desa": "Rungkut", "kelompok": "Wonorejo",
	})
	require.Equal(t, http.StatusOK, code)
	diubah := dataObj(t, body)
	assert.Equal(t, id, diubah["id"])
	assert.Equal(t, "Ahmad Baru", diubah["nama"])
	// full-row overwrite: hobi yang tidak dikirim ikut kosong
	code, body = doJSON(t, app, http.MethodGet, "/generus/"+id, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "", dataObj(t, body)["hobi"])

	code, _ = doJSON(t, app, http.MethodPut, "/generus/tidak-ada", map[string]any{
		"nama": "X Y", "desa": "A", "kelompok": "B",
	})
	assert.Equal(t, http.StatusNotFound, code)
}

func TestDeleteKeSampahLaluRestoreDanPurge(t *testing.T) {
	app, store := newTestApp(t)

	for _, nama := range []string{"Ahmad", "Budi", "Citra"} {
		_, _ = doJSON(t, app, http.MethodPost, "/generus/", map[string]any{
			"nama": nama + " Test", "desa": "Sukolilo", "kelompok": "Keputih",
		})
	}
	_, body := doJSON(t, app, http.MethodGet, "/generus/", nil)
	items := body["data"].([]any)
	require.Len(t, items, 3)
	var idBudi string
	for _, it := range items {
		m := it.(map[string]any)
		if m["nama"] == "Budi Test" {
			idBudi = m["id"].(string)
		}
	}
	require.NotEmpty(t, idBudi)

	// hapus → pindah ke Sampah dengan metadata
	code, _ := doJSON(t, app, http.MethodDelete, "/generus/"+idBudi, map[string]any{
		"pindah": true, "alasan": "pindah domisili",
	})
	require.Equal(t, http.StatusOK, code)

	_, body = doJSON(t, app, http.MethodGet, "/generus/", nil)
	assert.Len(t, body["data"].([]any), 2)

	code, body = doJSON(t, app, http.MethodGet, "/sampah/", nil)
	require.Equal(t, http.StatusOK, code)
	arsip := body["data"].([]any)
	require.Len(t, arsip, 1)
	a := arsip[0].(map[string]any)
	assert.Equal(t, "Budi Test", a["nama"])
	assert.Equal(t, true, a["pindah"])
	assert.Equal(t, "pindah domisili", a["alasan"])

	// restore: kembali ke roster, arsip bersih
	code, _ = doJSON(t, app, http.MethodPost, "/sampah/"+idBudi+"/restore", nil)
	require.Equal(t, http.StatusOK, code)
	_, body = doJSON(t, app, http.MethodGet, "/generus/", nil)
	assert.Len(t, body["data"].([]any), 3)
	_, body = doJSON(t, app, http.MethodGet, "/sampah/", nil)
	assert.Len(t, body["data"].([]any), 0)

	// purge permanen
	code, _ = doJSON(t, app, http.MethodDelete, "/generus/"+idBudi, nil)
	require.Equal(t, http.StatusOK, code)
	code, _ = doJSON(t, app, http.MethodDelete, "/sampah/"+idBudi, nil)
	require.Equal(t, http.StatusOK, code)
	_, body = doJSON(t, app, http.MethodGet, "/sampah/", nil)
	assert.Len(t, body["data"].([]any), 0)

	// pastikan tidak ada baris nyangkut di store
	recs, err := store.ReadAll(context.Background(), constants.SheetGenerus)
	require.NoError(t, err)
	assert.Len(t, recs, 2)
}

func TestBackfillID(t *testing.T) {
	app, store := newTestApp(t)

	// baris warisan tanpa ID
	require.NoError(t, store.Append(context.Background(), constants.SheetGenerus, sheetdb.Record{
		"Nama": "Lama", "Desa": "Sukolilo", "Kelompok": "Keputih",
	}))

	code, body := doJSON(t, app, http.MethodPost, "/generus/backfill-id", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(1), dataObj(t, body)["terisi"])

	recs, err := store.ReadAll(context.Background(), constants.SheetGenerus)
	require.NoError(t, err)
	assert.NotEmpty(t, recs[0]["ID"])
}

func TestListFilterDanPagination(t *testing.T) {
	app, _ := newTestApp(t)

	for i := 0; i < 5; i++ {
		desa, kelompok := "Sukolilo", "Keputih"
		if i%2 == 1 {
			desa, kelompok = "Rungkut", "Wonorejo"
		}
		_, _ = doJSON(t, app, http.MethodPost, "/generus/", map[string]any{
			"nama": fmt.Sprintf("Anak %d", i), "desa": desa, "kelompok": kelompok,
		})
	}

	code, body := doJSON(t, app, http.MethodGet, "/generus/?desa=Sukolilo", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["data"].([]any), 3)

	code, body = doJSON(t, app, http.MethodGet, "/generus/?per_page=10&page=1", nil)
	require.Equal(t, http.StatusOK, code)
	pg := body["pagination"].(map[string]any)
	assert.Equal(t, float64(5), pg["total"])
	assert.Equal(t, float64(10), pg["per_page"])
}

func TestExportCSV(t *testing.T) {
	app, _ := newTestApp(t)
	_, _ = doJSON(t, app, http.MethodPost, "/generus/", map[string]any{
		"nama": "Ahmad Test", "desa": "Sukolilo", "kelompok": "Keputih",
	})

	req := httptest.NewRequest(http.MethodGet, "/generus/export", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/csv")
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "Ahmad Test")
	assert.Contains(t, string(raw), "Nama,Desa,Kelompok")
}
