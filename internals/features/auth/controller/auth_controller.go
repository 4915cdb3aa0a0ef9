// file: internals/features/auth/controller/auth_controller.go
package controller

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"generusku_backend/internals/configs"
	"generusku_backend/internals/features/auth/service"
	konfigService "generusku_backend/internals/features/konfig/service"
	helper "generusku_backend/internals/helpers"
	"generusku_backend/internals/sheetdb"
)

var validate = validator.New()

type AuthController struct {
	Konfig *konfigService.KonfigService
	Now    func() time.Time
}

func NewAuthController(store sheetdb.Store) *AuthController {
	return &AuthController{
		Konfig: konfigService.NewKonfigService(store),
		Now:    time.Now,
	}
}

func (h *AuthController) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

// Pesan gagal sengaja generik: tidak membedakan password salah vs
// konfigurasi belum ada.
const pesanGagal = "Username atau password salah"

// POST /auth/login
// Username hanya dekorasi di gerbang admin; satu password global dari
// konfigurasi yang menentukan.
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Password wajib diisi")
	}

	tersimpan, ok, err := h.Konfig.GetRaw(c.UserContext(), konfigService.KeyAdminPassword)
	if err != nil {
		log.Printf("[ERROR] baca password admin: %v", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal membaca konfigurasi")
	}
	if !ok || !service.CekPassword(tersimpan, req.Password) {
		return helper.JsonError(c, fiber.StatusUnauthorized, pesanGagal)
	}

	token, err := service.BuatToken(configs.JWTSecret, configs.SessionTTL, h.now())
	if err != nil {
		log.Printf("[ERROR] mint token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat sesi")
	}

	c.Cookie(&fiber.Cookie{
		Name:     service.CookieAdmin,
		Value:    token,
		Expires:  h.now().Add(configs.SessionTTL),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	return helper.JsonOK(c, "Login berhasil", fiber.Map{
		"expires_at": h.now().Add(configs.SessionTTL).Format(time.RFC3339),
	})
}

// POST /auth/logout
func (h *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     service.CookieAdmin,
		Value:    "",
		Expires:  h.now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	return helper.JsonOK(c, "Logout berhasil", nil)
}

// GET /auth/me — cek sesi, dipanggil UI saat boot.
func (h *AuthController) Me(c *fiber.Ctx) error {
	role, _ := c.Locals("role").(string)
	return helper.JsonOK(c, "Sesi aktif", fiber.Map{"role": role})
}
