// file: internals/features/auth/service/password_service.go
package service

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// CekPassword membandingkan password kiriman dengan nilai tersimpan di
// konfigurasi. Nilai berawalan "$2" diperlakukan sebagai hash bcrypt (hasil
// rotasi lewat API); nilai lain dibandingkan plaintext constant-time (warisan
// spreadsheet lama yang menyimpan password apa adanya).
func CekPassword(tersimpan, kiriman string) bool {
	tersimpan = strings.TrimSpace(tersimpan)
	if tersimpan == "" {
		return false
	}
	if strings.HasPrefix(tersimpan, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(tersimpan), []byte(kiriman)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(tersimpan), []byte(kiriman)) == 1
}
