package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	JWTSecret             string
	SpreadsheetID         string
	GoogleCredentialsFile string

	// Feature flags untuk affordance tambah/edit/hapus
	EnableAdd    bool
	EnableEdit   bool
	EnableDelete bool

	// Umur sesi admin (cookie HTTP-only)
	SessionTTL time.Duration
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	SpreadsheetID = GetEnv("SPREADSHEET_ID")
	GoogleCredentialsFile = GetEnv("GOOGLE_CREDENTIALS_FILE")

	EnableAdd = getBool("ENABLE_ADD", true)
	EnableEdit = getBool("ENABLE_EDIT", true)
	EnableDelete = getBool("ENABLE_DELETE", true)

	SessionTTL = getDuration("SESSION_TTL", 2*time.Hour)

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	} else {
		log.Println("✅ JWT_SECRET berhasil dimuat.")
	}

	if SpreadsheetID == "" {
		log.Println("❌ SPREADSHEET_ID belum diset!")
	} else {
		log.Println("✅ SPREADSHEET_ID berhasil dimuat.")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func getBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return def
}
