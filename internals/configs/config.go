package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config carries every external credential and tunable the service needs.
// It is built once in Load() and handed to the collaborators that use it;
// nothing outside this package reads the process environment afterwards.
type Config struct {
	Port string

	// Database
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	DBSSLMode  string

	// Admin auth
	JWTSecret      string
	SeedAdminEmail string
	SeedAdminPass  string

	// Midtrans (payment gateway)
	MidtransServerKey string

	// Supabase Storage (member photos)
	SupabaseURL        string
	SupabaseServiceKey string
	PhotoBucket        string

	// SMTP (welcome / renewal emails)
	SMTPHost   string
	SMTPPort   string
	SMTPUser   string
	SMTPPass   string
	SMTPSender string

	// Public base URL used on printed QR codes (verify landing page)
	PortalBaseURL string

	AllowedOrigins string
}

// Load reads .env (when present) and assembles the Config.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] no .env file found, using system environment")
	}

	cfg := &Config{
		Port:               getEnv("PORT", "3000"),
		DBUser:             os.Getenv("DB_USER"),
		DBPassword:         os.Getenv("DB_PASSWORD"),
		DBHost:             os.Getenv("DB_HOST"),
		DBPort:             getEnv("DB_PORT", "5432"),
		DBName:             os.Getenv("DB_NAME"),
		DBSSLMode:          getEnv("DB_SSLMODE", "require"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		SeedAdminEmail:     os.Getenv("SEED_ADMIN_EMAIL"),
		SeedAdminPass:      os.Getenv("SEED_ADMIN_PASSWORD"),
		MidtransServerKey:  os.Getenv("MIDTRANS_SERVER_KEY"),
		SupabaseURL:        os.Getenv("SUPABASE_PROJECT_URL"),
		SupabaseServiceKey: os.Getenv("SUPABASE_SERVICE_ROLE_KEY"),
		PhotoBucket:        getEnv("SUPABASE_PHOTO_BUCKET", "member-photos"),
		SMTPHost:           os.Getenv("SMTP_HOST"),
		SMTPPort:           getEnv("SMTP_PORT", "465"),
		SMTPUser:           os.Getenv("SMTP_USER"),
		SMTPPass:           os.Getenv("SMTP_PASS"),
		SMTPSender:         getEnv("SMTP_SENDER", "TEIN-UCC <no-reply@tein-ucc.com>"),
		PortalBaseURL:      getEnv("PORTAL_BASE_URL", "https://tein-ucc.com"),
		AllowedOrigins:     getEnv("ALLOWED_ORIGINS", "http://localhost:5173"),
	}

	if cfg.JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set, admin login will fail")
	}
	if cfg.MidtransServerKey == "" {
		log.Println("[WARN] MIDTRANS_SERVER_KEY is not set, checkout will fail")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
