package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret        string
	JWTRefreshSecret string
	PaymentServerKey string
	OSSBucket        string
	OSSEndpoint      string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ No .env file found, using system ENV")
		} else {
			log.Println("✅ .env file loaded")
		}
	} else {
		log.Println("🚀 Running on Railway, using system ENV")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	JWTRefreshSecret = GetEnv("JWT_REFRESH_SECRET")
	PaymentServerKey = GetEnv("MIDTRANS_SERVER_KEY")
	OSSBucket = GetEnv("OSS_BUCKET")
	OSSEndpoint = GetEnv("OSS_ENDPOINT")

	for _, key := range []string{"JWT_SECRET", "MIDTRANS_SERVER_KEY", "SENDGRID_API_KEY"} {
		if GetEnv(key) == "" {
			log.Printf("❌ %s is not set!", key)
		}
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
