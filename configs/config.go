package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	MongoURI        string
	DBName          string
	JWTSecret       string
	JWTTTL          time.Duration
	StripeSecretKey string
	AdminEmail      string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		Port:            getEnv("PORT", "5000"),
		MongoURI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:          getEnv("DB_NAME", "resturantDb"),
		JWTSecret:       getEnv("ACCESS_TOKEN_SECRET", "changeme"),
		JWTTTL:          time.Hour,
		StripeSecretKey: os.Getenv("PAYMENT_SECRET_KEY"),
		AdminEmail:      os.Getenv("ADMIN_EMAIL"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
