package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the process reads from the environment at startup.
type Config struct {
	MongoURI  string
	JWTSecret string
	Port      string
	AppEnv    string
}

func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	return Config{
		MongoURI:  os.Getenv("MONGOURI"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		Port:      port,
		AppEnv:    os.Getenv("APP_ENV"),
	}
}
