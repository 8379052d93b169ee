package config

import "os"

// Config holds everything read from the environment. Values come from a
// .env file (loaded in main via godotenv) or the process environment,
// with hardcoded fallbacks so a bare `go run` works out of the box.
type Config struct {
	Port          string
	MongoURI      string
	MongoDB       string
	Env           string
	AllowedOrigin string
}

func Load() Config {
	return Config{
		Port:          getenv("PORT", "5000"),
		MongoURI:      getenv("MONGODB_URI", "mongodb://127.0.0.1:27017"),
		MongoDB:       getenv("MONGO_DB", "vibe_commerce"),
		Env:           getenv("APP_ENV", "development"),
		AllowedOrigin: getenv("ALLOWED_ORIGIN", "http://localhost:3000"),
	}
}

// IsDevelopment gates the error detail leaked on 500 responses.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
