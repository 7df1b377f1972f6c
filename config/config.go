package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port  string
	DBUrl string
	// CORS
	AllowedOrigins []string
	// Object storage (S3-compatible)
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3Region          string
	S3Bucket          string
	S3Endpoint        string // empty for AWS, set for MinIO/Wasabi
	// LLM Configuration
	GeminiAPIKey string
	GeminiModel  string
	// Job search API
	JobSearchURL    string
	JobSearchAppID  string
	JobSearchAppKey string
	// Redis Configuration
	RedisURL      string
	RedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitUploadThreshold int
	RateLimitGlobalThreshold int
	UploadMaxPerDay          int
	// Parser tunables
	ParserLineBreakDelta float64
	ParserWordGapDelta   float64
	ParserGlyphWidth     float64
}

func LoadConfig() (*Config, error) {
	// Load .env when present; ignored in production where real env vars rule.
	_ = godotenv.Load()

	cfg := &Config{
		Port:  getEnv("PORT", "8080"),
		DBUrl: getEnv("DATABASE_URL", ""),
		// CORS: comma-separated list of allowed origins
		AllowedOrigins: splitCSV(getEnv("ALLOWED_ORIGINS", "")),
		// Object storage
		S3AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
		S3Region:          getEnv("S3_REGION", "us-east-1"),
		S3Bucket:          getEnv("S3_BUCKET", "resumes"),
		S3Endpoint:        getEnv("S3_ENDPOINT", ""),
		// LLM
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		// Job search
		JobSearchURL:    getEnv("JOB_SEARCH_URL", ""),
		JobSearchAppID:  getEnv("JOB_SEARCH_APP_ID", ""),
		JobSearchAppKey: getEnv("JOB_SEARCH_APP_KEY", ""),
		// Redis
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),    // 1 minute window
		RateLimitUploadThreshold: getEnvInt("RATE_LIMIT_UPLOAD_THRESHOLD", 10),  // 10 uploads per window
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100), // 100 requests per window
		UploadMaxPerDay:          getEnvInt("UPLOAD_MAX_PER_DAY", 50),           // per user
		// Parser tunables: the layout reconstruction thresholds in document
		// units. Defaults match typical resume typography.
		ParserLineBreakDelta: getEnvFloat("PARSER_LINE_BREAK_DELTA", 5),
		ParserWordGapDelta:   getEnvFloat("PARSER_WORD_GAP_DELTA", 3),
		ParserGlyphWidth:     getEnvFloat("PARSER_GLYPH_WIDTH", 5),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}
	if cfg.GeminiAPIKey == "" {
		log.Println("WARNING: GEMINI_API_KEY not configured. Career recommendations will be unavailable.")
	}

	return cfg, nil
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvFloat returns a float environment variable or fallback if not set/invalid
func getEnvFloat(key string, fallback float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}
