package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort         string
	DetectorURL      string
	IndexURL         string
	CORSOrigins      string
	Environment      string
	LogLevel         string
	MaxMessageSizeMB int

	// Tracking thresholds
	FrameThreshold      int
	DirectionThreshold  int
	HistorySize         int
	RecentFrames        int
	ConfidenceThreshold float64
	ApprovedLabels      []string

	// Worker loop
	FrameQueueSize int
	PollTimeoutMS  int
	LivenessEvery  int

	CropDir string

	DBName     string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBSSLMode  string
}

func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// DSNForLog is the DSN without the password, safe for logging.
func (c *Config) DSNForLog() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=*** dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBName, c.DBSSLMode)
}

func (c *Config) IsDev() bool {
	return c.Environment == "dev"
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		HTTPPort:         getEnv("HTTP_PORT", "8081"),
		DetectorURL:      getEnv("DETECTOR_SERVICE_URL", "localhost:9000"),
		IndexURL:         getEnv("INDEX_SERVICE_URL", "localhost:9001"),
		CORSOrigins:      getEnv("CORS_ORIGINS", "*"),
		Environment:      getEnv("ENVIRONMENT", "production"),
		LogLevel:         getEnv("LOG_LEVEL", "INFO"),
		MaxMessageSizeMB: getEnvInt("MAX_MESSAGE_SIZE_MB", 50),

		FrameThreshold:      getEnvInt("FRAME_THRESHOLD", 10),
		DirectionThreshold:  getEnvInt("DIRECTION_THRESHOLD", 30),
		HistorySize:         getEnvInt("HISTORY_SIZE", 30),
		RecentFrames:        getEnvInt("RECENT_FRAMES", 15),
		ConfidenceThreshold: getEnvFloat("CONFIDENCE_THRESHOLD", 0.28),
		ApprovedLabels:      getEnvList("APPROVED_LABELS", "apple,banana,orange,broccoli,carrot,bottle,cup,bowl,book"),

		FrameQueueSize: getEnvInt("FRAME_QUEUE_SIZE", 64),
		PollTimeoutMS:  getEnvInt("POLL_TIMEOUT_MS", 50),
		LivenessEvery:  getEnvInt("LIVENESS_EVERY", 30),

		CropDir: getEnv("CROP_DIR", "./crops"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "smart_cart"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	if cfg.DBPassword == "" {
		fmt.Println("WARNING: DB_PASSWORD is not set!")
	}
	if cfg.DBName == "" {
		fmt.Println("WARNING: DB_NAME is not set, using default: smart_cart")
		cfg.DBName = "smart_cart"
	}

	return cfg
}

func getEnv(key string, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if intVal, err := strconv.Atoi(v); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if floatVal, err := strconv.ParseFloat(v, 64); err == nil {
			return floatVal
		}
	}
	return defaultVal
}

func getEnvList(key string, defaultVal string) []string {
	raw := getEnv(key, defaultVal)
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
