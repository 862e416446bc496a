package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Lostark   LostarkConfig
	Market    MarketConfig
	Batch     BatchConfig
	Scheduler SchedulerConfig
	CORS      CORSConfig
}

type ServerConfig struct {
	Port        string
	GinMode     string
	Environment string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// LostarkConfig 로스트아크 공식 API 접속 정보
type LostarkConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// MarketConfig 거래소 수집/조회 설정
type MarketConfig struct {
	// PageSize 업스트림 페이지당 요청 아이템 수 (API가 자체 상한을 가짐)
	PageSize int
	// PageDelay 페이지 요청 사이의 대기 시간 (rate limit 보호)
	PageDelay time.Duration
	// CacheTTL 조회 응답 인메모리 캐시 유지 시간
	CacheTTL time.Duration
	// EnhancementFilter 강화재료(50000) 카테고리 필수 포함 문자열
	EnhancementFilter string
}

// BatchConfig 배치 수집 게이트 설정
type BatchConfig struct {
	// ThresholdMinutes 마지막 성공 배치 이후 재실행까지의 최소 경과 시간(분)
	ThresholdMinutes int
}

// SchedulerConfig 프로세스 내 배치 폴링 설정
type SchedulerConfig struct {
	Enabled  bool
	CronSpec string
}

type CORSConfig struct {
	AllowedOrigins []string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Server: ServerConfig{
			Port:        getEnv("SERVER_PORT", "8080"),
			GinMode:     getEnv("GIN_MODE", "debug"),
			Environment: getEnv("ENVIRONMENT", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "admin"),
			Password: getEnv("DB_PASSWORD", "1234"),
			DBName:   getEnv("DB_NAME", "wednes"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Lostark: LostarkConfig{
			BaseURL: getEnv("LOSTARK_API_URL", "https://developer-lostark.game.onstove.com"),
			APIKey:  getEnv("LOSTARK_API_KEY", ""),
			Timeout: parseDuration(getEnv("LOSTARK_API_TIMEOUT", "30s"), 30*time.Second),
		},
		Market: MarketConfig{
			PageSize:          parseInt(getEnv("MARKET_PAGE_SIZE", "10"), 10),
			PageDelay:         parseDuration(getEnv("MARKET_PAGE_DELAY", "300ms"), 300*time.Millisecond),
			CacheTTL:          parseDuration(getEnv("MARKET_CACHE_TTL", "5s"), 5*time.Second),
			EnhancementFilter: getEnv("ENHANCEMENT_FILTER", "융화"),
		},
		Batch: BatchConfig{
			ThresholdMinutes: parseInt(getEnv("BATCH_THRESHOLD_MINUTES", "60"), 60),
		},
		Scheduler: SchedulerConfig{
			Enabled:  getEnv("ENABLE_SCHEDULER", "false") == "true",
			CronSpec: getEnv("SCHEDULER_CRON", "*/10 * * * *"),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseSlice(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		},
	}

	return config, nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(s string, defaultValue time.Duration) time.Duration {
	duration, err := time.ParseDuration(s)
	if err != nil {
		log.Printf("Invalid duration %s, using default %s", s, defaultValue)
		return defaultValue
	}
	return duration
}

func parseInt(s string, defaultValue int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Printf("Invalid number %s, using default %d", s, defaultValue)
		return defaultValue
	}
	return n
}

func parseSlice(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		result = append(result, strings.TrimSpace(p))
	}
	return result
}
