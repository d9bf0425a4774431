package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/joho/godotenv/autoload"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Market   MarketConfig
}

type ServerConfig struct {
	Addr               string
	GinMode            string
	AllowedCORSOrigins []string
	// QueueDriver selects the reconciliation queue: "redis" or "memory".
	QueueDriver string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string

	// pool sizing; zero keeps the pgx default
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	ConnectTimeout  time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int

	PoolSize    int
	DialTimeout time.Duration
}

type MarketConfig struct {
	TeacherPassword    string
	SessionTTL         time.Duration
	RememberSessionTTL time.Duration
	CartTTL            time.Duration
	DefaultPassword    string
}

var AppConfig *Config

func LoadConfig() *Config {
	AppConfig = &Config{
		Server:   GetServerConfig(),
		Database: GetDatabaseConfig(),
		Redis:    GetRedisConfig(),
		Market:   GetMarketConfig(),
	}

	return AppConfig
}

func LoadTestConfig() *Config {
	testConfig := &DatabaseConfig{
		Host:     "localhost",
		Port:     "5433", // test DB port
		User:     "postgres",
		Password: "postgres",
		DBName:   "test_db",
		SSLMode:  "disable",

		MaxConns:        10,
		MinConns:        1,
		MaxConnLifetime: time.Hour,
		MaxConnIdleTime: 5 * time.Minute,
		ConnectTimeout:  5 * time.Second,
	}

	testRedisConfig := RedisConfig{
		Host:     "localhost",
		Port:     "6380", // test Redis port
		Password: "",
		DB:       1,

		PoolSize:    10,
		DialTimeout: 3 * time.Second,
	}

	return &Config{
		Server: ServerConfig{
			Addr:        ":0",
			GinMode:     "test",
			QueueDriver: "memory",
		},
		Database: *testConfig,
		Redis:    testRedisConfig,
		Market: MarketConfig{
			TeacherPassword:    "teacher-test",
			SessionTTL:         time.Hour,
			RememberSessionTTL: 7 * 24 * time.Hour,
			CartTTL:            time.Hour,
			DefaultPassword:    "1234",
		},
	}
}

func GetServerConfig() ServerConfig {
	return ServerConfig{
		Addr:               getEnv("SERVER_ADDR", ":8080"),
		GinMode:            getEnv("GIN_MODE", "release"),
		AllowedCORSOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
		QueueDriver:        getEnv("QUEUE_DRIVER", "redis"),
	}
}

func GetDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "postgres"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),

		MaxConns:        int32(getInt("DB_MAX_CONNS", 25)),
		MinConns:        int32(getInt("DB_MIN_CONNS", 2)),
		MaxConnLifetime: getDuration("DB_MAX_CONN_LIFETIME", time.Hour),
		MaxConnIdleTime: getDuration("DB_MAX_CONN_IDLE_TIME", 30*time.Minute),
		ConnectTimeout:  getDuration("DB_CONNECT_TIMEOUT", 5*time.Second),
	}
}

func GetRedisConfig() RedisConfig {
	db, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		panic(err)
	}

	return RedisConfig{
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       db,

		PoolSize:    getInt("REDIS_POOL_SIZE", 20),
		DialTimeout: getDuration("REDIS_DIAL_TIMEOUT", 3*time.Second),
	}
}

func GetMarketConfig() MarketConfig {
	return MarketConfig{
		TeacherPassword:    getEnv("TEACHER_PASSWORD", "teacher2026"),
		SessionTTL:         getDuration("TEACHER_SESSION_TTL", 12*time.Hour),
		RememberSessionTTL: getDuration("TEACHER_REMEMBER_TTL", 7*24*time.Hour),
		CartTTL:            getDuration("CART_TTL", 24*time.Hour),
		DefaultPassword:    getEnv("STUDENT_DEFAULT_PASSWORD", "1234"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	n, err := strconv.Atoi(getEnv(key, strconv.Itoa(fallback)))
	if err != nil {
		panic(err)
	}
	return n
}

func getDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, fallback.String()))
	if err != nil {
		panic(err)
	}
	return d
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
