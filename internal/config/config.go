package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type HTTPServer struct {
	Host            string
	Port            string
	ShutdownTimeout time.Duration
	CORSOrigins     []string
	// Proxies allowed to set X-Forwarded-For. Empty trusts none.
	TrustedProxies  []string

	// "RW" or "RO". A read-only instance rejects writes.
	Mode string
}

type RedisCache struct {
	Host     string
	Port     string
	Password string
}

type Postgres struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type Auth struct {
	Secret   string
	TokenTTL time.Duration

	// Requests per second and burst for register/login.
	RateLimit float64
	RateBurst int
}

type S3 struct {
	// "real", "mock" (S3-compatible endpoint) or "none" (posters are not stored).
	ClientType   string
	MockEndpoint string
	Bucket       string
	Prefix       string
	PublicURL    string
}

type Config struct {
	HTTP     HTTPServer
	Redis    RedisCache
	Postgres Postgres
	Auth     Auth
	S3       S3
	LogLevel string
}

const logtag = "[config]"

func Load() *Config {
	configPath := flag.String("config", "", "path env file")
	flag.Parse()

	if *configPath != "" {
		if err := godotenv.Load(*configPath); err != nil {
			log.Fatalf("%s err loading env from file : %v", logtag, err)
		}
		log.Printf("%s using env from : %s", logtag, *configPath)
	} else {
		log.Printf("%s using env from .env", logtag)
		_ = godotenv.Load()
	}

	cfg := &Config{
		HTTP:     *newHTTP(),
		Redis:    *newRedis(),
		Postgres: *newPostgres(),
		Auth:     *newAuth(),
		S3:       *newS3(),
		LogLevel: getenv("LOG_LEVEL", "info"),
	}

	log.Printf("%s backend config loaded, http port %s, db %s@%s:%s/%s\n", logtag,
		cfg.HTTP.Port, cfg.Postgres.User, cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)
	return cfg
}

func newHTTP() *HTTPServer {
	return &HTTPServer{
		Port:            getenv("HTTP_PORT", "5000"),
		Host:            getenv("HTTP_HOST", "localhost"),
		ShutdownTimeout: getenvDuration("HTTP_SHUTDOWN_TIMEOUT", 5*time.Second),
		CORSOrigins:     getenvList("CORS_ORIGINS", "http://localhost:3001"),
		TrustedProxies:  getenvList("TRUSTED_PROXIES", ""),
		Mode:            getenv("HTTP_MODE", "RW"),
	}
}

func newRedis() *RedisCache {
	return &RedisCache{
		Port:     getenv("REDIS_PORT", "6379"),
		Host:     getenv("REDIS_HOST", "redis"),
		Password: getenvSecret("REDIS_PASSWORD", "shared"),
	}
}

func newPostgres() *Postgres {
	return &Postgres{
		Host:     getenv("DB_HOST", "localhost"),
		Port:     getenv("DB_PORT", "5432"),
		User:     getenv("DB_USER", "admin"),
		Password: getenvSecret("DB_PASSWORD", "shared"),
		DBName:   getenv("DB_NAME", "movies"),
		SSLMode:  getenv("DB_SSLMODE", "disable"),
	}
}

func newAuth() *Auth {
	return &Auth{
		Secret:    getenvSecret("JWT_SECRET", "shared"),
		TokenTTL:  getenvDuration("JWT_TTL", 30*24*time.Hour),
		RateLimit: getenvFloat("AUTH_RATE_LIMIT", 5),
		RateBurst: getenvInt("AUTH_RATE_BURST", 10),
	}
}

func newS3() *S3 {
	return &S3{
		ClientType:   getenv("S3_CLIENT_TYPE", "none"),
		MockEndpoint: getenv("MOCK_S3_ENDPOINT", "http://mock-s3-server:9090"),
		Bucket:       getenv("S3_BUCKET", "movie-posters"),
		Prefix:       getenv("S3_PREFIX", "movie_posters/"),
		PublicURL:    getenv("S3_PUBLIC_URL", ""),
	}
}

func getenv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined. Using default value %s\n", logtag, key, defaultValue)
		return defaultValue
	}
	fmt.Printf("%s %s = %s\n", logtag, key, val)
	return val
}

func getenvSecret(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined. Using default value\n", logtag, key)
		return defaultValue
	}
	fmt.Printf("%s %s is set\n", logtag, key)
	return val
}

func getenvDuration(key string, defaultValue time.Duration) time.Duration {
	raw := getenv(key, defaultValue.String())
	d, err := time.ParseDuration(raw)
	if err != nil {
		fmt.Printf("%s %s = %s is not a duration. Using default value %s\n", logtag, key, raw, defaultValue)
		return defaultValue
	}
	return d
}

func getenvInt(key string, defaultValue int) int {
	raw := getenv(key, strconv.Itoa(defaultValue))
	v, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Printf("%s %s = %s is not an int. Using default value %d\n", logtag, key, raw, defaultValue)
		return defaultValue
	}
	return v
}

func getenvFloat(key string, defaultValue float64) float64 {
	raw := getenv(key, strconv.FormatFloat(defaultValue, 'f', -1, 64))
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		fmt.Printf("%s %s = %s is not a number. Using default value %v\n", logtag, key, raw, defaultValue)
		return defaultValue
	}
	return v
}

// Comma separated.
func getenvList(key, defaultValue string) []string {
	raw := getenv(key, defaultValue)
	list := make([]string, 0)
	for _, s := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			list = append(list, trimmed)
		}
	}
	return list
}
