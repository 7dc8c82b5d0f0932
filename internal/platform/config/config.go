package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv          string
	APIPort         string
	DefaultLanguage string

	MongoURI string
	MongoDB  string

	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	SettingCacheTTL time.Duration

	AccessTokenSecret         []byte
	AccessTokenExp            time.Duration
	RefreshTokenSecret        []byte
	RefreshTokenExp           time.Duration
	RefreshTokenRememberMeExp time.Duration
	PermissionTokenSecret     []byte
	PermissionTokenExp        time.Duration

	// When enabled, token payloads are encrypted before signing. Each token
	// kind has its own key, independent of the signing secrets.
	PayloadEncryption    bool
	AccessPayloadKey     []byte
	RefreshPayloadKey    []byte
	PermissionPayloadKey []byte

	BcryptCost        int
	PasswordExpiredIn time.Duration

	AWSRegion    string
	AWSKey       string
	AWSSecret    string
	AWSBucket    string
	AWSBaseURL   string
	MaxPhotoSize int64
}

var AppConfig *Config

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	AppConfig = &Config{
		AppEnv:          getEnv("APP_ENV", "development"),
		APIPort:         getEnv("API_PORT", "8080"),
		DefaultLanguage: getEnv("APP_LANGUAGE", "en"),

		MongoURI: getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:  getEnv("MONGO_DATABASE", "backoffice"),

		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		RedisDB:         getEnvAsInt("REDIS_DB", 0),
		SettingCacheTTL: time.Duration(getEnvAsInt("SETTING_CACHE_TTL_SECONDS", 60)) * time.Second,

		AccessTokenSecret:         []byte(getEnv("AUTH_JWT_ACCESS_TOKEN_SECRET", "accesssecret")),
		AccessTokenExp:            time.Duration(getEnvAsInt("AUTH_JWT_ACCESS_TOKEN_EXP_MINUTES", 30)) * time.Minute,
		RefreshTokenSecret:        []byte(getEnv("AUTH_JWT_REFRESH_TOKEN_SECRET", "refreshsecret")),
		RefreshTokenExp:           time.Duration(getEnvAsInt("AUTH_JWT_REFRESH_TOKEN_EXP_DAYS", 7)) * 24 * time.Hour,
		RefreshTokenRememberMeExp: time.Duration(getEnvAsInt("AUTH_JWT_REFRESH_TOKEN_REMEMBER_ME_EXP_DAYS", 30)) * 24 * time.Hour,
		PermissionTokenSecret:     []byte(getEnv("AUTH_JWT_PERMISSION_TOKEN_SECRET", "permissionsecret")),
		PermissionTokenExp:        time.Duration(getEnvAsInt("AUTH_JWT_PERMISSION_TOKEN_EXP_MINUTES", 5)) * time.Minute,

		PayloadEncryption:    getEnvAsBool("AUTH_PAYLOAD_ENCRYPTION", false),
		AccessPayloadKey:     []byte(getEnv("AUTH_PAYLOAD_ACCESS_TOKEN_KEY", "")),
		RefreshPayloadKey:    []byte(getEnv("AUTH_PAYLOAD_REFRESH_TOKEN_KEY", "")),
		PermissionPayloadKey: []byte(getEnv("AUTH_PAYLOAD_PERMISSION_TOKEN_KEY", "")),

		BcryptCost:        getEnvAsInt("AUTH_PASSWORD_SALT_ROUNDS", 10),
		PasswordExpiredIn: time.Duration(getEnvAsInt("AUTH_PASSWORD_EXPIRED_DAYS", 182)) * 24 * time.Hour,

		AWSRegion:    getEnv("AWS_S3_REGION", "us-east-1"),
		AWSKey:       getEnv("AWS_CREDENTIAL_KEY", ""),
		AWSSecret:    getEnv("AWS_CREDENTIAL_SECRET", ""),
		AWSBucket:    getEnv("AWS_S3_BUCKET", "backoffice-assets"),
		AWSBaseURL:   getEnv("AWS_S3_BASE_URL", ""),
		MaxPhotoSize: int64(getEnvAsInt("FILE_IMAGE_MAX_SIZE_BYTES", 1048576)),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return fallback
}
