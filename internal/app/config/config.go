package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceHost string
	ServicePort int
	JWT         JWTConfig
	Redis       RedisConfig
	MinIO       MinIOConfig
}

type JWTConfig struct {
	Secret        string
	ExpiresIn     time.Duration
	SigningMethod jwt.SigningMethod
}

type RedisConfig struct {
	Host        string
	Password    string
	Port        int
	User        string
	DialTimeout time.Duration
	ReadTimeout time.Duration
}

type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

const (
	envPort      = "PORT"
	envJWTSecret = "JWT_SECRET"

	envRedisHost = "REDIS_HOST"
	envRedisPort = "REDIS_PORT"
	envRedisUser = "REDIS_USER"
	envRedisPass = "REDIS_PASSWORD"

	envMinIOEndpoint  = "MINIO_ENDPOINT"
	envMinIOAccessKey = "MINIO_ACCESS_KEY"
	envMinIOSecretKey = "MINIO_SECRET_KEY"
	envMinIOBucket    = "MINIO_BUCKET"
)

func NewConfig() (*Config, error) {
	var err error

	configName := "config"
	_ = godotenv.Load()
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	viper.SetConfigName(configName)
	viper.SetConfigType("toml")
	viper.AddConfigPath("config")
	viper.AddConfigPath(".")

	cfg := &Config{}

	// Файл конфигурации опционален, всё можно задать через окружение
	if err = viper.ReadInConfig(); err == nil {
		if err = viper.Unmarshal(cfg); err != nil {
			return nil, err
		}
	} else {
		log.Warn("config file not found, using environment only")
	}

	// Порт сервиса: PORT из окружения, по умолчанию 3001
	if cfg.ServicePort == 0 {
		cfg.ServicePort = 3001
	}
	if portStr := os.Getenv(envPort); portStr != "" {
		cfg.ServicePort, err = strconv.Atoi(portStr)
		if err != nil {
			return nil, errors.New("PORT must be int value")
		}
	}

	// JWT: секрет обязателен и берётся только из окружения
	secret := os.Getenv(envJWTSecret)
	if secret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}
	cfg.JWT = JWTConfig{
		Secret:        secret,
		ExpiresIn:     time.Hour,
		SigningMethod: jwt.SigningMethodHS256,
	}

	// Redis для blacklist токенов
	cfg.Redis.Host = os.Getenv(envRedisHost)
	if cfg.Redis.Host == "" {
		cfg.Redis.Host = "localhost"
	}
	cfg.Redis.Port = 6379
	if portStr := os.Getenv(envRedisPort); portStr != "" {
		cfg.Redis.Port, err = strconv.Atoi(portStr)
		if err != nil {
			return nil, errors.New("REDIS_PORT must be int value")
		}
	}
	cfg.Redis.Password = os.Getenv(envRedisPass)
	cfg.Redis.User = os.Getenv(envRedisUser)
	cfg.Redis.DialTimeout = 10 * time.Second
	cfg.Redis.ReadTimeout = 10 * time.Second

	// MinIO для фотографий сотрудников (опционально)
	cfg.MinIO.Endpoint = os.Getenv(envMinIOEndpoint)
	cfg.MinIO.AccessKey = os.Getenv(envMinIOAccessKey)
	cfg.MinIO.SecretKey = os.Getenv(envMinIOSecretKey)
	cfg.MinIO.Bucket = os.Getenv(envMinIOBucket)
	if cfg.MinIO.Bucket == "" {
		cfg.MinIO.Bucket = "employee-photos"
	}

	log.Info("config parsed")

	return cfg, nil
}
