package api

import (
	"context"
	"log"

	"backend/internal/app/config"
	"backend/internal/app/dsn"
	"backend/internal/app/handler"
	"backend/internal/app/middleware"
	"backend/internal/app/redis"
	"backend/internal/app/repository"
	"backend/internal/app/storage"
	"backend/internal/pkg"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func StartServer() {
	log.Println("Starting server")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal("ошибка чтения конфигурации: ", err)
	}

	dsnStr := dsn.FromEnv()
	if dsnStr == "" {
		logrus.Fatal("DSN string is empty. Check your .env file")
	}

	repo, err := repository.New(dsnStr)
	if err != nil {
		logrus.Fatal("ошибка инициализации репозитория: ", err)
	}

	// Redis нужен для blacklist токенов; без него logout деградирует
	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logrus.Error("redis недоступен, отзыв токенов отключен: ", err)
		redisClient = nil
	}

	// MinIO нужен только для фотографий сотрудников
	var minioClient *storage.MinIOClient
	if cfg.MinIO.Endpoint != "" {
		minioClient, err = storage.NewMinIOClient(cfg.MinIO)
		if err != nil {
			logrus.Error("minio недоступен, загрузка фотографий отключена: ", err)
			minioClient = nil
		}
	}

	authHandler := handler.NewAuthHandler(repo, redisClient, cfg)
	h := handler.NewHandler(repo, minioClient, authHandler)
	authMiddleware := middleware.NewAuthMiddleware(redisClient, cfg)

	r := gin.Default()
	// Кросс-доменные запросы разрешены с любого origin
	r.Use(cors.Default())

	app := pkg.NewApp(cfg, r, h, authMiddleware)
	app.RunApp()

	log.Println("Server down")
}
