package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"agency-service/internal/config"
	"agency-service/internal/database/minio"
	"agency-service/internal/database/postgres"
	"agency-service/internal/database/redis"
	"agency-service/internal/event"
	"agency-service/internal/handlers"
	"agency-service/internal/repository"
	"agency-service/internal/services"

	"github.com/gofiber/fiber/v3"
)

func setupLogging() (*os.File, error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic: %v\n", r)
		}
	}()

	logDir := filepath.Join("/agency", "log", "agency_service")
	fmt.Println("Log directory:", logDir)
	err := os.MkdirAll(logDir, 0o755)
	if err != nil {
		return nil, fmt.Errorf("failed to create log directory: %v", err)
	}

	currentTime := time.Now()
	logFileName := fmt.Sprintf("log_%s.log", currentTime.Format("2006-01-02"))
	logFile := filepath.Join(logDir, logFileName)

	file, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %v", err)
	}

	log.SetOutput(file)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	slog.SetDefault(slog.New(slog.NewTextHandler(file, nil)))

	return file, nil
}

func main() {
	logFile, err := setupLogging()
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	cfg := config.New()
	log.Printf("Connecting to PostgreSQL with: host=%s, port=%s, user=%s, dbname=%s",
		cfg.PostgresCfg.Host, cfg.PostgresCfg.Port, cfg.PostgresCfg.Username, cfg.PostgresCfg.DBname)
	db, err := postgres.ConnectAndCreateDB(cfg.PostgresCfg)
	if err != nil {
		log.Printf("error connect to database: %s", err)
		go postgres.RetryConnectOnFailed(30*time.Second, &db, cfg.PostgresCfg)
	}

	// Redis, MinIO, and RabbitMQ are optional: the service degrades to
	// uncached stats, no upload archive, and no push notifications.
	var summaryCache *redis.SummaryCache
	redisClient, err := redis.NewRedisClient(cfg.RedisCfg)
	if err != nil {
		log.Printf("redis unavailable, caching disabled: %s", err)
	} else {
		defer redisClient.Close()
		summaryCache = redis.NewSummaryCache(redisClient)
	}

	minioClient, err := minio.NewMinioClient(cfg.MinioCfg)
	if err != nil {
		log.Printf("minio unavailable, import archiving disabled: %s", err)
		minioClient = nil
	}

	var notifier *event.NotificationPublisher
	rabbitConn, err := event.ConnectRabbitMQ(cfg.RabbitMQCfg)
	if err != nil {
		log.Printf("rabbitmq unavailable, notifications disabled: %s", err)
	} else {
		defer rabbitConn.Close()
		notifier = event.NewNotificationPublisher(rabbitConn)
	}

	customerRepo := repository.NewCustomerRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	productRepo := repository.NewProductRepository(db)
	policyRepo := repository.NewPolicyRepository(db)
	assetRepo := repository.NewAssetRepository(db)

	customerService := services.NewCustomerService(customerRepo, policyRepo, assetRepo)
	var statsCache services.StatsCache
	if summaryCache != nil {
		statsCache = summaryCache
	}
	policyService := services.NewPolicyService(policyRepo, statsCache)

	var importCache services.SummaryCache
	if summaryCache != nil {
		importCache = summaryCache
	}
	var importNotifier services.ImportNotifier
	if notifier != nil {
		importNotifier = notifier
	}
	importService := services.NewPolicyImportService(
		customerRepo, companyRepo, productRepo, policyRepo, assetRepo,
		importCache, importNotifier)

	app := fiber.New()
	app.Get("/checkhealth", func(c fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("Agency service is healthy")
	})

	handlers.NewCustomerHandler(customerService).RegisterRoutes(app)
	handlers.NewPolicyHandler(policyService).RegisterRoutes(app)
	handlers.NewMasterDataHandler(companyRepo, productRepo).RegisterRoutes(app)
	handlers.NewImportHandler(importService, minioClient, summaryCache).RegisterRoutes(app)

	log.Printf("Agency service listening on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
