package main

import (
	"log"
	"time"

	"catering-service/internal/config"
	httpctl "catering-service/internal/controllers/http"
	"catering-service/internal/infra"
	mmysql "catering-service/internal/infra/mysql"
	"catering-service/internal/infra/rabbitmq"
	"catering-service/internal/pdfgen"
	"catering-service/internal/render"
	mysqlrepo "catering-service/internal/repository/mysql"
	"catering-service/internal/services"
	"catering-service/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zlog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zlog.Sync()

	db, err := mmysql.NewMySQL(cfg.MySQLDSN())
	if err != nil {
		zlog.Fatal("db: connect", zap.Error(err))
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetMaxIdleConns(20)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	repo := mysqlrepo.NewOrderRepository(db)

	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQURL, "orders.exchange", zlog)
	if err != nil {
		zlog.Fatal("failed to init publisher", zap.Error(err))
	}
	defer publisher.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		DB:           0,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})

	orderService := services.NewOrderService(repo, publisher, zlog)
	orderService.SetRedisClient(redisClient)

	renderer := render.NewChromeRenderer(zlog)
	fallback := pdfgen.NewGenerator(zlog, cfg.ArabicFontPath)
	logoClient := infra.NewLogoClient(cfg.CompanyLogoURL, 5*time.Second)

	docService := services.NewDocumentService(renderer, fallback, logoClient, zlog)

	handler := httpctl.NewHandler(orderService, docService, logoClient, db, redisClient, zlog)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	handler.RegisterRoutes(r)

	zlog.Info("starting catering service", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		zlog.Fatal("server run", zap.Error(err))
	}
}
