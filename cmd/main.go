package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/Zackrieg/PruebaImagineApps/internal/api"
	"github.com/Zackrieg/PruebaImagineApps/internal/auth"
	"github.com/Zackrieg/PruebaImagineApps/internal/cache"
	"github.com/Zackrieg/PruebaImagineApps/internal/config"
	consumer2 "github.com/Zackrieg/PruebaImagineApps/internal/consumer"
	"github.com/Zackrieg/PruebaImagineApps/internal/events"
	"github.com/Zackrieg/PruebaImagineApps/internal/repository"
	"github.com/Zackrieg/PruebaImagineApps/internal/service"
	"github.com/Zackrieg/PruebaImagineApps/migrations"
)

func connectDB(cfg config.Config) (*sql.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)

	var db *sql.DB
	var err error
	for i := 0; i < 10; i++ {
		db, err = sql.Open("mysql", dsn)
		if err == nil {
			err = db.Ping()
			if err == nil {
				log.Printf("Connected to DB %s", cfg.DBName)
				return db, nil
			}
		}
		log.Printf("Retry %d: Failed to connect to DB %s (%s:%s): %v", i+1, cfg.DBName, cfg.DBHost, cfg.DBPort, err)
		time.Sleep(3 * time.Second)
	}
	return nil, fmt.Errorf("failed to connect to DB %s at %s:%s after retries: %v", cfg.DBName, cfg.DBHost, cfg.DBPort, err)
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := connectDB(cfg)
	if err != nil {
		panic(err)
	}

	if err := migrations.AutoMigrate(3, db); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}

	if cfg.SeedUsername != "" && cfg.SeedPassword != "" {
		hash, err := auth.HashPassword(cfg.SeedPassword)
		if err != nil {
			log.Fatalf("Failed to hash seed password: %v", err)
		}
		if err := migrations.SeedUser(db, cfg.SeedUsername, hash); err != nil {
			log.Fatalf("Failed to seed user: %v", err)
		}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	entityCache := cache.NewRedis(rdb)

	kafkaWriter := config.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic)
	publisher := events.NewPublisher(kafkaWriter)

	if len(cfg.KafkaBrokers) > 0 {
		audit := consumer2.NewConsumer(cfg.KafkaBrokers, cfg.KafkaTopic)
		go audit.StartAuditConsumer(context.Background())
	}

	subjectRepo := repository.NewSubjectRepository(db)
	classRepo := repository.NewClassRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	studentClassRepo := repository.NewStudentClassRepository(db)
	userRepo := repository.NewUserRepository(db)

	subjectService := service.NewSubjectService(subjectRepo, entityCache, cfg.SubjectTTL, publisher)
	classService := service.NewClassService(classRepo, subjectRepo, entityCache, cfg.ClassTTL, publisher)
	studentService := service.NewStudentService(studentRepo, entityCache, cfg.StudentTTL, publisher)
	studentClassService := service.NewStudentClassService(studentClassRepo, studentRepo, classRepo, entityCache, cfg.StudentClassTTL, publisher)
	tokenService := auth.NewTokenService(userRepo, []byte(cfg.JWTSecret), cfg.TokenTTL)

	authHandler := api.NewAuthHandler(tokenService)
	subjectHandler := api.NewSubjectHandler(subjectService)
	classHandler := api.NewClassHandler(classService)
	studentHandler := api.NewStudentHandler(studentService)
	studentClassHandler := api.NewStudentClassHandler(studentClassService)

	e := echo.New()

	limiterConfig := middleware.RateLimiterConfig{
		Skipper: middleware.DefaultSkipper,
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(10),
				Burst:     30,
				ExpiresIn: 3 * time.Minute,
			}),
		IdentifierExtractor: func(context echo.Context) (string, error) {
			return context.Request().RemoteAddr, nil
		},
		ErrorHandler: func(context echo.Context, err error) error {
			return context.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
		DenyHandler: func(context echo.Context, identifier string, err error) error {
			return context.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
	}

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RateLimiterWithConfig(limiterConfig))

	api.Register(e, api.AccessGate(tokenService), authHandler, subjectHandler, classHandler, studentHandler, studentClassHandler)

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
