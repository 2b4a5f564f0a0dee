package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fadilmartias/submission-admin/internal/config"
	"github.com/fadilmartias/submission-admin/internal/domain/fiber/handler"
	"github.com/fadilmartias/submission-admin/internal/filter"
	"github.com/fadilmartias/submission-admin/internal/model"
	"github.com/fadilmartias/submission-admin/internal/repository"
	"github.com/fadilmartias/submission-admin/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()
	uploadConfig := config.LoadUploadConfig()
	filterConfig := config.LoadFilterConfig()

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		// multipart overhead on top of the largest accepted file
		BodyLimit: int(uploadConfig.MaxBytes) + 1024*1024,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			// Status code defaults to 500
			code := fiber.StatusInternalServerError

			// Retrieve the custom status code if it's a *fiber.Error
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"success": false, "message": message})
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	// Use middleware
	app.Use(recover.New(recover.Config{
		EnableStackTrace: !appConfig.IsProduction(),
	}))

	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed, // 1
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.IsProduction()
		},
	}))

	db := ConnectDB()

	app.Use(healthcheck.New(healthcheck.Config{
		ReadinessProbe: func(c *fiber.Ctx) bool {
			sqlDB, err := db.DB()
			return err == nil && sqlDB.PingContext(c.UserContext()) == nil
		},
	}))

	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))

	submissionRepo := repository.NewSubmissionRepository(db)
	filterRepo := repository.NewFilterRepository(db)

	ranker := filter.NewRanker(filterConfig.EducationLevels)
	pipeline := filter.NewPipeline(ranker, filter.WithDebug(appConfig.Debug))

	submissionUC := usecase.NewSubmissionUsecase(submissionRepo, filterRepo, pipeline)
	filterUC := usecase.NewFilterUsecase(filterRepo, ranker)

	api := app.Group("/api")
	handler.NewSubmissionHandler(submissionUC).RegisterRoutes(api)
	handler.NewFilterHandler(filterUC).RegisterRoutes(api)
	handler.NewUploadHandler(submissionUC, uploadConfig.MaxBytes, uploadConfig.RateLimit).RegisterRoutes(api)

	if appConfig.Debug {
		// Monitor goroutine count
		go func() {
			ticker := time.NewTicker(1 * time.Minute)
			defer ticker.Stop()

			for range ticker.C {
				log.Printf("Active goroutines: %d", runtime.NumGoroutine())
			}
		}()
	}

	go func() {
		log.Println("Server running on ", appConfig.Port)
		if err := app.Listen(appConfig.Port); err != nil {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Println("Stopped.")
}

func ConnectDB() *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	db, err := gorm.Open(postgres.Open(dbConfig.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		log.Fatalf("Could not get database instance: %v", err)
	}
	if !appConfig.IsProduction() {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := pgDB.PingContext(ctx); err != nil {
		log.Fatalf("Could not ping database: %v", err)
	}

	err = db.AutoMigrate(
		&model.Submission{},
		&model.WorkExperience{},
		&model.Education{},
		&model.Degree{},
		&model.Skill{},
		&model.SubmissionFilter{},
	)
	if err != nil {
		log.Fatal("migration failed: ", err)
	}
	return db
}
