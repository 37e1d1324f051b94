package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"acuario/internal/captcha"
	"acuario/internal/config"
	"acuario/internal/handlers"
	"acuario/internal/repositories"
	"acuario/internal/routes"
	"acuario/internal/services"
	"acuario/internal/validation"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "acuario/docs"
)

func Run() {
	cfg := config.LoadConfig()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}
	jwtSecret := []byte(cfg.JWTSecret)

	// === DB ===
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		log.Fatal("Ошибка подключения к БД: ", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	if err := db.Ping(); err != nil {
		log.Fatal("БД недоступна: ", err)
	}

	// === Repos ===
	contactRepo := repositories.NewContactRepository(db)
	userRepo := repositories.NewUserRepository(db)
	stateRepo := repositories.NewStateRepository(db)

	// === Services ===
	captchaClient := captcha.NewClient(cfg.Recaptcha.SecretKey)
	if captchaClient.DryRun {
		log.Print("[captcha] no secret configured, running in dry-run mode")
	}

	var emailService services.EmailService
	if cfg.Email.SMTPHost != "" && cfg.Email.OwnerEmail != "" {
		emailService = services.NewEmailService(
			cfg.Email.SMTPHost,
			cfg.Email.SMTPPort,
			cfg.Email.SMTPUser,
			cfg.Email.SMTPPassword,
			cfg.Email.FromEmail,
			cfg.Email.OwnerEmail,
		)
	}

	contactService := services.NewContactService(contactRepo, captchaClient, emailService)
	authService := services.NewAuthService(userRepo)
	leadService := services.NewLeadService(contactRepo, stateRepo)

	// === Handlers ===
	contactHandler := handlers.NewContactHandler(contactService)
	authHandler := handlers.NewAuthHandler(authService, jwtSecret)
	leadHandler := handlers.NewLeadHandler(leadService)

	// === Gin ===
	validation.Register()

	router := gin.Default()
	router.Use(corsMiddleware())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupRoutes(router, jwtSecret, contactHandler, authHandler, leadHandler)

	// === Run ===
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}
	go func() {
		log.Printf("API escuchando en http://localhost:%d", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Ошибка запуска сервера: ", err)
		}
	}()

	// graceful shutdown: дожидаемся in-flight запросов, потом закрываем пул
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Print("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	if err := db.Close(); err != nil {
		log.Printf("Ошибка закрытия БД: %v", err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
