package main

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"fileportal/internal/config"
	"fileportal/internal/database"
	"fileportal/internal/domain"
	"fileportal/internal/domain/admin"
	"fileportal/internal/domain/auth"
	"fileportal/internal/domain/chat"
	"fileportal/internal/domain/files"
	"fileportal/internal/domain/folders"
	"fileportal/internal/domain/messages"
	"fileportal/internal/domain/notifications"
	"fileportal/internal/domain/profile"
	"fileportal/internal/domain/tabs"
	"fileportal/internal/domain/vault"
	"fileportal/internal/middleware"
	"fileportal/internal/repository"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	if !strings.HasPrefix(cfg.DatabaseURL, "postgres") {
		if dir := filepath.Dir(cfg.DatabaseURL); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				log.Fatalf("create database dir: %v", err)
			}
		}
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Session{},
		&tabs.CustomTab{},
		&folders.Folder{},
		&files.File{},
		&files.Comment{},
		&chat.Message{},
		&messages.PrivateMessage{},
		&messages.ReadStatus{},
		&notifications.Notification{},
		&profile.UserProfile{},
		&vault.VaultFile{},
		&vault.VaultFolder{},
		&vault.VaultTab{},
		&vault.VaultComment{},
	); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	blobs, err := files.NewDiskStore(cfg.UploadsDir)
	if err != nil {
		log.Fatalf("uploads dir: %v", err)
	}
	vaultBlobs, err := vault.NewDiskStore(cfg.VaultUploadsDir)
	if err != nil {
		log.Fatalf("vault dir: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	authService := auth.NewService(userRepo, sessionRepo, cfg.SessionTTL)
	notifService := notifications.NewService(notifications.NewRepository(db), userRepo)
	tabService := tabs.NewService(tabs.NewRepository(db))
	fileService := files.NewService(files.NewRepository(db), blobs, tabService, notifService)
	folderService := folders.NewService(folders.NewRepository(db), fileService, tabService)
	msgService := messages.NewService(messages.NewRepository(db), userRepo, notifService)
	profileService := profile.NewService(profile.NewRepository(db), userRepo, blobs)
	adminService := admin.NewService(userRepo, sessionRepo)
	vaultService := vault.NewService(vault.NewRepository(db), vaultBlobs, userRepo, cfg.VaultPasswords)

	hub := chat.NewHub()
	go hub.Run()
	chatService := chat.NewService(chat.NewRepository(db), hub)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.RequestLogger(), middleware.Recovery(), middleware.CORS(cfg.CORSOrigins))

	api := router.Group("/api")
	auth.RegisterRoutes(api, auth.NewHandler(authService, cfg.SessionTTL, cfg.IsProduction()))

	protected := api.Group("", middleware.RequireUser(authService))
	tabs.RegisterRoutes(protected, tabs.NewHandler(tabService))
	folders.RegisterRoutes(protected, folders.NewHandler(folderService))
	files.RegisterRoutes(protected, files.NewHandler(fileService))
	chat.RegisterRoutes(protected, chat.NewHandler(chatService, hub))
	messages.RegisterRoutes(protected, messages.NewHandler(msgService))
	notifications.RegisterRoutes(protected, notifications.NewHandler(notifService))
	profile.RegisterRoutes(protected, profile.NewHandler(profileService))
	admin.RegisterRoutes(protected, admin.NewHandler(adminService))
	vault.RegisterRoutes(protected, vault.NewHandler(vaultService))

	log.Printf("listening on :%s (%s mode)", cfg.Port, cfg.DeployMode)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
