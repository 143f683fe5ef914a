package main

import (
	"log"

	"relay-chat/config"
	"relay-chat/internal/domain/chat"
	"relay-chat/internal/domain/message"
	"relay-chat/internal/domain/user"
	"relay-chat/internal/handler"
	"relay-chat/internal/repository"
	"relay-chat/internal/server"
	"relay-chat/internal/services"
	"relay-chat/pkg/database"
	"relay-chat/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()

	mode := logger.DevelopmentMode
	if cfg.AppMode == server.ReleaseMode {
		mode = logger.ProductionMode
	}
	l := logger.New(mode)
	logger.SetGlobalLogger(l)

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.ApplyRawMigrations(db, "migrations"); err != nil {
		log.Fatalf("Failed to apply raw migrations: %v", err)
	}

	if err := db.AutoMigrate(
		&user.User{},
		&chat.Chat{},
		&chat.Membership{},
		&message.Message{},
	); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	chatRepo := repository.NewChatRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	userService := services.NewUserService(userRepo)
	chatService := services.NewChatService(chatRepo, messageRepo, l)
	messageService := services.NewMessageService(messageRepo)

	handlers := &server.Handlers{
		User:    handler.NewUserHandler(userService),
		Chat:    handler.NewChatHandler(chatService),
		Message: handler.NewMessageHandler(messageService),
	}

	srv := server.New(cfg, l, db)
	srv.SetupRoutes(handlers)

	if err := srv.Start(); err != nil {
		log.Fatalf("Server exited with error: %v", err)
	}
}
