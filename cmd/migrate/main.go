package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gorm.io/gorm"

	"relay-chat/config"
	"relay-chat/internal/domain/chat"
	"relay-chat/internal/domain/message"
	"relay-chat/internal/domain/user"
	"relay-chat/pkg/database"
)

const usage = `
Relay Chat - Database CLI Tool

Usage:
  migrate [command] [flags]

Commands:
  up          Run all migrations (SQL + AutoMigrate)
  status      Show database connection status
  seed        Seed the database with development data
  reset       Drop all tables and re-run migrations (DANGEROUS)

Flags:
  -migrations string   Path to migrations directory (default "migrations")

Examples:
  go run cmd/migrate/main.go up
  go run cmd/migrate/main.go seed
  go run cmd/migrate/main.go reset
`

func main() {
	migrationsDir := flag.String("migrations", "migrations", "Path to migrations directory")

	flag.Usage = func() {
		fmt.Print(usage)
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	command := flag.Arg(0)

	cfg := config.LoadConfig()
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("❌ Database connection failed: %v", err)
	}

	switch command {
	case "up":
		runMigrationsUp(db, *migrationsDir)
	case "status":
		showStatus(db)
	case "seed":
		runSeed(db)
	case "reset":
		runReset(db, *migrationsDir)
	default:
		fmt.Printf("Unknown command: %s\n", command)
		flag.Usage()
		os.Exit(1)
	}
}

func migrateAll(db *gorm.DB, migrationsDir string) error {
	if err := database.ApplyRawMigrations(db, migrationsDir); err != nil {
		return err
	}
	return db.AutoMigrate(
		&user.User{},
		&chat.Chat{},
		&chat.Membership{},
		&message.Message{},
	)
}

func runMigrationsUp(db *gorm.DB, migrationsDir string) {
	log.Println("🚀 Running migrations UP...")

	if err := migrateAll(db, migrationsDir); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}

	log.Println("✅ Migrations completed successfully!")
}

func showStatus(db *gorm.DB) {
	log.Println("🔍 Checking database status...")

	if err := database.HealthCheck(db); err != nil {
		log.Fatalf("❌ Database connection failed: %v", err)
	}
	log.Println("✅ Database connection: OK")

	tables := []string{"users", "chats", "user_chats", "messages"}
	for _, table := range tables {
		if !db.Migrator().HasTable(table) {
			log.Printf("❌ Table %-12s does not exist", table)
			continue
		}
		var count int64
		if err := db.Table(table).Count(&count).Error; err != nil {
			log.Printf("⚠️  Error counting table %s: %v", table, err)
			continue
		}
		log.Printf("✅ Table %-12s exists (%d rows)", table, count)
	}
}

func runSeed(db *gorm.DB) {
	log.Println("🌱 Seeding database (development data)...")

	result, err := database.Seed(db, nil)
	if err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	log.Println("📊 Seed Summary:")
	log.Printf("   - Users: %d", len(result.Users))
	log.Printf("   - Chats: %d", len(result.Chats))
	log.Printf("   - Messages: %d", len(result.Messages))
	log.Println("✅ Seeding completed!")
}

func runReset(db *gorm.DB, migrationsDir string) {
	log.Println("⚠️  WARNING: This will DROP all tables and re-run migrations!")

	log.Println("🗑️  Dropping all tables...")
	if err := db.Migrator().DropTable(
		&message.Message{},
		&chat.Membership{},
		&chat.Chat{},
		&user.User{},
	); err != nil {
		log.Fatalf("❌ Failed to drop tables: %v", err)
	}

	log.Println("🚀 Running migrations...")
	if err := migrateAll(db, migrationsDir); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}

	log.Println("✅ Database reset completed!")
}
