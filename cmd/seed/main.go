package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/VijeyRoshan/VoyaGo/internal/adapters/database"
	"github.com/VijeyRoshan/VoyaGo/internal/auth"
	"github.com/VijeyRoshan/VoyaGo/internal/domain/entities"
	"github.com/VijeyRoshan/VoyaGo/internal/infrastructure/clients/postgres"
	"github.com/VijeyRoshan/VoyaGo/pkg/config"
)

// Seeds a development account so the frontend has a known login.
// Safe to run repeatedly: an existing account is left untouched.
func main() {
	var email string
	var password string
	var name string

	flag.StringVar(&email, "email", "test@example.com", "Email of the seed account")
	flag.StringVar(&password, "password", "password123", "Password of the seed account")
	flag.StringVar(&name, "name", "Test User", "Display name of the seed account")
	flag.Parse()

	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Setup DB
	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pgClient.Close()

	userRepo := database.NewUserAdapter(pgClient)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	normalized := entities.NormalizeEmail(email)
	if existing, err := userRepo.GetByEmail(ctx, normalized); err == nil {
		log.Printf("Seed account %s already exists (id=%s), nothing to do", normalized, existing.ID)
		return
	}

	if err := auth.ValidatePassword(password); err != nil {
		log.Fatalf("Seed password rejected: %v", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}

	user := &entities.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        normalized,
		PasswordHash: hash,
		Role:         entities.RoleUser,
		CreatedAt:    time.Now().UTC(),
	}

	if err := userRepo.Create(ctx, user); err != nil {
		log.Fatalf("Failed to create seed account: %v", err)
	}

	log.Printf("Seed account %s created (id=%s)", normalized, user.ID)
}
