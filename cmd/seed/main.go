package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/abdrasaq14/payever-test/config"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "ann@example.com"
	firstName := "Ann"

	var id string
	err = db.QueryRow(`
		INSERT INTO users (first_name, email)
		VALUES ($1, $2)
		ON CONFLICT (email) DO UPDATE SET first_name = EXCLUDED.first_name
		RETURNING id
	`, firstName, email).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s first_name=%s\n", id, email, firstName)
}
