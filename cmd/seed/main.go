package main

import (
	"database/sql"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/routinemonitor/backend/config"
	"github.com/routinemonitor/backend/pkg/helpers"
)

// Seeds a demo account with a few tasks and team members for local work.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@routinemonitor.dev"
	hash, err := helpers.HashPassword("password123")
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var userID string
	err = db.QueryRow(`
		INSERT INTO users (first_name, last_name, email, phone, password_hash, gender, avatar_url, is_active)
		VALUES ('Demo', 'User', $1, '+15550100', $2, 'male', $3, true)
		ON CONFLICT (email) DO UPDATE SET updated_at = now()
		RETURNING id
	`, email, hash, helpers.AvatarURLFor("male")).Scan(&userID)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}

	tasks := []struct {
		title, description, status, priority string
	}{
		{"Review sprint board", "Go through the open cards before standup", "todo", "high"},
		{"Write release notes", "Summarize the changes shipped this week", "in_progress", "medium"},
		{"Archive stale branches", "", "completed", "low"},
	}
	for _, t := range tasks {
		if _, err := db.Exec(`
			INSERT INTO tasks (title, description, status, priority, user_id)
			VALUES ($1, $2, $3, $4, $5)
		`, t.title, t.description, t.status, t.priority, userID); err != nil {
			log.Fatalf("failed to seed task %q: %v", t.title, err)
		}
	}

	members := []struct {
		name, email, role string
	}{
		{"Ava Martin", "ava@routinemonitor.dev", "Designer"},
		{"Noah Clarke", "noah@routinemonitor.dev", "Backend Engineer"},
		{"Mia Torres", "mia@routinemonitor.dev", "Product Manager"},
	}
	for _, m := range members {
		if _, err := db.Exec(`
			INSERT INTO team_members (name, email, role, status, avatar_url)
			VALUES ($1, $2, $3, 'active', $4)
		`, m.name, m.email, m.role, helpers.AvatarURLFor(helpers.RandomGender())); err != nil {
			log.Fatalf("failed to seed team member %q: %v", m.name, err)
		}
	}

	log.Printf("seeded user %s with %d tasks and %d team members", email, len(tasks), len(members))
}
