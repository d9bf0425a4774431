package repository_test

import (
	"context"
	"log"
	"os"
	"testing"

	"classroom-market/config"
	"classroom-market/internal/database"
	"classroom-market/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

// testDB stays nil when the test database is unreachable; Postgres-backed
// tests skip in that case.
var testDB *pgxpool.Pool

func TestMain(m *testing.M) {
	cfg := config.LoadTestConfig()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Printf("test database unavailable, skipping postgres tests: %v", err)
	} else if err := database.Migrate(context.Background(), pool); err != nil {
		log.Printf("failed to migrate test database, skipping postgres tests: %v", err)
		pool.Close()
	} else {
		testDB = pool
	}

	code := m.Run()
	if testDB != nil {
		testDB.Close()
	}
	os.Exit(code)
}

func getTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testDB == nil {
		t.Skip("test database unavailable")
	}
	return testDB
}

func setupTestWithTruncate(t *testing.T) *pgxpool.Pool {
	t.Helper()
	pool := getTestDB(t)
	_, err := pool.Exec(context.Background(), "TRUNCATE purchases, items, students RESTART IDENTITY CASCADE")
	if err != nil {
		t.Fatalf("Failed to truncate tables: %v", err)
	}
	return pool
}

func createTestStudent(t *testing.T, pool *pgxpool.Pool, name string, grade model.Grade, tickets int) int {
	t.Helper()
	var id int
	err := pool.QueryRow(context.Background(),
		`INSERT INTO students (name, grade, ticket_count, password) VALUES ($1, $2, $3, '1234') RETURNING id`,
		name, grade, tickets,
	).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test student: %v", err)
	}
	return id
}

func createTestItem(t *testing.T, pool *pgxpool.Pool, name string, cost, quantity int) int {
	t.Helper()
	var id int
	err := pool.QueryRow(context.Background(),
		`INSERT INTO items (name, cost, quantity) VALUES ($1, $2, $3) RETURNING id`,
		name, cost, quantity,
	).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test item: %v", err)
	}
	return id
}
