package config

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
)

func InitDB() (*sql.DB, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	return db, nil
}

func RunMigrations(db *sql.DB) error {
	migrations := []string{
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`,

		`CREATE TABLE IF NOT EXISTS staff (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'moderator',
			totp_secret VARCHAR(255),
			totp_enabled BOOLEAN DEFAULT FALSE,
			created_at TIMESTAMP DEFAULT NOW(),
			updated_at TIMESTAMP DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS sessions (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			staff_id UUID REFERENCES staff(id) ON DELETE CASCADE,
			refresh_token VARCHAR(500) UNIQUE NOT NULL,
			expires_at TIMESTAMP NOT NULL,
			created_at TIMESTAMP DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS banners (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			title VARCHAR(255) UNIQUE NOT NULL,
			image TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS events (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			title VARCHAR(255) NOT NULL,
			description TEXT,
			location VARCHAR(255),
			image_url TEXT NOT NULL,
			url TEXT,
			created_at TIMESTAMP DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS notices (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			notice TEXT UNIQUE NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS projects (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			title VARCHAR(255) NOT NULL,
			description TEXT,
			stack VARCHAR(255),
			image TEXT NOT NULL,
			url TEXT,
			category VARCHAR(100) NOT NULL,
			created_at TIMESTAMP DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS resources (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			title VARCHAR(255) NOT NULL,
			description TEXT,
			stack VARCHAR(255),
			image TEXT NOT NULL,
			url TEXT,
			file TEXT NOT NULL,
			price VARCHAR(50) NOT NULL,
			is_free BOOLEAN DEFAULT FALSE,
			category VARCHAR(100) NOT NULL,
			author VARCHAR(255) NOT NULL,
			created_at TIMESTAMP DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS reviews (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			name VARCHAR(255) NOT NULL,
			title VARCHAR(255) NOT NULL,
			quote TEXT NOT NULL,
			image TEXT NOT NULL,
			verified BOOLEAN DEFAULT FALSE
		)`,

		`CREATE TABLE IF NOT EXISTS registrations (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			first_name VARCHAR(255) NOT NULL,
			last_name VARCHAR(255) NOT NULL,
			address TEXT NOT NULL,
			number VARCHAR(50) NOT NULL,
			email VARCHAR(255) NOT NULL,
			emergency_contact_name VARCHAR(255) NOT NULL,
			emergency_contact_number VARCHAR(50) NOT NULL,
			emergency_contact_relation VARCHAR(100) NOT NULL,
			signature TEXT NOT NULL,
			date TIMESTAMP DEFAULT NOW(),
			status VARCHAR(50) NOT NULL DEFAULT 'Pending'
		)`,

		`CREATE TABLE IF NOT EXISTS orders (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			price VARCHAR(50) NOT NULL,
			is_free BOOLEAN NOT NULL,
			buyer_name VARCHAR(255) NOT NULL,
			buyer_email VARCHAR(255) NOT NULL,
			buyer_number VARCHAR(50) NOT NULL,
			note TEXT,
			url TEXT NOT NULL,
			delivered BOOLEAN DEFAULT FALSE,
			resource_id UUID REFERENCES resources(id),
			created_at TIMESTAMP DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS transactions (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			date TIMESTAMP NOT NULL DEFAULT NOW(),
			project VARCHAR(255) NOT NULL,
			category VARCHAR(100) NOT NULL,
			amount VARCHAR(50) NOT NULL,
			due_amount VARCHAR(50),
			notes TEXT
		)`,

		`CREATE INDEX IF NOT EXISTS idx_sessions_staff_id ON sessions(staff_id)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_buyer_email ON orders(buyer_email)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_resource_id ON orders(resource_id)`,
		`CREATE INDEX IF NOT EXISTS idx_registrations_status ON registrations(status)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(date)`,
	}

	for _, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}

	return nil
}
