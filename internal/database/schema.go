package database

import "database/sql"

// Migrate creates the schema. Statements are idempotent so the command can
// run against an existing database.
func Migrate(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id            UUID PRIMARY KEY,
			email         TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			role          TEXT NOT NULL,
			verified      BOOLEAN NOT NULL DEFAULT FALSE,
			name          TEXT,
			lat           DOUBLE PRECISION,
			lon           DOUBLE PRECISION,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			id            UUID PRIMARY KEY,
			vendor_id     UUID NOT NULL REFERENCES users(id),
			name          TEXT NOT NULL,
			category      TEXT NOT NULL DEFAULT 'general',
			sku           TEXT,
			price         DOUBLE PRECISION NOT NULL CHECK (price >= 0),
			stock         INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
			unit          TEXT NOT NULL DEFAULT 'pcs',
			min_threshold INTEGER NOT NULL DEFAULT 10,
			warehouse_lat DOUBLE PRECISION,
			warehouse_lon DOUBLE PRECISION,
			last_updated  TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id           UUID PRIMARY KEY,
			facility_id  UUID NOT NULL REFERENCES users(id),
			vendor_id    UUID NOT NULL REFERENCES users(id),
			status       TEXT NOT NULL DEFAULT 'pending',
			total_amount DOUBLE PRECISION NOT NULL DEFAULT 0,
			emergency    BOOLEAN NOT NULL DEFAULT FALSE,
			created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id         UUID PRIMARY KEY,
			order_id   UUID NOT NULL REFERENCES orders(id),
			product_id UUID NOT NULL REFERENCES products(id),
			qty        INTEGER NOT NULL CHECK (qty >= 1),
			unit_price DOUBLE PRECISION NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS needs (
			id          UUID PRIMARY KEY,
			facility_id UUID NOT NULL REFERENCES users(id),
			name        TEXT NOT NULL,
			qty         INTEGER NOT NULL,
			cadence     TEXT NOT NULL DEFAULT 'weekly',
			created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS subscriptions (
			id             UUID PRIMARY KEY,
			facility_id    UUID NOT NULL REFERENCES users(id),
			vendor_id      UUID NOT NULL REFERENCES users(id),
			auto_order_qty INTEGER,
			cadence        TEXT NOT NULL DEFAULT 'monthly',
			active         BOOLEAN NOT NULL DEFAULT TRUE
		)`,
	}
	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
