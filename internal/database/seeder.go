package database

import (
	"context"
	"database/sql"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Seed inserts a sample vendor, facility and a couple of products for quick
// local testing. Skipped when the sample vendor already exists.
func Seed(db *sql.DB) error {
	ctx := context.Background()

	var count int
	if err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM users WHERE email = $1`, "vendor@example.com").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		log.Println("sample data already exists, seeding skipped")
		return nil
	}

	vendorID, facilityID := uuid.New(), uuid.New()
	accounts := []struct {
		id       uuid.UUID
		email    string
		password string
		role     string
		name     string
	}{
		{vendorID, "vendor@example.com", "vendorpass", "vendor", "BestMed Supplies"},
		{facilityID, "facility@example.com", "facpass", "facility", "County Hospital"},
	}
	for _, a := range accounts {
		hashed, err := bcrypt.GenerateFromPassword([]byte(a.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		if _, err := db.ExecContext(ctx, `
			INSERT INTO users (id, email, password_hash, role, verified, name)
			VALUES ($1, $2, $3, $4, TRUE, $5)`,
			a.id, a.email, string(hashed), a.role, a.name); err != nil {
			return err
		}
	}

	products := []struct {
		name      string
		price     float64
		stock     int
		threshold int
	}{
		{"Surgical Gloves - M", 0.5, 1000, 100},
		{"IV Set - Std", 5.0, 200, 20},
	}
	for _, p := range products {
		if _, err := db.ExecContext(ctx, `
			INSERT INTO products (id, vendor_id, name, price, stock, min_threshold, warehouse_lat, warehouse_lon)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			uuid.New(), vendorID, p.name, p.price, p.stock, p.threshold, -1.2921, 36.8219); err != nil {
			return err
		}
	}

	log.Println("sample data created")
	return nil
}
