package main

import (
	"log"

	"github.com/washbook/washbook-api/internal/config"
	"github.com/washbook/washbook-api/internal/infrastructure/database"
	"gorm.io/gorm"
)

// legacyCatalogTables are earlier spellings of the price catalog table left
// behind by older app builds. Rows are folded into the canonical cloth_types
// table and the legacy tables renamed out of the way, all in one transaction.
var legacyCatalogTables = []string{"clothe_types", "cloths"}

func main() {
	cfg := config.Load()

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := normalizeCatalogTables(db); err != nil {
		log.Fatalf("Failed to normalize catalog tables: %v", err)
	}

	log.Println("Migration completed")
}

func normalizeCatalogTables(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, table := range legacyCatalogTables {
			if !tx.Migrator().HasTable(table) {
				continue
			}

			log.Printf("Folding legacy table %q into cloth_types", table)

			err := tx.Exec(`
				INSERT INTO cloth_types (id, user_id, name, unit_rate, created_at, updated_at)
				SELECT id, user_id, name, unit_rate, created_at, updated_at
				FROM ` + table + `
				ON CONFLICT (id) DO NOTHING`).Error
			if err != nil {
				return err
			}

			// Keep the legacy data around until an operator drops it by hand
			if err := tx.Migrator().RenameTable(table, table+"_migrated"); err != nil {
				return err
			}
		}
		return nil
	})
}
