package migration

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"

	customerdomain "github.com/evabo/wasteflow/internal/customer/domain"
	invoicedomain "github.com/evabo/wasteflow/internal/invoice/domain"
	messagedomain "github.com/evabo/wasteflow/internal/message/domain"
	paymentdomain "github.com/evabo/wasteflow/internal/payment/domain"
	productdomain "github.com/evabo/wasteflow/internal/product/domain"
	supplierdomain "github.com/evabo/wasteflow/internal/supplier/domain"
	wasterecorddomain "github.com/evabo/wasteflow/internal/wasterecord/domain"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/gorm"
)

// RunMigrations applies the embedded schema against a postgres database.
// All tables are created automatically on startup so a fresh install is
// usable out of the box.
func RunMigrations(db *sql.DB) error {
	if db == nil {
		return errors.New("migration database handle is required")
	}

	sub, err := fs.Sub(embeddedMigrations, migrationsDir)
	if err != nil {
		return fmt.Errorf("open migrations: %w", err)
	}

	source, err := iofs.New(sub, ".")
	if err != nil {
		return fmt.Errorf("create migration source: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("create migration driver: %w", err)
	}

	migrator, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}

	upErr := migrator.Up()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", upErr)
	}
	// Do not call migrator.Close here because it would close the shared *sql.DB.

	return nil
}

// AutoMigrate builds the schema through gorm for the mysql and sqlite
// dialects, where the versioned SQL is postgres-specific.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&customerdomain.Customer{},
		&supplierdomain.Supplier{},
		&productdomain.Product{},
		&wasterecorddomain.WasteRecord{},
		&invoicedomain.Invoice{},
		&paymentdomain.Payment{},
		&messagedomain.Message{},
	)
}
