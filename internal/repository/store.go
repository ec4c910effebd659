// Package repository implements the offline sample-data store backing
// fallback mode: an in-memory sqlite database seeded with the sample
// catalog, cart and addresses, mutated through the same operations the
// remote commerce API supports so reads stay consistent in a session.
package repository

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Store bundles the per-resource repositories over one database.
type Store struct {
	Products  ProductRepository
	Carts     CartRepository
	Addresses AddressRepository
	Orders    OrderRepository
	Payments  PaymentRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		Products:  NewProductRepository(db),
		Carts:     NewCartRepository(db),
		Addresses: NewAddressRepository(db),
		Orders:    NewOrderRepository(db),
		Payments:  NewPaymentRepository(db),
	}
}

// Open creates the in-memory database, migrates the schema and seeds the
// sample data.
func Open() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := db.AutoMigrate(
		&productRecord{},
		&cartItemRecord{},
		&addressRecord{},
		&orderRecord{},
		&paymentRecord{},
	); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	if err := seed(db); err != nil {
		return nil, fmt.Errorf("seed sample data: %w", err)
	}

	return db, nil
}
