package infra

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Sijj2003/app-tienda/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const storeFileName = "darklord.db"

// NewDatabase opens (creating if absent) the local SQLite store inside the
// per-user data directory and runs AutoMigrate. Failure here is the only
// fatal startup error besides a bad license: without the store nothing works.
func NewDatabase(dataDir string) (*gorm.DB, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creando directorio de datos: %w", err)
	}

	dsn := filepath.Join(dataDir, storeFileName)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("abriendo almacen local: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// The application is the single writer; one connection keeps SQLite's
	// locking out of the picture entirely.
	sqlDB.SetMaxOpenConns(1)

	if err := db.Exec("PRAGMA journal_mode = WAL").Error; err != nil {
		return nil, fmt.Errorf("configurando WAL: %w", err)
	}
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&model.Producto{},
		&model.Venta{},
		&model.AvanceEfectivo{},
		&model.RecargaTelefonica{},
		&model.TasaBCV{},
		&model.Usuario{},
	); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	return db, nil
}
