// cmd/seeduser/main.go — Crea/actualiza el usuario administrador inicial y
// escribe license.key en el directorio de datos.
// Uso: LICENSE_SECRET=... go run ./cmd/seeduser
package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm/clause"

	"github.com/Sijj2003/app-tienda/internal/config"
	"github.com/Sijj2003/app-tienda/internal/infra"
	"github.com/Sijj2003/app-tienda/internal/model"
)

func main() {
	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = config.DefaultDataDir()
	}

	secret := os.Getenv("LICENSE_SECRET")
	if secret == "" {
		log.Fatal("LICENSE_SECRET es obligatorio")
	}
	if err := infra.GenerarLicencia(dataDir, secret); err != nil {
		log.Fatalf("license error: %v", err)
	}

	username := envOr("SEED_USERNAME", "admin")
	password := envOr("SEED_PASSWORD", "admin1234")
	nombre := envOr("SEED_NOMBRE", "Administrador")

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		log.Fatalf("bcrypt error: %v", err)
	}

	db, err := infra.NewDatabase(dataDir)
	if err != nil {
		log.Fatalf("db open error: %v", err)
	}

	u := model.Usuario{
		Username:     username,
		Nombre:       nombre,
		PasswordHash: string(hash),
		Rol:          "administrador",
		Activo:       true,
	}
	result := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "username"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"nombre", "password_hash", "rol", "activo",
		}),
	}).Create(&u)
	if result.Error != nil {
		log.Fatalf("insert error: %v", result.Error)
	}

	fmt.Printf("✅ Usuario '%s' creado/actualizado y licencia escrita en %s\n", username, dataDir)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
