package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Store
	DataDir string `mapstructure:"DATA_DIR"`

	// Business
	NombreNegocio string `mapstructure:"NOMBRE_NEGOCIO"`

	// Tasa BCV
	BCVURL               string `mapstructure:"BCV_URL"`
	TasaPollIntervalSecs int    `mapstructure:"TASA_POLL_INTERVAL_SECS"`

	// Auth
	JWTSecret          string `mapstructure:"JWT_SECRET"`
	JWTExpirationHours int    `mapstructure:"JWT_EXPIRATION_HOURS"`
	// AdminUnlockMinutes bounds the lifetime of the elevated token issued by
	// the admin password gate.
	AdminUnlockMinutes int `mapstructure:"ADMIN_UNLOCK_MINUTES"`

	// Licencia
	LicenseSecret string `mapstructure:"LICENSE_SECRET"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DATA_DIR", DefaultDataDir())
	viper.SetDefault("NOMBRE_NEGOCIO", "BUSSINES")
	viper.SetDefault("BCV_URL", "https://www.bcv.org.ve/")
	viper.SetDefault("TASA_POLL_INTERVAL_SECS", 3600)
	viper.SetDefault("JWT_SECRET", "cambiar-en-produccion")
	viper.SetDefault("JWT_EXPIRATION_HOURS", 8)
	viper.SetDefault("ADMIN_UNLOCK_MINUTES", 15)
	viper.SetDefault("LICENSE_SECRET", "SIJJ2003")

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultDataDir returns the per-user directory where the local store and the
// license file live. Falls back to the working directory when the OS config
// dir cannot be resolved.
func DefaultDataDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "MDB")
	}
	return filepath.Join(base, "BUSSINES", "SIJJ2003", "MDB")
}
