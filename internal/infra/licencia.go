package infra

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const licenseFileName = "license.key"

var ErrLicenciaInvalida = errors.New("licencia invalida o ausente")

// VerificarLicencia checks the one-time activation file: license.key in the
// data directory must hold the hex SHA-256 of the license secret. An absent
// or mismatched file aborts startup.
func VerificarLicencia(dataDir, secret string) error {
	raw, err := os.ReadFile(filepath.Join(dataDir, licenseFileName))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLicenciaInvalida, err)
	}

	esperado := sha256.Sum256([]byte(secret))
	if strings.TrimSpace(string(raw)) != hex.EncodeToString(esperado[:]) {
		return ErrLicenciaInvalida
	}
	return nil
}

// GenerarLicencia writes the activation file; used by the seeding tool.
func GenerarLicencia(dataDir, secret string) error {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}
	hash := sha256.Sum256([]byte(secret))
	return os.WriteFile(filepath.Join(dataDir, licenseFileName), []byte(hex.EncodeToString(hash[:])), 0o600)
}
