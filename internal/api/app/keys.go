package app

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aussiebroadwan/eventplanner/pkg/cryptox"
	"github.com/aussiebroadwan/eventplanner/pkg/jwtx"
)

// InitSigner loads the Ed25519 token signing key.
//
// With no key file configured a key is generated in memory and every issued
// token becomes invalid on restart. Otherwise the PEM file is read, or
// generated and written with 0600 permissions on first start.
func InitSigner(cfg Config, logger *slog.Logger) (*jwtx.Signer, error) {
	if cfg.SigningKeyFile == "" {
		pemKey, err := cryptox.GenerateEd25519Key()
		if err != nil {
			return nil, err
		}
		logger.Warn("using an ephemeral signing key, tokens will not survive a restart")
		return jwtx.NewSigner(cfg.SigningKeyID, pemKey)
	}

	path := filepath.Clean(cfg.SigningKeyFile)
	pemKey, err := os.ReadFile(path)
	switch {
	case err == nil:
		logger.Info("signing key loaded", "path", path, "kid", cfg.SigningKeyID)
	case errors.Is(err, os.ErrNotExist):
		pemKey, err = cryptox.GenerateEd25519Key()
		if err != nil {
			return nil, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return nil, fmt.Errorf("create signing key dir: %w", err)
		}
		if err := os.WriteFile(path, pemKey, 0o600); err != nil {
			return nil, fmt.Errorf("write signing key: %w", err)
		}
		logger.Info("signing key generated", "path", path, "kid", cfg.SigningKeyID)
	default:
		return nil, fmt.Errorf("read signing key: %w", err)
	}

	return jwtx.NewSigner(cfg.SigningKeyID, pemKey)
}
