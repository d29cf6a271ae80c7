package app

import (
	"cryptkeep/internal/config"
	"cryptkeep/internal/domain"
	"cryptkeep/internal/mount"
	"cryptkeep/internal/provider/gocryptfs"
	"cryptkeep/internal/services/session"
	"cryptkeep/internal/services/vault"
	"cryptkeep/internal/shell"
)

// Wire bundles the provider adapter and services for the CLI.
type Wire struct {
	Provider domain.Provider
	Vaults   *vault.Service
	Sessions *session.Service
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg config.Config) *Wire {
	provider := gocryptfs.New(cfg.Provider)

	return &Wire{
		Provider: provider,
		Vaults:   vault.New(provider),
		Sessions: session.New(provider, mount.Fusermount{}, mount.DeviceChecker{}, shell.NewRunner()),
	}
}
