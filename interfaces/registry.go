package interfaces

import (
	"context"

	"serverbrowser/domain"
)

// ServerRepository maps server records to store keys. It owns the key scheme and the TTL.
//
//go:generate moq -stub -out mock/server_repository.go -pkg mock . ServerRepository
type ServerRepository interface {
	// FindAll returns every live server. Never nil; empty when nothing is live.
	FindAll(ctx context.Context) ([]domain.ServerInfo, error)

	// Save writes the record under its identity key with a fresh TTL.
	Save(ctx context.Context, server domain.ServerInfo) error

	// Remove deletes the record for id and reports whether a live entry existed.
	Remove(ctx context.Context, id domain.ServerID) (bool, error)
}

// ServerRegistry is what the API boundary consumes.
//
//go:generate moq -stub -out mock/server_registry.go -pkg mock . ServerRegistry
type ServerRegistry interface {
	// GetAllServers returns the live set (possibly empty).
	GetAllServers(ctx context.Context) ([]domain.ServerInfo, error)

	// CreateOrRefresh stores the record with a reset TTL and reports whether it was newly created.
	// The Created flag is best-effort under concurrent heartbeats for the same identity.
	CreateOrRefresh(ctx context.Context, server domain.ServerInfo) (domain.ServerCreationResult, error)

	// Unregister removes the server immediately.
	// Returns entity_not_found when no live entry existed.
	Unregister(ctx context.Context, id domain.ServerID) error
}
