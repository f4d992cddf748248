// Package repositories defines interfaces for data access layers.
package repositories

import (
	"context"

	"github.com/ochairo/prodverify/internal/domain/entities"
)

// ConfigRepository loads verification configuration from persistent storage
type ConfigRepository interface {
	// Load reads the configuration stored at path
	Load(ctx context.Context, path string) (*entities.Configuration, error)
}
