package ports

import (
	"context"

	"gomendel/domain/trait"
)

// CatalogReader defines the interface for loading trait definitions from an
// external catalog file
type CatalogReader interface {
	// Read parses the catalog and returns the valid traits plus one message
	// per rejected row. A non-nil error means the file itself was unreadable.
	Read(ctx context.Context, path string) ([]trait.Trait, []string, error)
}
