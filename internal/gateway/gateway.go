// Package gateway talks to the external address geocoder.
package gateway

import (
	"context"

	"address-resolver/internal/models"
)

// Gateway searches the external geocoder for address candidates.
// A reported non-OK status is returned as a result, not as an error.
type Gateway interface {
	Search(ctx context.Context, query string) (models.SearchResult, error)
}
