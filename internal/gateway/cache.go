package gateway

import (
	"context"
	"fmt"

	"address-resolver/internal/models"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CachedGateway memoizes successful and empty search results in an LRU cache.
// Errors and ERROR statuses are never cached.
type CachedGateway struct {
	next  Gateway
	cache *lru.Cache[string, models.SearchResult]
}

// NewCachedGateway wraps next with a cache holding up to size queries.
func NewCachedGateway(next Gateway, size int) (*CachedGateway, error) {
	cache, err := lru.New[string, models.SearchResult](size)
	if err != nil {
		return nil, fmt.Errorf("gateway: failed to create cache: %w", err)
	}
	return &CachedGateway{next: next, cache: cache}, nil
}

func (g *CachedGateway) Search(ctx context.Context, query string) (models.SearchResult, error) {
	if res, ok := g.cache.Get(query); ok {
		return res, nil
	}

	res, err := g.next.Search(ctx, query)
	if err != nil {
		return res, err
	}
	if res.Status == models.StatusOK || res.Status == models.StatusZeroResult {
		g.cache.Add(query, res)
	}
	return res, nil
}

// Len returns the number of cached queries.
func (g *CachedGateway) Len() int {
	return g.cache.Len()
}
