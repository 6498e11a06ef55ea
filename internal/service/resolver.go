package service

import (
	"context"
	"fmt"

	"address-resolver/internal/models"

	"github.com/rs/zerolog/log"
)

// Geocoder interface for dependency injection
type Geocoder interface {
	Search(ctx context.Context, query string) (models.SearchResult, error)
}

// Resolver runs the two-stage lot/road lookup for one cleaned address.
type Resolver struct {
	geocoder Geocoder
}

// NewResolver creates a resolver. A nil geocoder marks the gateway as unavailable.
func NewResolver(geocoder Geocoder) *Resolver {
	return &Resolver{geocoder: geocoder}
}

// Available reports whether a geocoding gateway is configured.
func (r *Resolver) Available() bool {
	return r.geocoder != nil
}

// Resolve looks up query and assembles the record for original.
// Reported failures are folded into the record's confidence; only unexpected
// gateway errors are returned.
func (r *Resolver) Resolve(ctx context.Context, original, query string) (models.AddressRecord, error) {
	if r.geocoder == nil {
		return models.UnresolvedRecord(original, query, models.ConfidenceLow), nil
	}

	first, err := r.geocoder.Search(ctx, query)
	if err != nil {
		return models.AddressRecord{}, fmt.Errorf("service: failed to search %q: %w", query, err)
	}
	if !first.OK() {
		log.Debug().Str("query", query).Str("status", string(first.Status)).Msg("no candidates")
		return models.UnresolvedRecord(original, query, models.ConfidenceNone), nil
	}

	selected, _ := first.PreferRoad()
	log.Debug().
		Str("query", query).
		Str("type", string(selected.AddressType)).
		Str("address", selected.AddressName).
		Msg("stage 1 candidate selected")

	if selected.IsLot() && selected.RoadName() != "" {
		selected = r.upgradeToRoad(ctx, selected)
	}

	return Assemble(original, query, selected), nil
}

// upgradeToRoad re-queries by the embedded road address name and returns the
// stage 1 candidate when that query fails.
func (r *Resolver) upgradeToRoad(ctx context.Context, lot models.GeocodeCandidate) models.GeocodeCandidate {
	roadQuery := lot.RoadName()

	second, err := r.geocoder.Search(ctx, roadQuery)
	if err != nil {
		log.Warn().Err(err).Str("query", roadQuery).Msg("road re-query failed, keeping lot candidate")
		return lot
	}
	if !second.OK() {
		log.Warn().Str("query", roadQuery).Str("status", string(second.Status)).Msg("road re-query empty, keeping lot candidate")
		return lot
	}

	road, _ := second.PreferRoad()
	log.Debug().
		Str("query", roadQuery).
		Str("type", string(road.AddressType)).
		Str("address", road.AddressName).
		Msg("stage 2 candidate selected")
	return road
}
