package service

import (
	"context"
	"errors"

	"address-resolver/internal/models"

	"github.com/rs/zerolog/log"
)

// ErrSelectionCancelled is returned when the popup was closed without a choice.
var ErrSelectionCancelled = errors.New("service: address selection cancelled")

// SelectionService turns popup selections into records with coordinates.
type SelectionService struct {
	geocoder Geocoder
}

// NewSelectionService creates a selection service. A nil geocoder skips coordinate lookup.
func NewSelectionService(geocoder Geocoder) *SelectionService {
	return &SelectionService{geocoder: geocoder}
}

// Select assembles the record for a popup outcome.
func (s *SelectionService) Select(ctx context.Context, outcome models.SelectionOutcome) (models.AddressRecord, error) {
	sel, ok := outcome.Get()
	if !ok {
		return models.AddressRecord{}, ErrSelectionCancelled
	}

	rec := AssembleSelection(sel)
	if s.geocoder == nil {
		return rec, nil
	}

	query := sel.RoadAddress
	if query == "" {
		query = rec.LotAddress
	}

	res, err := s.geocoder.Search(ctx, query)
	if err != nil {
		log.Warn().Err(err).Str("query", query).Msg("coordinate lookup failed")
		return rec, nil
	}
	c, found := res.PreferRoad()
	if !res.OK() || !found {
		return rec, nil
	}

	rec.Lon = c.X
	rec.Lat = c.Y
	if rec.Zipcode == "" {
		switch {
		case c.RoadAddress != nil && c.RoadAddress.ZoneNo != "":
			rec.Zipcode = c.RoadAddress.ZoneNo
		case c.Address != nil:
			rec.Zipcode = c.Address.ZoneNo
		}
	}
	return rec, nil
}
