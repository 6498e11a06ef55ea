package service

import (
	"address-resolver/internal/models"
	"address-resolver/internal/region"
	"address-resolver/internal/scorer"
)

// Assemble builds the record for original from the selected candidate.
// query is the cleaned address that was sent to the gateway; it is the lot address
// fallback and the reference for confidence scoring.
func Assemble(original, query string, c models.GeocodeCandidate) models.AddressRecord {
	foundLot := c.LotName()
	foundRoad := c.RoadName()

	rec := models.AddressRecord{
		OriginalAddress: original,
		LotAddress:      foundLot,
		RoadAddress:     foundRoad,
		Lon:             c.X,
		Lat:             c.Y,
		MatchConfidence: scorer.Score(query, foundLot, foundRoad),
	}
	if rec.LotAddress == "" {
		rec.LotAddress = query
	}

	// road postal codes are the reliably populated ones
	if c.RoadAddress != nil && c.RoadAddress.ZoneNo != "" {
		rec.Zipcode = c.RoadAddress.ZoneNo
	} else if c.Address != nil {
		rec.Zipcode = c.Address.ZoneNo
	}

	switch {
	case c.Address != nil:
		rec.City = region.ExpandCity(c.Address.Region1)
		rec.District = c.Address.Region2
		rec.AddressCode = c.Address.BCode
	case c.RoadAddress != nil:
		rec.City = region.ExpandCity(c.RoadAddress.Region1)
		rec.District = c.RoadAddress.Region2
	}

	return rec
}

// AssembleSelection builds the record for a completed popup selection.
func AssembleSelection(s models.Selection) models.AddressRecord {
	lot := s.JibunAddress
	if lot == "" {
		lot = s.Address
	}
	return models.AddressRecord{
		OriginalAddress: s.Address,
		LotAddress:      lot,
		RoadAddress:     s.RoadAddress,
		Zipcode:         s.Zonecode,
		City:            region.ExpandCity(s.Sido),
		District:        s.Sigungu,
		AddressCode:     s.Bcode,
		MatchConfidence: models.ConfidenceHigh,
	}
}
