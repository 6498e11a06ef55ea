package models

// Confidence labels how well a resolved address matches the input line.
type Confidence string

const (
	ConfidenceNone   Confidence = "none"
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// Rank orders confidence labels from none (0) to high (3).
func (c Confidence) Rank() int {
	switch c {
	case ConfidenceHigh:
		return 3
	case ConfidenceMedium:
		return 2
	case ConfidenceLow:
		return 1
	default:
		return 0
	}
}

// Valid reports whether c is one of the four known labels.
func (c Confidence) Valid() bool {
	switch c {
	case ConfidenceNone, ConfidenceLow, ConfidenceMedium, ConfidenceHigh:
		return true
	}
	return false
}

// AddressRecord is the normalized result for a single input line.
type AddressRecord struct {
	OriginalAddress string     `json:"original_address"`
	LotAddress      string     `json:"lot_address"`
	RoadAddress     string     `json:"road_address"`
	Zipcode         string     `json:"zipcode"`
	Lon             string     `json:"lon"`
	Lat             string     `json:"lat"`
	City            string     `json:"city"`
	District        string     `json:"district"`
	AddressCode     string     `json:"address_code"`
	MatchConfidence Confidence `json:"match_confidence"`
}

// UnresolvedRecord is the record shape used when no candidate could be selected.
// The lot address carries the queried address so the row is never blank.
func UnresolvedRecord(original, query string, confidence Confidence) AddressRecord {
	return AddressRecord{
		OriginalAddress: original,
		LotAddress:      query,
		MatchConfidence: confidence,
	}
}
